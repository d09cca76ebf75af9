// Package prompts holds the prompt templates sent to the model backend.
// Templates are plain-text assets loaded from the prompts/ directory when
// present, with hardcoded fallbacks, and carry single-placeholder
// substitution points.
package prompts

import (
	"fmt"
	"os"
	"strings"
)

const (
	// TaskPlaceholder marks where the task description is substituted.
	TaskPlaceholder = "{{TASK}}"
	// ContextPlaceholder marks where the serialized codebase view goes.
	ContextPlaceholder = "{{CONTEXT}}"
)

func LoadPromptFromFile(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	return string(content), nil
}

const planningFallback = `You are an expert software architect. Plan a new project for the following request:

{{TASK}}

Respond with EXACTLY the following labeled sections, each label on its own line followed by its content. Do not add any other sections or commentary.

PROJECT_TYPE: <short description of the kind of project, e.g. "CLI tool", "web app">
MAIN_TECHNOLOGIES: <comma-separated list of languages, frameworks and tools>
ARCHITECTURE: <a few sentences describing the overall architecture>
SCAFFOLD_COMMAND: <a single official scaffolding command to bootstrap the project, or NONE if no scaffold tool applies>
SCAFFOLD_TYPE: <one of CREATES_OWN_DIR, NEEDS_EMPTY_DIR, IN_PLACE, NONE. CREATES_OWN_DIR if the command creates the project directory itself, NEEDS_EMPTY_DIR if it must run inside an empty directory, IN_PLACE if it can run in any directory, NONE if there is no command>
PROJECT_PLAN: <step-by-step implementation plan>
DEPENDENCIES: <dependencies to install and how>
FILE_STRUCTURE: <the intended file and directory layout>
DEVELOPMENT_RECOMMENDATIONS: <conventions, testing and tooling recommendations>
`

const refactorFallback = `You are an expert software engineer working on an existing codebase.

Task:
{{TASK}}

Current codebase:
{{CONTEXT}}

Make the requested changes. For every file you create or modify, output the COMPLETE and FULL new file contents (never a diff, never truncated) as a block of the shape:

path: <relative/path/to/file>
` + "```" + `<language>
<entire file contents>
` + "```" + `

CRITICAL REQUIREMENTS:
- Include the ENTIRE file content from beginning to end, both modified AND unmodified sections
- Use paths relative to the project root; never use absolute paths or ..
- Make only the changes the task requires; do not reformat or refactor unrelated code
- Do not include any text inside the code blocks other than the file contents
`

const generateFallback = `You are an expert software engineer creating the initial files for a new project.

Task:
{{TASK}}

Project plan:
{{CONTEXT}}

Generate every file the project needs to run. For each file output a block of the shape:

path: <relative/path/to/file>
` + "```" + `<language>
<entire file contents>
` + "```" + `

Use paths relative to the project root. Output complete, runnable file contents and nothing else inside the code blocks. Do not recreate files a scaffold tool already generates unless they need changes.
`

// GetPlanningTemplate returns the planning prompt template.
func GetPlanningTemplate() string {
	if content, err := LoadPromptFromFile("prompts/planning.txt"); err == nil {
		return content
	}
	return planningFallback
}

// GetRefactorTemplate returns the refactor prompt template.
func GetRefactorTemplate() string {
	if content, err := LoadPromptFromFile("prompts/refactor.txt"); err == nil {
		return content
	}
	return refactorFallback
}

// GetGenerateTemplate returns the new-project file generation template.
func GetGenerateTemplate() string {
	if content, err := LoadPromptFromFile("prompts/generate.txt"); err == nil {
		return content
	}
	return generateFallback
}

// RenderPlanPrompt substitutes the task description into the planning
// template's single placeholder.
func RenderPlanPrompt(taskDescription string) string {
	return strings.ReplaceAll(GetPlanningTemplate(), TaskPlaceholder, taskDescription)
}

// RenderRefactorPrompt embeds the task and the serialized codebase view.
func RenderRefactorPrompt(taskDescription, codebaseContext string) string {
	prompt := strings.ReplaceAll(GetRefactorTemplate(), TaskPlaceholder, taskDescription)
	return strings.ReplaceAll(prompt, ContextPlaceholder, codebaseContext)
}

// RenderGeneratePrompt embeds the task and a plan summary for initial file
// generation after scaffolding.
func RenderGeneratePrompt(taskDescription, planContext string) string {
	prompt := strings.ReplaceAll(GetGenerateTemplate(), TaskPlaceholder, taskDescription)
	return strings.ReplaceAll(prompt, ContextPlaceholder, planContext)
}
