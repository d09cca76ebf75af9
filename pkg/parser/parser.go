// Package parser converts the model's free-text replies into typed records:
// a ProjectPlan from labeled sections, or an EditSet from fenced file
// blocks. Parsing is line-oriented and label-anchored; partial structure
// degrades to defaults, but a reply with no recognizable structure at all
// fails with ErrMalformedResponse.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/BRArjun/zor/pkg/types"
)

// ErrMalformedResponse indicates the model reply contained no recognizable
// structure. Callers should preserve the raw response for diagnostics.
var ErrMalformedResponse = errors.New("no recognizable structure in model response")

const (
	labelProjectType     = "PROJECT_TYPE"
	labelTechnologies    = "MAIN_TECHNOLOGIES"
	labelArchitecture    = "ARCHITECTURE"
	labelScaffoldCommand = "SCAFFOLD_COMMAND"
	labelScaffoldType    = "SCAFFOLD_TYPE"
	labelPlanBody        = "PROJECT_PLAN"
	labelDependencies    = "DEPENDENCIES"
	labelFileStructure   = "FILE_STRUCTURE"
	labelRecommendations = "DEVELOPMENT_RECOMMENDATIONS"
)

var knownLabels = map[string]bool{
	labelProjectType:     true,
	labelTechnologies:    true,
	labelArchitecture:    true,
	labelScaffoldCommand: true,
	labelScaffoldType:    true,
	labelPlanBody:        true,
	labelDependencies:    true,
	labelFileStructure:   true,
	labelRecommendations: true,
}

// labelRegex matches a potential section header: an ALL_CAPS label followed
// by a colon. Only known labels anchor sections; anything else is content.
var labelRegex = regexp.MustCompile(`^\s*([A-Z_]+)\s*:\s?(.*)$`)

// ParsePlan scans the response for the labeled plan sections. Labels may
// appear in any order; missing sections default to empty (or NONE for the
// scaffold type). A literal NONE scaffold command maps to no command.
func ParsePlan(response string) (*types.ProjectPlan, error) {
	sections := make(map[string][]string)
	current := ""
	found := false

	for _, line := range strings.Split(response, "\n") {
		if m := labelRegex.FindStringSubmatch(line); m != nil && knownLabels[m[1]] {
			current = m[1]
			found = true
			if rest := m[2]; strings.TrimSpace(rest) != "" {
				sections[current] = append(sections[current], rest)
			}
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], line)
		}
	}

	if !found {
		return nil, fmt.Errorf("plan response: %w", ErrMalformedResponse)
	}

	get := func(label string) string {
		return strings.TrimSpace(strings.Join(sections[label], "\n"))
	}

	plan := &types.ProjectPlan{
		ProjectType:     get(labelProjectType),
		Technologies:    splitList(get(labelTechnologies)),
		Architecture:    get(labelArchitecture),
		ScaffoldType:    types.ParseScaffoldType(get(labelScaffoldType)),
		PlanBody:        get(labelPlanBody),
		Dependencies:    get(labelDependencies),
		FileStructure:   get(labelFileStructure),
		Recommendations: get(labelRecommendations),
	}

	command := get(labelScaffoldCommand)
	if strings.EqualFold(command, "NONE") {
		command = ""
	}
	// Canonicalize: a command is present iff the scaffold type is not NONE.
	if command == "" {
		plan.ScaffoldType = types.ScaffoldNone
	}
	if plan.ScaffoldType == types.ScaffoldNone {
		command = ""
	}
	plan.ScaffoldCommand = command

	return plan, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
