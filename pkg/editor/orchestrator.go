// Package editor drives refactor requests: it builds the prompt from the
// task and codebase context, calls the backend through the resilient call
// layer, parses the reply into an EditSet, and reconciles that set against
// the file system.
package editor

import (
	"context"
	"fmt"

	"github.com/BRArjun/zor/pkg/llm"
	"github.com/BRArjun/zor/pkg/parser"
	"github.com/BRArjun/zor/pkg/prompts"
	"github.com/BRArjun/zor/pkg/types"
	"github.com/BRArjun/zor/pkg/utils"
)

type Orchestrator struct {
	caller *llm.Caller
	opts   llm.Options
	logger *utils.Logger
}

func NewOrchestrator(caller *llm.Caller, opts llm.Options) *Orchestrator {
	return &Orchestrator{
		caller: caller,
		opts:   opts,
		logger: utils.GetLogger(),
	}
}

// Refactor requests whole-file edits for the task against the codebase view
// in task.Context. Backend and parse errors propagate to the caller; the
// raw response is preserved when parsing fails.
func (o *Orchestrator) Refactor(ctx context.Context, task types.Task) (*types.EditSet, error) {
	prompt := prompts.RenderRefactorPrompt(task.Description, task.Context)
	return o.requestEdits(ctx, prompt)
}

// GenerateFiles requests the initial file set for a freshly planned (and
// possibly scaffolded) project.
func (o *Orchestrator) GenerateFiles(ctx context.Context, task types.Task, planContext string) (*types.EditSet, error) {
	prompt := prompts.RenderGeneratePrompt(task.Description, planContext)
	return o.requestEdits(ctx, prompt)
}

func (o *Orchestrator) requestEdits(ctx context.Context, prompt string) (*types.EditSet, error) {
	raw, err := o.caller.Call(ctx, prompt, o.opts)
	if err != nil {
		return nil, fmt.Errorf("edit generation call failed: %w", err)
	}

	set, err := parser.ParseFileEdits(raw)
	if err != nil {
		o.logger.LogError(err)
		o.logger.Log("Edit parse failure, raw response preserved in .zor/last_response.txt")
		utils.WriteLocalCopy("last_response.txt", []byte(raw))
		return nil, err
	}

	o.logger.Logf("Parsed %d file edit(s) from response", set.Len())
	return set, nil
}
