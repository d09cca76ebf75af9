// Package planner turns a task description into a parsed ProjectPlan by
// rendering the planning template, driving the resilient call layer, and
// parsing the labeled response.
package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/BRArjun/zor/pkg/llm"
	"github.com/BRArjun/zor/pkg/parser"
	"github.com/BRArjun/zor/pkg/prompts"
	"github.com/BRArjun/zor/pkg/types"
	"github.com/BRArjun/zor/pkg/utils"
)

type Synthesizer struct {
	caller *llm.Caller
	opts   llm.Options
	logger *utils.Logger
}

func NewSynthesizer(caller *llm.Caller, opts llm.Options) *Synthesizer {
	return &Synthesizer{
		caller: caller,
		opts:   opts,
		logger: utils.GetLogger(),
	}
}

// Plan synthesizes a ProjectPlan for the task. Backend and parse errors
// propagate; on a parse failure the raw response is preserved under .zor/
// for diagnostics.
func (s *Synthesizer) Plan(ctx context.Context, task types.Task) (*types.ProjectPlan, error) {
	prompt := prompts.RenderPlanPrompt(task.Description)

	raw, err := s.caller.Call(ctx, prompt, s.opts)
	if err != nil {
		return nil, fmt.Errorf("planning call failed: %w", err)
	}

	plan, err := parser.ParsePlan(raw)
	if err != nil {
		s.logger.LogError(err)
		s.logger.Log("Plan parse failure, raw response preserved in .zor/last_response.txt")
		utils.WriteLocalCopy("last_response.txt", []byte(raw))
		return nil, err
	}

	s.logger.Logf("Synthesized plan: type=%q scaffold=%s", plan.ProjectType, plan.ScaffoldType)
	return plan, nil
}

// Summary renders the plan as prompt context for the file generation step.
func Summary(plan *types.ProjectPlan) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Project type: %s\n", plan.ProjectType)
	if len(plan.Technologies) > 0 {
		fmt.Fprintf(&sb, "Technologies: %s\n", strings.Join(plan.Technologies, ", "))
	}
	if plan.Architecture != "" {
		fmt.Fprintf(&sb, "Architecture:\n%s\n", plan.Architecture)
	}
	if plan.PlanBody != "" {
		fmt.Fprintf(&sb, "Plan:\n%s\n", plan.PlanBody)
	}
	if plan.Dependencies != "" {
		fmt.Fprintf(&sb, "Dependencies:\n%s\n", plan.Dependencies)
	}
	if plan.FileStructure != "" {
		fmt.Fprintf(&sb, "File structure:\n%s\n", plan.FileStructure)
	}
	if plan.HasScaffold() {
		fmt.Fprintf(&sb, "Scaffolded with: %s (%s)\n", plan.ScaffoldCommand, plan.ScaffoldType)
	}
	return sb.String()
}
