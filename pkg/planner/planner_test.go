package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BRArjun/zor/pkg/llm"
	"github.com/BRArjun/zor/pkg/parser"
	"github.com/BRArjun/zor/pkg/prompts"
	"github.com/BRArjun/zor/pkg/types"
)

// fakeBackend returns a canned reply and records the prompt it received.
type fakeBackend struct {
	reply  string
	prompt string
}

func (f *fakeBackend) Generate(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	f.prompt = prompt
	return f.reply, nil
}

func newTestSynthesizer(backend llm.Backend) *Synthesizer {
	caller := llm.NewCaller(backend, 0, time.Millisecond)
	return NewSynthesizer(caller, llm.Options{Model: "test-model"})
}

func TestPlanParsesLabeledResponse(t *testing.T) {
	t.Chdir(t.TempDir())

	backend := &fakeBackend{reply: `PROJECT_TYPE: CLI tool
MAIN_TECHNOLOGIES: Go, Cobra
SCAFFOLD_COMMAND: go mod init example.com/tool
SCAFFOLD_TYPE: IN_PLACE
PROJECT_PLAN: Start with the root command.
`}

	plan, err := newTestSynthesizer(backend).Plan(context.Background(), types.Task{
		Description: "a CLI tool that prints the weather",
	})

	require.NoError(t, err)
	assert.Equal(t, "CLI tool", plan.ProjectType)
	assert.Equal(t, []string{"Go", "Cobra"}, plan.Technologies)
	assert.Equal(t, types.ScaffoldInPlace, plan.ScaffoldType)
	assert.Equal(t, "go mod init example.com/tool", plan.ScaffoldCommand)

	assert.Contains(t, backend.prompt, "a CLI tool that prints the weather",
		"task description must be substituted into the template")
	assert.NotContains(t, backend.prompt, prompts.TaskPlaceholder)
}

func TestPlanPropagatesMalformedResponse(t *testing.T) {
	t.Chdir(t.TempDir())

	backend := &fakeBackend{reply: "sorry, no plan today"}

	_, err := newTestSynthesizer(backend).Plan(context.Background(), types.Task{Description: "x"})

	require.ErrorIs(t, err, parser.ErrMalformedResponse)
}

func TestPlanPropagatesBackendExhaustion(t *testing.T) {
	t.Chdir(t.TempDir())

	failing := llm.BackendFunc(func(ctx context.Context, prompt string, opts llm.Options) (string, error) {
		return "", errors.New("429 too many requests")
	})

	_, err := newTestSynthesizer(failing).Plan(context.Background(), types.Task{Description: "x"})

	var exhausted *llm.BackendExhaustedError
	require.ErrorAs(t, err, &exhausted)
}
