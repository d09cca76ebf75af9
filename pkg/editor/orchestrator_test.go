package editor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BRArjun/zor/pkg/llm"
	"github.com/BRArjun/zor/pkg/parser"
	"github.com/BRArjun/zor/pkg/types"
)

// cannedBackend returns a fixed reply and records the prompt it received.
type cannedBackend struct {
	reply  string
	prompt string
}

func (b *cannedBackend) Generate(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	b.prompt = prompt
	return b.reply, nil
}

func newTestOrchestrator(backend llm.Backend) *Orchestrator {
	caller := llm.NewCaller(backend, 0, time.Millisecond)
	return NewOrchestrator(caller, llm.Options{Model: "test-model"})
}

func TestRefactorParsesEditsFromResponse(t *testing.T) {
	t.Chdir(t.TempDir())

	backend := &cannedBackend{reply: "path: main.go\n```go\npackage main\n```\n"}

	edits, err := newTestOrchestrator(backend).Refactor(context.Background(), types.Task{
		Description: "rename the entry point",
		Context:     "==== main.go ====\npackage old",
	})

	require.NoError(t, err)
	require.Equal(t, 1, edits.Len())
	content, ok := edits.Get("main.go")
	require.True(t, ok)
	assert.Equal(t, "package main", content)

	assert.Contains(t, backend.prompt, "rename the entry point")
	assert.Contains(t, backend.prompt, "==== main.go ====",
		"codebase context must be substituted into the template")
}

func TestRefactorPreservesRawResponseOnParseFailure(t *testing.T) {
	t.Chdir(t.TempDir())

	raw := "I was unable to produce any file blocks, sorry."
	backend := &cannedBackend{reply: raw}

	_, err := newTestOrchestrator(backend).Refactor(context.Background(), types.Task{Description: "x"})

	require.ErrorIs(t, err, parser.ErrMalformedResponse)
	saved, readErr := os.ReadFile(filepath.Join(".zor", "last_response.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, raw, string(saved))
}

func TestGenerateFilesIncludesPlanContext(t *testing.T) {
	t.Chdir(t.TempDir())

	backend := &cannedBackend{reply: "path: README.md\n```markdown\n# App\n```\n"}

	edits, err := newTestOrchestrator(backend).GenerateFiles(context.Background(),
		types.Task{Description: "a weather CLI"}, "Project type: CLI tool\n")

	require.NoError(t, err)
	assert.Equal(t, 1, edits.Len())
	assert.Contains(t, backend.prompt, "a weather CLI")
	assert.Contains(t, backend.prompt, "Project type: CLI tool")
}
