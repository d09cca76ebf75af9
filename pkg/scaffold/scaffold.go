// Package scaffold interprets a plan's scaffold directive: an external
// command plus a behavior mode that decides the working directory, run
// before generated files are overlaid.
package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/BRArjun/zor/pkg/types"
	"github.com/BRArjun/zor/pkg/utils"
)

// ErrDirectoryNotEmpty is returned when a NEEDS_EMPTY_DIR scaffold targets
// a directory that already has contents.
var ErrDirectoryNotEmpty = errors.New("target directory exists and is not empty")

// Run executes the plan's scaffold command in the working directory its
// scaffold type requires. A NONE type is a no-op success. A non-zero exit
// is reported in the result, not raised; the caller decides whether to
// proceed with overlaying generated files.
func Run(ctx context.Context, plan *types.ProjectPlan, targetDir string) (*types.ScaffoldResult, error) {
	logger := utils.GetLogger()

	var workDir string
	switch plan.ScaffoldType {
	case types.ScaffoldNone:
		return &types.ScaffoldResult{Skipped: true}, nil

	case types.ScaffoldCreatesOwnDir:
		abs, err := filepath.Abs(targetDir)
		if err != nil {
			return nil, fmt.Errorf("could not resolve target directory: %w", err)
		}
		workDir = filepath.Dir(abs)
		if err := os.MkdirAll(workDir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("could not create parent directory %s: %w", workDir, err)
		}

	case types.ScaffoldNeedsEmptyDir:
		if err := os.MkdirAll(targetDir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("could not create target directory %s: %w", targetDir, err)
		}
		entries, err := os.ReadDir(targetDir)
		if err != nil {
			return nil, fmt.Errorf("could not read target directory %s: %w", targetDir, err)
		}
		if len(entries) > 0 {
			return nil, fmt.Errorf("%s: %w", targetDir, ErrDirectoryNotEmpty)
		}
		workDir = targetDir

	case types.ScaffoldInPlace:
		if err := os.MkdirAll(targetDir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("could not create target directory %s: %w", targetDir, err)
		}
		workDir = targetDir
	}

	logger.Logf("Running scaffold command %q in %s (%s)", plan.ScaffoldCommand, workDir, plan.ScaffoldType)
	result := execute(ctx, plan.ScaffoldCommand, workDir)
	if result.Failed() {
		logger.Logf("Scaffold command exited with code %d", result.ExitCode)
	}
	return result, nil
}

func execute(ctx context.Context, command, dir string) *types.ScaffoldResult {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir

	var output string
	var runErr error
	if term.IsTerminal(int(os.Stdout.Fd())) {
		output, runErr = runWithPty(cmd)
	} else {
		var buf bytes.Buffer
		cmd.Stdout = &buf
		cmd.Stderr = &buf
		runErr = cmd.Run()
		output = buf.String()
	}

	exitCode := 0
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
			output += runErr.Error()
		}
	}

	return &types.ScaffoldResult{
		Command:  command,
		Dir:      dir,
		ExitCode: exitCode,
		Output:   output,
	}
}

// runWithPty runs the command attached to a pseudo-terminal so interactive
// scaffold tools behave, teeing output to the user while capturing it.
func runWithPty(cmd *exec.Cmd) (string, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		// Fall back to a plain pipe when no pty is available.
		var buf bytes.Buffer
		cmd.Stdout = &buf
		cmd.Stderr = &buf
		runErr := cmd.Run()
		return buf.String(), runErr
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	// The pty read returns an error when the child exits; output up to
	// that point is complete.
	_, _ = io.Copy(io.MultiWriter(os.Stdout, &buf), ptmx)

	return buf.String(), cmd.Wait()
}
