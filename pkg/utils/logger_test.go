package utils

import (
	"os"
	"testing"
)

func TestGetLoggerKeepsInteractionMode(t *testing.T) {
	t.Chdir(t.TempDir())

	InitLogger(false)
	logger := GetLogger()
	if !logger.userInteractionEnabled {
		t.Fatal("fetching the logger must not disable confirmation prompts")
	}

	InitLogger(true)
	if GetLogger().userInteractionEnabled {
		t.Fatal("fetching the logger must not re-enable confirmation prompts")
	}
}

func TestConfirmationReadsStdinAfterComponentFetch(t *testing.T) {
	t.Chdir(t.TempDir())

	logger := InitLogger(false)
	GetLogger() // a component fetching the logger mid-flow

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.WriteString("no\n"); err != nil {
		t.Fatal(err)
	}
	w.Close()
	orig := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	if logger.AskForConfirmation("Apply edits?", true) {
		t.Fatal("a 'no' answer must override the default response")
	}
}

func TestConfirmationUsesDefaultWhenNonInteractive(t *testing.T) {
	t.Chdir(t.TempDir())

	logger := InitLogger(true)
	if !logger.AskForConfirmation("Apply edits?", true) {
		t.Fatal("non-interactive mode must return the default response")
	}
	if logger.AskForConfirmation("Apply edits?", false) {
		t.Fatal("non-interactive mode must return the default response")
	}
}
