// Package changetracker renders colored diffs between the current and
// proposed file contents so the user can review an edit set before apply.
package changetracker

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	RedColor    = "\x1b[31m"
	GreenColor  = "\x1b[32m"
	YellowColor = "\x1b[33m"
	BoldStyle   = "\x1b[1m"
	ResetColor  = "\x1b[0m"
)

// GetDiff returns a colored character diff of the change, prefixed with a
// stats line for the file.
func GetDiff(filename, originalCode, newCode string) string {
	if originalCode == newCode {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(originalCode, newCode, true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var result strings.Builder
	result.WriteString(getStatsFromDiff(diffs, filename))
	result.WriteString(dmp.DiffPrettyText(diffs))
	if !strings.HasSuffix(result.String(), "\n") {
		result.WriteString("\n")
	}
	return result.String()
}

func getStatsFromDiff(diffs []diffmatchpatch.Diff, filename string) string {
	var result strings.Builder
	additions, deletions := calculateChanges(diffs)
	result.WriteString(fmt.Sprintf("%s%s%s%s ", BoldStyle, YellowColor, filename, ResetColor))
	if additions > 0 {
		result.WriteString(fmt.Sprintf("%s%s+++%d%s ", BoldStyle, GreenColor, additions, ResetColor))
	}
	if deletions > 0 {
		result.WriteString(fmt.Sprintf("%s%s---%d%s", BoldStyle, RedColor, deletions, ResetColor))
	}
	result.WriteString("\n")
	return result.String()
}

// calculateChanges counts added and deleted characters in the diff.
func calculateChanges(diffs []diffmatchpatch.Diff) (additions, deletions int) {
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			additions += len(diff.Text)
		case diffmatchpatch.DiffDelete:
			deletions += len(diff.Text)
		}
	}
	return
}
