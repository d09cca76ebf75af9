package editor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BRArjun/zor/pkg/changetracker"
	"github.com/BRArjun/zor/pkg/types"
	"github.com/BRArjun/zor/pkg/utils"
)

// Apply writes every edit in the set under rootDir, creating missing parent
// directories and overwriting existing files unconditionally. A failure on
// one path never aborts the rest; outcomes are aggregated per path in the
// returned report.
func Apply(set *types.EditSet, rootDir string) *types.AppliedEditReport {
	logger := utils.GetLogger()
	report := &types.AppliedEditReport{}

	for _, edit := range set.Edits() {
		if err := applyOne(edit, rootDir); err != nil {
			report.Failed = append(report.Failed, types.FailedEdit{Path: edit.Path, Err: err})
			logger.Logf("Apply failed for %s: %v", edit.Path, err)
			continue
		}
		report.Applied = append(report.Applied, edit.Path)
	}

	logger.Log("Apply report: " + report.Summary())
	return report
}

func applyOne(edit types.FileEdit, rootDir string) error {
	if !types.ValidRelativePath(edit.Path) {
		return fmt.Errorf("path escapes project root: %s", edit.Path)
	}

	target := filepath.Join(rootDir, edit.Path)
	if dir := filepath.Dir(target); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("could not create directory %s: %w", dir, err)
		}
	}

	return utils.SaveFile(target, edit.Content)
}

// PreviewDiffs renders colored diffs of the edit set against the files
// currently on disk. Missing files diff against empty content.
func PreviewDiffs(set *types.EditSet, rootDir string) string {
	var out string
	for _, edit := range set.Edits() {
		original := ""
		if data, err := os.ReadFile(filepath.Join(rootDir, edit.Path)); err == nil {
			original = string(data)
		}
		out += changetracker.GetDiff(edit.Path, original, edit.Content)
	}
	return out
}
