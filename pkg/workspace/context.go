// Package workspace serializes the relevant parts of an existing codebase
// into prompt context for refactor requests, honoring ignore rules, and
// discovers persistent context files for injection.
package workspace

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultMaxContextBytes caps how much file content is embedded in a
// refactor prompt.
const DefaultMaxContextBytes = 192 * 1024

const maxFileBytes = 128 * 1024

var skippedDirs = map[string]bool{
	".git":         true,
	".zor":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"__pycache__":  true,
	".venv":        true,
}

// getIgnoreRules reads ignore files (.gitignore, .zor/.ignore) and returns
// a gitignore matcher, or nil when no rules exist.
func getIgnoreRules(rootDir string) *ignore.GitIgnore {
	var allRules []string

	for _, path := range []string{
		filepath.Join(rootDir, ".gitignore"),
		filepath.Join(rootDir, ".zor", ".ignore"),
	} {
		if rules, err := readIgnoreFile(path); err == nil {
			allRules = append(allRules, rules...)
		}
	}

	if len(allRules) == 0 {
		return nil
	}
	return ignore.CompileIgnoreLines(allRules...)
}

func readIgnoreFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// BuildContext walks rootDir and serializes readable text files into a
// prompt-ready view of the codebase. Ignored, binary, and oversized files
// are skipped; the result is truncated once maxBytes is reached.
func BuildContext(rootDir string, maxBytes int) (string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxContextBytes
	}
	ign := getIgnoreRules(rootDir)

	var sb strings.Builder
	truncated := false

	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(rootDir, path)
		if relErr != nil || rel == "." {
			return nil
		}
		if d.IsDir() {
			if skippedDirs[d.Name()] || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if ign != nil && ign.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if truncated {
			return nil
		}
		if ign != nil && ign.MatchesPath(rel) {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil || info.Size() > maxFileBytes {
			return nil
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil || looksBinary(data) {
			return nil
		}
		if sb.Len()+len(data) > maxBytes {
			truncated = true
			sb.WriteString("==== [context truncated] ====\n")
			return nil
		}
		fmt.Fprintf(&sb, "==== %s ====\n%s\n", filepath.ToSlash(rel), string(data))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to walk %s: %w", rootDir, err)
	}
	return sb.String(), nil
}

func looksBinary(data []byte) bool {
	probe := data
	if len(probe) > 512 {
		probe = probe[:512]
	}
	return bytes.IndexByte(probe, 0) != -1
}

// FindContextFile searches upward from startDir for a .context.md file and
// falls back to ~/.config/zor/global.md. Returns "" when neither exists.
func FindContextFile(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, ".context.md")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	if home, err := os.UserHomeDir(); err == nil {
		global := filepath.Join(home, ".config", "zor", "global.md")
		if info, err := os.Stat(global); err == nil && !info.IsDir() {
			return global
		}
	}
	return ""
}

// InjectedContext returns the contents of the discovered context file,
// or "" when none applies.
func InjectedContext(startDir string) string {
	path := FindContextFile(startDir)
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
