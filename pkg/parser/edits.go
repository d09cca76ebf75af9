package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/BRArjun/zor/pkg/types"
)

var (
	// fenceLineRegex matches the beginning of a code block, e.g. ``` or
	// ```go, capturing the language tag and any trailing header text.
	fenceLineRegex = regexp.MustCompile("^\\s*[>|]*```(\\S*)[ \t]*(.*)$")

	// pathMarkerRegex matches a path marker line preceding a code block,
	// e.g. "path: src/app.py" or "File: main.go".
	pathMarkerRegex = regexp.MustCompile(`(?i)^\s*(?:#{1,6}\s+)?(?:\*\*)?(?:path|file|filename)\s*[:=]\s*(.+?)\s*$`)

	hardEndOfBlock = "```END" // explicit end marker
)

func isEndOfCodeBlock(line string) bool {
	t := strings.TrimSpace(line)
	return t == "```" || t == hardEndOfBlock
}

func cleanPath(raw string) string {
	p := strings.TrimSpace(raw)
	p = strings.TrimSuffix(p, "**")
	p = strings.Trim(p, "`\"'")
	return strings.TrimSpace(p)
}

// filenameFromHeader extracts a filename from a fence header of the shape
// "```go # main.go". The filename is the first word after the last '#' and
// must contain an extension.
func filenameFromHeader(header string) string {
	parts := strings.Split(header, "#")
	if len(parts) < 2 {
		return ""
	}
	candidate := strings.TrimSpace(parts[len(parts)-1])
	if candidate == "" {
		return ""
	}
	candidate = strings.Fields(candidate)[0]
	if !strings.Contains(strings.Trim(candidate, "."), ".") {
		return ""
	}
	return candidate
}

// ParseFileEdits scans the response for repeated blocks of a path marker
// line followed by a fenced code block holding the complete file content.
// Fence language tags are arbitrary, the fence body is literal, and prose
// outside recognized blocks is skipped. Paths must stay inside the project
// root; offending blocks are dropped. Duplicate paths keep the last block's
// content. Zero recognized blocks is a malformed response.
func ParseFileEdits(response string) (*types.EditSet, error) {
	set := types.NewEditSet()

	inBlock := false
	keep := false
	var path string
	var content []string
	pendingPath := ""

	flush := func() {
		if keep && path != "" {
			set.Add(types.FileEdit{Path: path, Content: strings.Join(content, "\n")})
		}
		inBlock, keep, path, content = false, false, "", nil
	}

	for _, line := range strings.Split(response, "\n") {
		if inBlock {
			if isEndOfCodeBlock(line) {
				flush()
				continue
			}
			content = append(content, line)
			continue
		}

		if m := pathMarkerRegex.FindStringSubmatch(line); m != nil {
			pendingPath = cleanPath(m[1])
			continue
		}

		if m := fenceLineRegex.FindStringSubmatch(line); m != nil {
			blockPath := pendingPath
			if blockPath == "" {
				blockPath = filenameFromHeader(m[2])
			}
			pendingPath = ""
			inBlock = true
			keep = blockPath != "" && types.ValidRelativePath(blockPath)
			if keep {
				path = blockPath
			}
			content = nil
			continue
		}

		// Prose between a marker and its fence breaks the pair; blank
		// lines do not.
		if strings.TrimSpace(line) != "" {
			pendingPath = ""
		}
	}

	// Unterminated block: keep what accumulated rather than dropping it.
	if inBlock {
		flush()
	}

	if set.Len() == 0 {
		return nil, fmt.Errorf("file edits response: %w", ErrMalformedResponse)
	}
	return set, nil
}
