package types

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Task is the immutable input to a single planning or refactor invocation.
// Context carries an optional serialized view of the existing codebase.
type Task struct {
	Description string
	Context     string
}

// ScaffoldType describes how a plan's scaffold command relates to the
// target directory.
type ScaffoldType int

const (
	// ScaffoldNone means the plan has no scaffold step.
	ScaffoldNone ScaffoldType = iota
	// ScaffoldCreatesOwnDir runs the command in the parent of the target
	// directory; the command is expected to create the directory itself.
	ScaffoldCreatesOwnDir
	// ScaffoldNeedsEmptyDir runs the command inside the target directory,
	// which must be empty.
	ScaffoldNeedsEmptyDir
	// ScaffoldInPlace runs the command inside the target directory as-is.
	ScaffoldInPlace
)

// ParseScaffoldType maps the model's free-text scaffold type onto the
// closed enum. Unrecognized or empty values map to ScaffoldNone.
func ParseScaffoldType(s string) ScaffoldType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CREATES_OWN_DIR":
		return ScaffoldCreatesOwnDir
	case "NEEDS_EMPTY_DIR":
		return ScaffoldNeedsEmptyDir
	case "IN_PLACE":
		return ScaffoldInPlace
	default:
		return ScaffoldNone
	}
}

func (t ScaffoldType) String() string {
	switch t {
	case ScaffoldCreatesOwnDir:
		return "CREATES_OWN_DIR"
	case ScaffoldNeedsEmptyDir:
		return "NEEDS_EMPTY_DIR"
	case ScaffoldInPlace:
		return "IN_PLACE"
	default:
		return "NONE"
	}
}

// ProjectPlan is the parsed result of a planning call.
// Invariant: ScaffoldCommand is non-empty iff ScaffoldType != ScaffoldNone.
type ProjectPlan struct {
	ProjectType     string
	Technologies    []string
	Architecture    string
	ScaffoldCommand string
	ScaffoldType    ScaffoldType
	PlanBody        string
	Dependencies    string
	FileStructure   string
	Recommendations string
}

// HasScaffold reports whether the plan carries a runnable scaffold step.
func (p *ProjectPlan) HasScaffold() bool {
	return p.ScaffoldType != ScaffoldNone && p.ScaffoldCommand != ""
}

// FileEdit is one unit of a refactor: a relative path and the complete
// intended new content of that file.
type FileEdit struct {
	Path    string
	Content string
}

// EditSet is an ordered collection of FileEdits, unique by path. Adding an
// edit for an existing path replaces its content (last occurrence wins).
type EditSet struct {
	edits []FileEdit
	index map[string]int
}

func NewEditSet() *EditSet {
	return &EditSet{index: make(map[string]int)}
}

// Add inserts or replaces the edit for e.Path.
func (s *EditSet) Add(e FileEdit) {
	if i, ok := s.index[e.Path]; ok {
		s.edits[i].Content = e.Content
		return
	}
	s.index[e.Path] = len(s.edits)
	s.edits = append(s.edits, e)
}

// Edits returns the edits in insertion order.
func (s *EditSet) Edits() []FileEdit {
	return s.edits
}

func (s *EditSet) Len() int {
	return len(s.edits)
}

// Get returns the content for path if present.
func (s *EditSet) Get(path string) (string, bool) {
	i, ok := s.index[path]
	if !ok {
		return "", false
	}
	return s.edits[i].Content, true
}

// ValidRelativePath reports whether path is non-empty, relative, and stays
// inside the project root after cleaning.
func ValidRelativePath(path string) bool {
	if path == "" || filepath.IsAbs(path) {
		return false
	}
	clean := filepath.Clean(path)
	return clean != ".." && !strings.HasPrefix(clean, ".."+string(filepath.Separator))
}

// FailedEdit records a single file write that could not be completed.
type FailedEdit struct {
	Path string
	Err  error
}

// AppliedEditReport aggregates per-path outcomes of applying an EditSet.
// A failed write never aborts the batch; it lands here instead.
type AppliedEditReport struct {
	Applied []string
	Failed  []FailedEdit
}

// Ok reports whether every edit was written.
func (r *AppliedEditReport) Ok() bool {
	return len(r.Failed) == 0
}

// Summary renders a one-line report suitable for logging.
func (r *AppliedEditReport) Summary() string {
	return fmt.Sprintf("applied %d file(s), %d failure(s)", len(r.Applied), len(r.Failed))
}

// ScaffoldResult captures the outcome of running a plan's scaffold command.
type ScaffoldResult struct {
	Command  string
	Dir      string
	Skipped  bool
	ExitCode int
	Output   string
}

// Failed reports a non-zero exit from the scaffold command. This is a
// warning condition; the caller decides whether to continue.
func (r *ScaffoldResult) Failed() bool {
	return !r.Skipped && r.ExitCode != 0
}

// CallAttempt is the transient record of one backend call inside the retry
// loop. It is never persisted.
type CallAttempt struct {
	Number      int
	Elapsed     time.Duration
	RateLimited bool
	Err         error
}
