package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/go-slate/slate/pkg/core"
	"github.com/go-slate/slate/pkg/view"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the widget tree structure.
type Snapshot struct {
	Tree *TreeNode `json:"tree"`
}

// TreeNode represents a node in the serialized widget tree.
type TreeNode struct {
	ID       string      `json:"id"`
	Type     string      `json:"type"`
	Key      string      `json:"key,omitempty"`
	Text     string      `json:"text,omitempty"`
	Children []*TreeNode `json:"children,omitempty"`
}

// CaptureSnapshot captures the current widget tree.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	if t.root != nil {
		counter := &typeCounter{}
		snap.Tree = captureTreeNode(t.root, counter)
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch
// it reports a diff and instructions for updating. When
// SLATE_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("SLATE_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: SLATE_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: SLATE_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating
// directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a description of the differences between this snapshot
// and other (expected first). Returns empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	return cmp.Diff(other, s)
}

// --- Internal ---

// typeCounter assigns stable IDs like "Box#0", "Box#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureTreeNode(e core.Element, counter *typeCounter) *TreeNode {
	typeName := widgetTypeName(e.Widget())
	node := &TreeNode{
		ID:   counter.next(typeName),
		Type: typeName,
	}
	if w := e.Widget(); w != nil {
		if key := w.Key(); key != nil {
			node.Key = fmt.Sprintf("%v", key)
		}
		if text, ok := w.(view.Text); ok {
			node.Text = text.Content
		}
	}
	e.VisitChildren(func(child core.Element) bool {
		node.Children = append(node.Children, captureTreeNode(child, counter))
		return true
	})
	return node
}

func widgetTypeName(w core.Widget) string {
	if w == nil {
		return "<nil>"
	}
	t := reflect.TypeOf(w)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
