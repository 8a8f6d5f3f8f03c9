package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/infinitelist/pkg/infinite"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the container, scroll state and instantiated entries
// of the last frame.
type Snapshot struct {
	Mode    string      `json:"mode"`
	Spacing float64     `json:"spacing,omitempty"`
	Offset  float64     `json:"offset"`
	Items   int         `json:"items"`
	Loading bool        `json:"loading"`
	Entries []EntryNode `json:"entries"`
}

// EntryNode is one serialized entry.
type EntryNode struct {
	Index   int    `json:"index"`
	Kind    string `json:"kind"`
	Key     string `json:"key,omitempty"`
	View    string `json:"view"`
	Visible bool   `json:"visible"`
	Failed  bool   `json:"failed,omitempty"`
	Expand  bool   `json:"expand,omitempty"`
	Align   string `json:"align,omitempty"`
}

// CaptureSnapshot captures the last pumped frame.
func (lt *ListTester[T, V]) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{Entries: []EntryNode{}}
	if lt.host == nil {
		return snap
	}
	frame := lt.host.Frame()
	snap.Mode = frame.Container.Mode.String()
	snap.Spacing = round2(frame.Container.Spacing)
	snap.Offset = round2(lt.host.Offset())
	snap.Items = frame.ItemCount()
	snap.Loading = frame.Loading

	entries := lt.host.Entries()
	for i, m := range lt.matches() {
		node := EntryNode{
			Index:   m.Index,
			Kind:    m.Kind.String(),
			View:    fmt.Sprint(m.View),
			Visible: m.Visible,
			Failed:  m.Failed,
			Expand:  entries[i].Layout.ExpandWidth,
		}
		if m.Item != nil {
			node.Key = fmt.Sprint(m.Item)
		}
		if entries[i].Layout.Alignment == infinite.AlignCenter {
			node.Align = "center"
		}
		snap.Entries = append(snap.Entries, node)
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// INFINITELIST_UPDATE_SNAPSHOTS=1 is set, the file is silently updated
// instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("INFINITELIST_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: INFINITELIST_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: INFINITELIST_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
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

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
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

// lineDiff reports differing lines by position.
func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}
