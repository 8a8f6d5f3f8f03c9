package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/infinitelist/pkg/infinite"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	r, err := Resolve(dir, Overrides{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !r.Refresh {
		t.Error("Refresh = false, want true")
	}
	if !r.Capabilities.LazyStack {
		t.Error("LazyStack = false, want true for an unknown toolkit")
	}
	if r.Mode() != infinite.ModeRefreshableLazy {
		t.Errorf("Mode = %v, want %v", r.Mode(), infinite.ModeRefreshableLazy)
	}
	if r.SourceKind != SourceMemory {
		t.Errorf("SourceKind = %q, want %q", r.SourceKind, SourceMemory)
	}
	if r.Total != DefaultTotal {
		t.Errorf("Total = %d, want %d", r.Total, DefaultTotal)
	}
	if r.LogLevel != "info" || r.LogFormat != "text" || r.LogOutput != "stderr" {
		t.Errorf("log = %s/%s/%s, want info/text/stderr", r.LogLevel, r.LogFormat, r.LogOutput)
	}
	if r.LazyStackSince != DefaultLazyStackSince {
		t.Errorf("LazyStackSince = %q, want %q", r.LazyStackSince, DefaultLazyStackSince)
	}
}

func TestResolveYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
list:
  refresh: false
  spacing: 12
  page_size: 5
source:
  kind: sqlite
  path: items.db
  latency: 150ms
log:
  level: DEBUG
  format: json
`)
	r, err := Resolve(dir, Overrides{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Refresh {
		t.Error("Refresh = true, want false")
	}
	if r.Mode() != infinite.ModePlainList {
		t.Errorf("Mode = %v, want %v", r.Mode(), infinite.ModePlainList)
	}
	if r.Spacing != 12 || r.PageSize != 5 {
		t.Errorf("Spacing, PageSize = %v, %d, want 12, 5", r.Spacing, r.PageSize)
	}
	if r.SourceKind != SourceSQLite {
		t.Errorf("SourceKind = %q, want %q", r.SourceKind, SourceSQLite)
	}
	if want := filepath.Join(dir, "items.db"); r.SourcePath != want {
		t.Errorf("SourcePath = %q, want %q", r.SourcePath, want)
	}
	if r.Latency != 150*time.Millisecond {
		t.Errorf("Latency = %v, want 150ms", r.Latency)
	}
	if r.LogLevel != "debug" || r.LogFormat != "json" {
		t.Errorf("log = %s/%s, want debug/json", r.LogLevel, r.LogFormat)
	}
}

func TestResolveToolkitVersion(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    bool
		version string
	}{
		{"older", "host:\n  toolkit_version: \"13.7\"\n", false, "v13.7.0"},
		{"equal", "host:\n  toolkit_version: v14\n", true, "v14.0.0"},
		{"newer", "host:\n  toolkit_version: 17.2.1\n", true, "v17.2.1"},
		{"custom threshold", "host:\n  toolkit_version: \"15\"\n  lazy_stack_since: \"16.0\"\n", false, "v15.0.0"},
		{"explicit wins", "host:\n  toolkit_version: \"17\"\n  lazy_stack: false\n", false, "v17.0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.yaml)
			r, err := Resolve(dir, Overrides{})
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if r.Capabilities.LazyStack != tt.want {
				t.Errorf("LazyStack = %v, want %v", r.Capabilities.LazyStack, tt.want)
			}
			if r.ToolkitVersion != tt.version {
				t.Errorf("ToolkitVersion = %q, want %q", r.ToolkitVersion, tt.version)
			}
		})
	}
}

func TestResolveEagerMode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "host:\n  toolkit_version: \"13\"\n")
	r, err := Resolve(dir, Overrides{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Mode() != infinite.ModeRefreshableEager {
		t.Errorf("Mode = %v, want %v", r.Mode(), infinite.ModeRefreshableEager)
	}
}

func TestResolveLayering(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "list:\n  page_size: 5\n  spacing: 4\nsource:\n  total: 10\n")
	writeFile(t, dir, EnvFileName, "INFINITELIST_PAGE_SIZE=7\nINFINITELIST_TOTAL=30\nINFINITELIST_LAZY_STACK=false\n")
	t.Setenv("INFINITELIST_TOTAL", "40")

	r, err := Resolve(dir, Overrides{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.PageSize != 7 {
		t.Errorf("PageSize = %d, want 7 from .env", r.PageSize)
	}
	if r.Total != 40 {
		t.Errorf("Total = %d, want 40 from the environment", r.Total)
	}
	if r.Spacing != 4 {
		t.Errorf("Spacing = %v, want 4 from yaml", r.Spacing)
	}
	if r.Capabilities.LazyStack || !r.LazyStackExplicit {
		t.Errorf("LazyStack = %v explicit %v, want false explicit", r.Capabilities.LazyStack, r.LazyStackExplicit)
	}

	yes := true
	r, err = Resolve(dir, Overrides{PageSize: 9, Total: 3, LazyStack: &yes, Latency: time.Second})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.PageSize != 9 || r.Total != 3 || !r.Capabilities.LazyStack {
		t.Errorf("overrides not applied: page %d total %d lazy %v", r.PageSize, r.Total, r.Capabilities.LazyStack)
	}
	if r.Latency != time.Second {
		t.Errorf("Latency = %v, want 1s", r.Latency)
	}
}

func TestResolveConfigFileOverride(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(other, []byte("list:\n  refresh: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := Resolve(dir, Overrides{ConfigFile: other})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Refresh {
		t.Error("Refresh = true, want false from the custom file")
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  string
		want string
	}{
		{"bad yaml", "list: [", "", "failed to parse"},
		{"negative spacing", "list:\n  spacing: -1\n", "", "list.spacing"},
		{"bad version", "host:\n  toolkit_version: banana\n", "", "host.toolkit_version"},
		{"bad threshold", "host:\n  lazy_stack_since: x.y\n", "", "host.lazy_stack_since"},
		{"bad source", "source:\n  kind: postgres\n", "", "source.kind"},
		{"bad latency", "source:\n  latency: soon\n", "", "source.latency"},
		{"bad level", "log:\n  level: loud\n", "", "log.level"},
		{"bad format", "log:\n  format: xml\n", "", "log.format"},
		{"bad env bool", "", "INFINITELIST_REFRESH=maybe\n", "INFINITELIST_REFRESH"},
		{"bad env int", "", "INFINITELIST_PAGE_SIZE=ten\n", "INFINITELIST_PAGE_SIZE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.yaml != "" {
				writeFile(t, dir, FileName, tt.yaml)
			}
			if tt.env != "" {
				writeFile(t, dir, EnvFileName, tt.env)
			}
			_, err := Resolve(dir, Overrides{})
			if err == nil {
				t.Fatal("Resolve succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadOptionalMissing(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.List.Refresh != nil || cfg.Source.Kind != "" {
		t.Errorf("LoadOptional of a missing file = %+v, want zero", cfg)
	}
}
