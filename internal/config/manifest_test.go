package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadAppliesDefaultsForMissingKeys(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[format]\nmax_line_width = 80\n")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Format.MaxLineWidth != 80 {
		t.Errorf("max_line_width: want 80, got %d", m.Format.MaxLineWidth)
	}
	if m.Format.IndentWidth != 4 {
		t.Errorf("indent_width default: want 4, got %d", m.Format.IndentWidth)
	}
	if !m.Format.RespectDiscretionary {
		t.Error("respect_discretionary must default to true")
	}
}

func TestLoadRejectsNegativeWidths(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[format]\nindent_width = -2\n")
	if _, err := Load(path); err == nil {
		t.Error("negative widths must be rejected")
	}
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[format]\nmax_line_width = 72\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	m, path, err := Find(nested)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if filepath.Dir(path) != root {
		t.Errorf("manifest found at %s, want one in %s", path, root)
	}
	if m.Format.MaxLineWidth != 72 {
		t.Errorf("max_line_width: want 72, got %d", m.Format.MaxLineWidth)
	}
}

func TestFindReportsMissingManifest(t *testing.T) {
	if _, _, err := Find(t.TempDir()); !errors.Is(err, ErrNoManifest) {
		t.Errorf("want ErrNoManifest, got %v", err)
	}
}
