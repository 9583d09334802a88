package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"platen/internal/layout"
)

// ManifestName is the file the loader searches for.
const ManifestName = "platen.toml"

// ErrNoManifest indicates that no manifest was found walking up from the
// start directory. Callers fall back to defaults.
var ErrNoManifest = errors.New("config: no manifest found")

// Manifest is the on-disk configuration. Only the [format] table is defined
// today.
type Manifest struct {
	Format Format `toml:"format"`
}

// Format maps onto layout.Options.
type Format struct {
	MaxLineWidth         int  `toml:"max_line_width"`
	IndentWidth          int  `toml:"indent_width"`
	MaxBlankLines        int  `toml:"max_blank_lines"`
	RespectDiscretionary bool `toml:"respect_discretionary"`
}

// Default returns the manifest used when no platen.toml exists.
func Default() Manifest {
	return Manifest{Format: Format{
		MaxLineWidth:         100,
		IndentWidth:          4,
		MaxBlankLines:        1,
		RespectDiscretionary: true,
	}}
}

// Options converts the manifest's format table to engine options.
func (m Manifest) Options() layout.Options {
	return layout.Options{
		MaxLineWidth:         m.Format.MaxLineWidth,
		IndentWidth:          m.Format.IndentWidth,
		MaxBlankLines:        m.Format.MaxBlankLines,
		RespectDiscretionary: m.Format.RespectDiscretionary,
	}
}

// Load parses a manifest file. Keys absent from the file keep their
// defaults.
func Load(path string) (Manifest, error) {
	m := Default()
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if m.Format.MaxLineWidth < 0 || m.Format.IndentWidth < 0 || m.Format.MaxBlankLines < 0 {
		return Manifest{}, fmt.Errorf("%s: negative widths are not allowed", path)
	}
	return m, nil
}

// Find walks from dir toward the filesystem root looking for a manifest and
// loads the first one it sees. Returns ErrNoManifest when the walk ends
// without a hit.
func Find(dir string) (Manifest, string, error) {
	cur, err := filepath.Abs(dir)
	if err != nil {
		return Manifest{}, "", err
	}
	for {
		path := filepath.Join(cur, ManifestName)
		if _, err := os.Stat(path); err == nil {
			m, err := Load(path)
			return m, path, err
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return Manifest{}, "", ErrNoManifest
		}
		cur = parent
	}
}
