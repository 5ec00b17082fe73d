package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed starter
var starterFS embed.FS

// Starter loads the catalog bundled with the binary, so the server works
// before any content directory exists.
func Starter() (*Catalog, error) {
	sub, err := fs.Sub(starterFS, "starter")
	if err != nil {
		return nil, fmt.Errorf("opening starter content: %w", err)
	}
	return Load(sub, []string{"**/*.md"}, nil)
}

// WriteStarter copies the bundled starter content into dir, giving a new
// site something to edit. Existing files are not overwritten.
func WriteStarter(dir string) error {
	sub, err := fs.Sub(starterFS, "starter")
	if err != nil {
		return fmt.Errorf("opening starter content: %w", err)
	}

	return fs.WalkDir(sub, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dst := filepath.Join(dir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		if _, err := os.Stat(dst); err == nil {
			return nil
		}
		data, err := fs.ReadFile(sub, p)
		if err != nil {
			return fmt.Errorf("reading starter %s: %w", p, err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		return nil
	})
}
