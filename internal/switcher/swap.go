package switcher

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// replaceSymlink points linkPath at target by creating the new link under a
// temporary name in the same directory and renaming it into place. rename(2)
// is atomic within a filesystem, so linkPath is always either the old link
// or the new one.
func replaceSymlink(linkPath, target string) error {
	dir, base := filepath.Split(linkPath)
	tmp := filepath.Join(dir, "."+base+".switch-"+uuid.NewString())

	if err := os.Symlink(target, tmp); err != nil {
		return err
	}
	if err := os.Rename(tmp, linkPath); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
