package links

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/arthur-debert/dotty/pkg/logging"
	"github.com/arthur-debert/dotty/pkg/types"
)

// DirPerm is the mode used for parent directories created for a link.
const DirPerm fs.FileMode = 0755

// Materializer creates symlinks on disk.
type Materializer struct {
	fs types.FS
}

// NewMaterializer creates a Materializer writing to fs.
func NewMaterializer(fs types.FS) *Materializer {
	return &Materializer{fs: fs}
}

// Make creates every missing ancestor of src, then a symlink at src
// pointing to dst. Existing directories are not an error. dst is not
// checked for existence.
func (m *Materializer) Make(src, dst string) (types.Link, error) {
	logger := logging.GetLogger("links.materializer")
	link := types.Link{Src: src, Dst: dst}

	dir := filepath.Dir(src)
	if src == "" || dir == src {
		return link, errors.NoParent(src)
	}

	if err := m.fs.MkdirAll(dir, DirPerm); err != nil {
		return link, errors.IO(err, dir, "failed to create parent directory")
	}
	if err := m.fs.Symlink(dst, src); err != nil {
		return link, errors.IO(err, src, "failed to create symlink")
	}

	logger.Info().Str("src", src).Str("dst", dst).Msg("created symlink")
	link.Status = types.StatusExists()
	return link, nil
}
