package links

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/arthur-debert/dotty/pkg/logging"
	"github.com/arthur-debert/dotty/pkg/paths"
	"github.com/arthur-debert/dotty/pkg/types"
)

// Checker classifies declared links against the filesystem.
type Checker struct {
	fs     types.FS
	lookup types.NameLookup
}

// NewChecker creates a Checker reading from fs and resolving {{name}}
// references through lookup.
func NewChecker(fs types.FS, lookup types.NameLookup) *Checker {
	return &Checker{fs: fs, lookup: lookup}
}

// Check resolves spec against the app's directories and classifies it.
//
// The Dst token gets name then environment resolution and is joined onto
// dstDir; the Src token gets environment resolution and is joined onto
// srcDir. A resolution error is returned with a zero Link.
func (c *Checker) Check(dstDir, srcDir string, spec types.LinkSpec) (types.Link, error) {
	dstToken, err := paths.Resolve(c.lookup, spec.Dst)
	if err != nil {
		return types.Link{}, err
	}
	srcToken, err := paths.ResolveEnv(spec.Src)
	if err != nil {
		return types.Link{}, err
	}

	return c.Classify(paths.Join(srcDir, srcToken), paths.Join(dstDir, dstToken))
}

// Classify inspects an already resolved pair. On a filesystem error the
// returned Link still carries src and dst.
func (c *Checker) Classify(src, dst string) (types.Link, error) {
	logger := logging.GetLogger("links.checker")
	link := types.Link{Src: src, Dst: dst}

	_, err := c.fs.Lstat(src)
	switch {
	case err == nil:
		target, err := c.fs.Readlink(src)
		if err != nil {
			return link, errors.IO(err, src, "path exists but is not a symlink")
		}
		if target == dst {
			link.Status = types.StatusExists()
		} else {
			link.Status = types.StatusUnexpected(target)
		}
		logger.Trace().Str("src", src).Str("target", target).Str("status", link.Status.Kind.String()).Msg("link present")
		return link, nil
	case !isNotExist(err):
		return link, errors.IO(err, src, "failed to inspect link path")
	}

	if _, err := c.fs.Stat(dst); err != nil {
		if !isNotExist(err) {
			return link, errors.IO(err, dst, "failed to inspect link target")
		}
		link.Status = types.StatusDstUnexists()
	} else {
		link.Status = types.StatusSrcUnexists()
	}

	logger.Trace().Str("src", src).Str("dst", dst).Str("status", link.Status.Kind.String()).Msg("link absent")
	return link, nil
}

// isNotExist checks if an error indicates a file doesn't exist
func isNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}
