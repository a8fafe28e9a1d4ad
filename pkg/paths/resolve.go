package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/arthur-debert/dotty/pkg/types"
)

const (
	envSigil  = "$"
	homeSigil = "~"
	refOpen   = "{{"
	refClose  = "}}"
)

// ResolveEnv expands environment references in path. Only components that
// consist entirely of "$VAR" or "${VAR}" are expanded, plus a leading "~".
func ResolveEnv(path string) (string, error) {
	return walk(path, func(i int, comp string) (string, error) {
		if i == 0 && comp == homeSigil {
			home, err := HomeDir()
			if err != nil {
				return "", errors.InvalidEnvVar(path, envSigil+EnvHome)
			}
			return home, nil
		}

		name, ok := envRef(comp)
		if !ok {
			return comp, nil
		}
		value, set := os.LookupEnv(name)
		if !set {
			return "", errors.InvalidEnvVar(path, comp)
		}
		return value, nil
	})
}

// ResolveName expands {{name}} components in path to the destination
// directory lookup reports for name.
func ResolveName(lookup types.NameLookup, path string) (string, error) {
	return walk(path, func(_ int, comp string) (string, error) {
		name, ok := nameRef(comp)
		if !ok {
			return comp, nil
		}
		dir, found := lookup.DstDir(name)
		if !found {
			return "", errors.InvalidNameRef(path, comp)
		}
		return dir, nil
	})
}

// Resolve applies name resolution then environment resolution.
func Resolve(lookup types.NameLookup, path string) (string, error) {
	named, err := ResolveName(lookup, path)
	if err != nil {
		return "", err
	}
	return ResolveEnv(named)
}

// Join joins p onto base. An absolute p replaces base. Neither side is
// cleaned, so ".." components are kept as written.
func Join(base, p string) string {
	if p == "" {
		return base
	}
	return push(base, p)
}

// walk splits path into components, maps each one and reassembles them.
func walk(path string, fn func(i int, comp string) (string, error)) (string, error) {
	var out string
	for i, comp := range components(path) {
		mapped, err := fn(i, comp)
		if err != nil {
			return "", err
		}
		out = push(out, mapped)
	}
	return out, nil
}

// components splits path on the OS separator. A leading separator becomes a
// root component; empty and "." components in the middle are dropped.
func components(path string) []string {
	sep := string(filepath.Separator)

	var comps []string
	if strings.HasPrefix(path, sep) {
		comps = append(comps, sep)
	}
	for i, part := range strings.Split(path, sep) {
		if part == "" || (part == "." && i > 0) {
			continue
		}
		comps = append(comps, part)
	}
	return comps
}

// push appends comp to acc with a single separator. An absolute comp
// replaces acc.
func push(acc, comp string) string {
	if acc == "" || filepath.IsAbs(comp) {
		return comp
	}
	if strings.HasSuffix(acc, string(filepath.Separator)) {
		return acc + comp
	}
	return acc + string(filepath.Separator) + comp
}

func envRef(comp string) (string, bool) {
	if !strings.HasPrefix(comp, envSigil) {
		return "", false
	}
	if strings.HasPrefix(comp, "${") && strings.HasSuffix(comp, "}") {
		return comp[2 : len(comp)-1], true
	}
	return comp[1:], true
}

func nameRef(comp string) (string, bool) {
	if len(comp) < len(refOpen)+len(refClose) {
		return "", false
	}
	if !strings.HasPrefix(comp, refOpen) || !strings.HasSuffix(comp, refClose) {
		return "", false
	}
	return comp[len(refOpen) : len(comp)-len(refClose)], true
}
