package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Env is an isolated home directory plus dotfiles base directory.
type Env struct {
	Root    string
	Home    string
	BaseDir string
}

// NewEnv creates Root/home and Root/dotfiles and points HOME at the former.
// Root has symlinks resolved so paths compare equal to what the OS reports.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	env := &Env{
		Root:    root,
		Home:    CreateDir(t, root, "home"),
		BaseDir: CreateDir(t, root, "dotfiles"),
	}
	t.Setenv("HOME", env.Home)
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))

	return env
}

// AppFile creates a file inside BaseDir/app and returns its path.
func (e *Env) AppFile(t *testing.T, app, name, content string) string {
	t.Helper()
	return CreateFile(t, filepath.Join(e.BaseDir, app), name, content)
}

// HomePath joins name onto the home directory.
func (e *Env) HomePath(name string) string {
	return filepath.Join(e.Home, name)
}

// WriteConfig writes dotty.toml into BaseDir and returns its path.
func (e *Env) WriteConfig(t *testing.T, content string) string {
	t.Helper()
	return CreateFile(t, e.BaseDir, "dotty.toml", content)
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// CreateSymlink creates a symbolic link pointing to target.
// It fails the test if the symlink cannot be created.
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		t.Fatalf("Failed to create parent directory for symlink %s: %v", link, err)
	}

	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to create symlink %s -> %s: %v", link, target, err)
	}
}

// SymlinkExists checks if a path is a symbolic link.
func SymlinkExists(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeSymlink != 0
}

// AssertSymlink checks that a symlink exists and points to the expected target.
func AssertSymlink(t *testing.T, link, expectedTarget string) {
	t.Helper()

	if !SymlinkExists(t, link) {
		t.Fatalf("Symlink %s does not exist", link)
	}

	actualTarget, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("Failed to read symlink %s: %v", link, err)
	}
	if actualTarget != expectedTarget {
		t.Errorf("Symlink %s target mismatch\nExpected: %s\nActual: %s", link, expectedTarget, actualTarget)
	}
}

// AssertNoFile checks that nothing, not even a dangling symlink, exists at path.
func AssertNoFile(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Errorf("File %s exists but should not", path)
	}
}

// SkipIfRoot skips tests that rely on permission errors.
func SkipIfRoot(t *testing.T) {
	t.Helper()

	if os.Geteuid() == 0 {
		t.Skip("Test relies on permission checks that root bypasses")
	}
}
