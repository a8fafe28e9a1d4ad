package paths

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/arthur-debert/dotty/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApps() types.Apps {
	return types.Apps{
		"vim":   {Name: "vim", DstDir: "/base/vim"},
		"other": {Name: "other", DstDir: "/base/other"},
	}
}

func TestResolveEnv(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("DOTTY_TEST_DIR", "config")
	t.Setenv("DOTTY_TEST_ABS", "/opt/tools")
	t.Setenv("DOTTY_TEST_EMPTY", "")

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"no references", "vim/vimrc", "vim/vimrc"},
		{"absolute without references", "/etc/vimrc", "/etc/vimrc"},
		{"relative variable", "$DOTTY_TEST_DIR/nvim", "config/nvim"},
		{"braced variable", "${DOTTY_TEST_DIR}/nvim", "config/nvim"},
		{"absolute variable replaces prefix", "$HOME/.vimrc", "/home/tester/.vimrc"},
		{"absolute variable mid path", "ignored/$DOTTY_TEST_ABS/bin", "/opt/tools/bin"},
		{"repeated variable", "$DOTTY_TEST_DIR/$DOTTY_TEST_DIR", "config/config"},
		{"empty variable", "a/$DOTTY_TEST_EMPTY/b", "a/b"},
		{"leading tilde", "~/.zshrc", "/home/tester/.zshrc"},
		{"tilde not leading", "a/~/b", "a/~/b"},
		{"partial component is not expanded", "pre$DOTTY_TEST_DIR/x", "pre$DOTTY_TEST_DIR/x"},
		{"name reference untouched", "{{vim}}/vimrc", "{{vim}}/vimrc"},
		{"parent components kept", "a/../b", "a/../b"},
		{"trailing parent kept", "a/..", "a/.."},
		{"parent after variable", "$DOTTY_TEST_DIR/../x", "config/../x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEnv(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveEnv_Unset(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantVar string
	}{
		{"plain", "$DOTTY_TEST_UNSET_VAR/x", "$DOTTY_TEST_UNSET_VAR"},
		{"braced", "x/${DOTTY_TEST_UNSET_VAR}", "${DOTTY_TEST_UNSET_VAR}"},
		{"bare sigil", "x/$", "$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveEnv(tt.path)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidEnvVar))

			details := errors.GetErrorDetails(err)
			assert.Equal(t, tt.path, details["path"])
			assert.Equal(t, tt.wantVar, details["var"])
		})
	}
}

func TestResolveName(t *testing.T) {
	apps := testApps()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"no references", "colors/theme.vim", "colors/theme.vim"},
		{"leading reference", "{{other}}/init.lua", "/base/other/init.lua"},
		{"reference replaces prefix", "sub/{{vim}}/vimrc", "/base/vim/vimrc"},
		{"reference alone", "{{vim}}", "/base/vim"},
		{"partial braces untouched", "x{{vim}}/y", "x{{vim}}/y"},
		{"env reference untouched", "$HOME/x", "$HOME/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveName(apps, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveName_Unknown(t *testing.T) {
	_, err := ResolveName(testApps(), "{{ghost}}/x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidNameRef))
	assert.Equal(t, "{{ghost}}", errors.GetErrorDetails(err)["name"])

	_, err = ResolveName(testApps(), "{{}}/x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidNameRef))
}

func TestResolve_NameThenEnv(t *testing.T) {
	t.Setenv("DOTTY_TEST_SUB", "lua")

	got, err := Resolve(testApps(), "{{other}}/$DOTTY_TEST_SUB/init.lua")
	require.NoError(t, err)
	assert.Equal(t, "/base/other/lua/init.lua", got)

	_, err = Resolve(testApps(), "{{ghost}}/$DOTTY_TEST_UNSET_VAR")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidNameRef))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, filepath.Join("/base", "vim", "vimrc"), Join("/base/vim", "vimrc"))
	assert.Equal(t, "/etc/vimrc", Join("/base/vim", "/etc/vimrc"))
	assert.Equal(t, "/base/vim", Join("/base/vim", ""))
	assert.Equal(t, "/base/vim/../shared/vimrc", Join("/base/vim", "../shared/vimrc"))
	assert.Equal(t, "/etc/../vimrc", Join("/base/vim", "/etc/../vimrc"))
	assert.Equal(t, "/vimrc", Join("/", "vimrc"))
}
