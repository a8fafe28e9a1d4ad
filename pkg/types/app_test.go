package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testApps() Apps {
	return Apps{
		"vim":  {Name: "vim", DstDir: "/d/vim"},
		"zsh":  {Name: "zsh", DstDir: "/d/zsh"},
		"nvim": {Name: "nvim", DstDir: "/d/neovim"},
	}
}

func TestApps_DstDir(t *testing.T) {
	apps := testApps()
	apps["broken"] = nil

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"vim", "/d/vim", true},
		{"nvim", "/d/neovim", true},
		{"ghost", "", false},
		{"broken", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := apps.DstDir(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApps_NamesAndSorted(t *testing.T) {
	apps := testApps()

	assert.Equal(t, []string{"nvim", "vim", "zsh"}, apps.Names())

	sorted := apps.Sorted()
	names := make([]string, len(sorted))
	for i, app := range sorted {
		names[i] = app.Name
	}
	assert.Equal(t, []string{"nvim", "vim", "zsh"}, names)

	assert.Empty(t, Apps{}.Names())
}

func TestApps_Filter(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []string
	}{
		{"no filters", nil, nil, []string{"nvim", "vim", "zsh"}},
		{"include", []string{"vim", "zsh"}, nil, []string{"vim", "zsh"}},
		{"exclude", nil, []string{"vim"}, []string{"nvim", "zsh"}},
		{"exclude wins", []string{"vim", "zsh"}, []string{"zsh"}, []string{"vim"}},
		{"unknown include", []string{"ghost"}, nil, []string{}},
		{"unknown exclude", nil, []string{"ghost"}, []string{"nvim", "vim", "zsh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testApps().Filter(tt.include, tt.exclude)
			assert.Equal(t, tt.want, got.Names())
		})
	}
}

func TestApps_FilterKeepsOriginal(t *testing.T) {
	apps := testApps()
	_ = apps.Filter([]string{"vim"}, nil)
	assert.Len(t, apps, 3)
}
