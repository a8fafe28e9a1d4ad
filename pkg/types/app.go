package types

import (
	"sort"
)

// LinkSpec is a declared link before path resolution.
//
// Dst names the content the link should point at, relative to the app's
// destination directory. Src names where the link itself lives, relative to
// the app's source directory.
type LinkSpec struct {
	Dst string `json:"dst"`
	Src string `json:"src"`
}

// App represents one named unit of dotfiles: a source directory, a
// destination directory and the links declared between them.
type App struct {
	// Name is the unique app key (the TOML table name)
	Name string

	// SrcDir is the resolved absolute directory where links are created
	SrcDir string

	// DstDir is the resolved absolute directory holding the app's files
	DstDir string

	// Description is optional free text from configuration
	Description string

	// Links are kept in declaration order
	Links []LinkSpec
}

// Apps is the app registry, keyed by app name. It is built once from
// configuration and only read afterwards.
type Apps map[string]*App

// DstDir implements NameLookup.
func (a Apps) DstDir(name string) (string, bool) {
	app, ok := a[name]
	if !ok || app == nil {
		return "", false
	}
	return app.DstDir, true
}

// Names returns the registered app names in sorted order.
func (a Apps) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sorted returns the apps ordered by name.
func (a Apps) Sorted() []*App {
	names := a.Names()
	apps := make([]*App, 0, len(names))
	for _, name := range names {
		apps = append(apps, a[name])
	}
	return apps
}

// Filter returns the subset of apps selected by include and exclude.
// An empty include list selects every app; exclude always wins.
func (a Apps) Filter(include, exclude []string) Apps {
	if len(include) == 0 && len(exclude) == 0 {
		return a
	}

	in := make(map[string]bool, len(include))
	for _, name := range include {
		in[name] = true
	}
	out := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		out[name] = true
	}

	filtered := make(Apps)
	for name, app := range a {
		if len(in) > 0 && !in[name] {
			continue
		}
		if out[name] {
			continue
		}
		filtered[name] = app
	}
	return filtered
}

var _ NameLookup = Apps(nil)
