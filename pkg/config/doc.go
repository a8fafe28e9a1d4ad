// Package config loads dotty's runtime settings and the app registry.
//
// Settings are layered with koanf: the embedded defaults.toml first, then
// DOTTY_* environment variables, then command-line flags. The app registry
// comes from a TOML file whose top-level tables are apps:
//
//	[vim]
//	description = "Vim editor"
//	links = [["vimrc", ".vimrc"], ["vim"]]
//
// Each link is a [target, link] pair relative to the app's dstdir and srcdir;
// a one-element list uses the same value for both.
package config
