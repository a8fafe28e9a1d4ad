// Package paths provides path handling for dotty.
//
// It covers two concerns:
//
//   - Token resolution: expanding the textual paths found in dotty.toml into
//     concrete filesystem paths (environment references and {{app}} references).
//   - Default locations: the dotfiles base directory, the config file and the
//     XDG state directory used for the log file.
//
// # Token resolution
//
// Resolution works one path component at a time; a reference must occupy a
// whole component to be expanded.
//
//   - "$VAR" and "${VAR}" are replaced by the variable's value. An unset
//     variable is an INVALID_ENV_VAR error.
//   - A leading "~" is replaced by the home directory.
//   - "{{name}}" is replaced by the destination directory of the app called
//     name. An unknown app is an INVALID_NAME_REF error.
//
// A component that expands to an absolute path replaces everything before it,
// so "$HOME/.vimrc" resolves to "/home/user/.vimrc" and "{{vim}}/colors"
// resolves into the vim app's directory regardless of where it is joined.
//
// # Environment Variables
//
//   - HOME: the user's home directory (default source directory)
//   - XDG_STATE_HOME: base of the log file location (default: ~/.local/state)
//   - XDG_CONFIG_HOME: fallback location of dotty.toml (default: ~/.config)
package paths
