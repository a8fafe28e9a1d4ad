// Package output draws reconciliation results as text.
//
// Every app is rendered as a block: its name in a double-line box followed
// by a tree with one branch per declared link, in declaration order.
//
//	╔═════╗
//	║ vim ║
//	╚═════╝
//	├─✓─ /home/u/.vimrc → /home/u/.dotfiles/vim/vimrc
//	└─❌─ /home/u/.gvimrc ↛ /home/u/.dotfiles/vim/gvimrc
//	     Error: link does not exist
//
// A Theme decides how each fragment is styled. PlainTheme produces text
// without escape sequences; StyledTheme uses the styles registry and colors
// paths by whether they exist.
package output
