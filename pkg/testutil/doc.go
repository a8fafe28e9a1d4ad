// Package testutil provides utilities for testing dotty components.
//
// Link reconciliation is about real symlinks, so the helpers here work on the
// OS filesystem under t.TempDir(). Env builds the usual layout for a test:
// a home directory (exported as HOME) and a dotfiles base directory.
package testutil
