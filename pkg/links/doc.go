// Package links decides the state of declared symlinks and creates the
// missing ones.
//
// A Checker resolves a LinkSpec against an app's directories and classifies
// the pair into exactly one of four statuses:
//
//	SrcUnexists  nothing at the link path, target present: ready to link
//	DstUnexists  nothing at the link path, target missing: linking would dangle
//	Exists       a symlink whose target equals the declared target
//	Unexpected   a symlink pointing somewhere else
//
// Checking never mutates the filesystem and keeps no state between calls.
// The target comparison is one hop: the link's target string is compared to
// the resolved declared target, without following further symlinks.
//
// A Materializer creates missing parent directories and the symlink itself.
// It does not roll back directories it created if the symlink fails.
package links
