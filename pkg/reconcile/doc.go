// Package reconcile drives a full pass over the app registry.
//
// Each declared link is checked and, when nothing occupies the link path
// but the target exists, created. Failures are recorded on the link they
// belong to and never stop the pass, so a Report always describes every
// link of every selected app in declaration order.
package reconcile
