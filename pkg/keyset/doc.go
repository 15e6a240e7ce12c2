// Package keyset flattens nested translation documents into sets of
// dot-delimited key paths and provides the set algebra the consistency
// checks are built on.
//
// A document like
//
//	{"nav": {"home": "Home", "about": "About"}, "title": "T"}
//
// extracts to the set {nav.home, nav.about, title}. Sets compare without
// regard to document order, and render sorted for stable diagnostics.
package keyset
