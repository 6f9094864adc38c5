// Package cratedoc provides a terminal-native view of Rust crate
// documentation. It resolves a crate (and optionally an item within it) to a
// documentation page, obtains the page HTML either from docs.rs or from a
// local cargo doc build, extracts the main content region, and converts it
// to Markdown.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, htmltomarkdown/).
package cratedoc
