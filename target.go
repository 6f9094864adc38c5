package cratedoc

import (
	"path/filepath"
	"strings"
)

// DocsRSBaseURL is the base URL for the hosted documentation site.
const DocsRSBaseURL = "https://docs.rs"

// Target identifies a documentation page: a crate, an optional item path
// within it, and whether to resolve against docs.rs or a local build.
type Target struct {
	// Crate is the crate name as published (hyphens allowed).
	Crate string

	// ItemPath optionally narrows the target to an item within the crate,
	// e.g. "struct.Rope" or "rope::struct.Rope". Segments are separated
	// with "::" as in Rust paths.
	ItemPath string

	// Online selects docs.rs over a local cargo doc build.
	Online bool
}

// Validate returns an error if the target contains invalid fields.
func (t Target) Validate() error {
	if t.Crate == "" {
		return Errorf(EINVALID, "crate name required")
	}
	return nil
}

// DocsURL returns the docs.rs address of the target page.
//
// Without an item path the crate root is addressed:
//
//	https://docs.rs/serde/latest/serde/
//
// With an item path, "::" separators become URL segments and an ".html"
// suffix is appended unless already present:
//
//	"de::struct.Error" -> https://docs.rs/serde/latest/serde/de/struct.Error.html
func (t Target) DocsURL() string {
	if t.ItemPath == "" {
		return DocsRSBaseURL + "/" + t.Crate + "/latest/" + t.Crate + "/"
	}

	page := t.ItemPath
	if !strings.HasSuffix(page, ".html") {
		page += ".html"
	}
	page = strings.ReplaceAll(page, "::", "/")

	return DocsRSBaseURL + "/" + t.Crate + "/latest/" + t.Crate + "/" + page
}

// DocFile returns the path of the target page inside a locally generated
// documentation root (the directory cargo doc writes to, e.g. target/doc).
//
// rustdoc names the crate directory with hyphens replaced by underscores.
// An item path maps to nested directories with an index.html leaf.
func (t Target) DocFile(docRoot string) string {
	crateDir := strings.ReplaceAll(t.Crate, "-", "_")

	if t.ItemPath == "" {
		return filepath.Join(docRoot, crateDir, "index.html")
	}

	parts := strings.Split(t.ItemPath, "::")
	elems := append([]string{docRoot, crateDir}, parts...)
	elems = append(elems, "index.html")
	return filepath.Join(elems...)
}
