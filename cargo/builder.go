// Package cargo provides a cratedoc.Builder that generates documentation
// HTML by invoking the cargo toolchain.
package cargo

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fwojciec/cratedoc"
)

// scaffoldName is the name of the throwaway project used to build
// documentation for crates outside the working tree.
const scaffoldName = "cratedoc_build"

// Ensure Builder implements cratedoc.Builder at compile time.
var _ cratedoc.Builder = (*Builder)(nil)

// Builder runs cargo doc to generate documentation HTML.
//
// When the working directory is a cargo project, documentation is built in
// place. Otherwise a throwaway project is scaffolded in a temporary
// directory with the requested crate as its only dependency.
type Builder struct {
	cargoPath string
	dir       string
	output    io.Writer

	// scratch is the temporary directory holding the scaffolded project.
	// Set lazily by Build, removed by Close.
	scratch string
}

// Option configures a Builder.
type Option func(*Builder)

// WithCargoPath sets the cargo executable to invoke. Defaults to "cargo"
// resolved via PATH.
func WithCargoPath(path string) Option {
	return func(b *Builder) {
		b.cargoPath = path
	}
}

// WithDir sets the working directory checked for an existing cargo project.
// Defaults to the process working directory.
func WithDir(dir string) Option {
	return func(b *Builder) {
		b.dir = dir
	}
}

// WithOutput directs cargo's stdout/stderr to w. Build output is discarded
// by default.
func WithOutput(w io.Writer) Option {
	return func(b *Builder) {
		b.output = w
	}
}

// NewBuilder creates a new cargo-backed Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		cargoPath: "cargo",
		dir:       ".",
		output:    io.Discard,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build generates documentation for the crate and returns the doc root.
func (b *Builder) Build(ctx context.Context, crate string) (string, error) {
	if crate == "" {
		return "", cratedoc.Errorf(cratedoc.EINVALID, "crate name required")
	}

	var docRoot string
	if _, err := os.Stat(filepath.Join(b.dir, "Cargo.toml")); err == nil {
		// Working directory is a cargo project; build its docs in place.
		if err := b.run(ctx, b.dir, "doc", "--no-deps"); err != nil {
			return "", err
		}
		docRoot = filepath.Join(b.dir, "target", "doc")
	} else {
		proj, err := b.scaffold(ctx, crate)
		if err != nil {
			return "", err
		}
		if err := b.run(ctx, proj, "doc", "--no-deps"); err != nil {
			return "", err
		}
		docRoot = filepath.Join(proj, "target", "doc")
	}

	crateDir := filepath.Join(docRoot, strings.ReplaceAll(crate, "-", "_"))
	if _, err := os.Stat(crateDir); err != nil {
		return "", cratedoc.Errorf(cratedoc.ENOTFOUND, "documentation not generated for crate %q", crate)
	}

	return docRoot, nil
}

// scaffold creates a throwaway binary project depending on the crate and
// returns its directory.
func (b *Builder) scaffold(ctx context.Context, crate string) (string, error) {
	scratch, err := os.MkdirTemp("", "cratedoc-*")
	if err != nil {
		return "", err
	}
	b.scratch = scratch

	if err := b.run(ctx, scratch, "new", "--bin", scaffoldName); err != nil {
		return "", err
	}

	proj := filepath.Join(scratch, scaffoldName)
	manifestPath := filepath.Join(proj, "Cargo.toml")

	manifest, err := os.ReadFile(manifestPath)
	if err != nil {
		return "", err
	}

	updated := AddDependency(string(manifest), crate)
	if err := os.WriteFile(manifestPath, []byte(updated), 0o644); err != nil {
		return "", err
	}

	return proj, nil
}

func (b *Builder) run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, b.cargoPath, args...)
	cmd.Dir = dir

	var tail bytes.Buffer
	cmd.Stdout = b.output
	cmd.Stderr = io.MultiWriter(b.output, &tail)

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(tail.String())
		if msg == "" {
			msg = err.Error()
		}
		return cratedoc.Errorf(cratedoc.EINTERNAL, "cargo %s failed: %s", args[0], msg)
	}
	return nil
}

// Close removes the scaffolded project, if one was created.
func (b *Builder) Close() error {
	if b.scratch == "" {
		return nil
	}
	return os.RemoveAll(b.scratch)
}

// AddDependency returns the manifest with the crate added as a wildcard
// dependency. The entry lands under the existing [dependencies] table when
// present; otherwise the table is appended.
func AddDependency(manifest, crate string) string {
	dep := crate + ` = "*"`
	if strings.Contains(manifest, "[dependencies]") {
		return strings.Replace(manifest, "[dependencies]", "[dependencies]\n"+dep, 1)
	}
	return strings.TrimRight(manifest, "\n") + "\n\n[dependencies]\n" + dep + "\n"
}
