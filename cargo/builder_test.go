package cargo_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fwojciec/cratedoc"
	"github.com/fwojciec/cratedoc/cargo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time verification that Builder implements cratedoc.Builder.
var _ cratedoc.Builder = (*cargo.Builder)(nil)

// fakeCargo writes a shell script that emulates the cargo subcommands the
// Builder invokes: "new --bin NAME" scaffolds a project with a manifest, and
// "doc --no-deps" creates target/doc/<crateDir>.
func fakeCargo(t *testing.T, crateDir string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake cargo script requires a POSIX shell")
	}

	script := `#!/bin/sh
case "$1" in
new)
	mkdir -p "$3/src"
	printf '[package]\nname = "%s"\nversion = "0.1.0"\n\n[dependencies]\n' "$3" > "$3/Cargo.toml"
	;;
doc)
	mkdir -p "target/doc/` + crateDir + `"
	echo '<html><body><div id="main-content">docs</div></body></html>' > "target/doc/` + crateDir + `/index.html"
	;;
esac
`
	path := filepath.Join(t.TempDir(), "cargo")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("builds in place when the directory is a cargo project", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\n"), 0o644))

		b := cargo.NewBuilder(
			cargo.WithCargoPath(fakeCargo(t, "mycrate")),
			cargo.WithDir(dir),
		)
		defer b.Close()

		docRoot, err := b.Build(context.Background(), "mycrate")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "target", "doc"), docRoot)
		assert.FileExists(t, filepath.Join(docRoot, "mycrate", "index.html"))
	})

	t.Run("scaffolds a temporary project outside a cargo project", func(t *testing.T) {
		t.Parallel()

		b := cargo.NewBuilder(
			cargo.WithCargoPath(fakeCargo(t, "serde")),
			cargo.WithDir(t.TempDir()),
		)
		defer b.Close()

		docRoot, err := b.Build(context.Background(), "serde")

		require.NoError(t, err)
		assert.DirExists(t, filepath.Join(docRoot, "serde"))
	})

	t.Run("maps hyphenated crate names to underscore directories", func(t *testing.T) {
		t.Parallel()

		b := cargo.NewBuilder(
			cargo.WithCargoPath(fakeCargo(t, "serde_json")),
			cargo.WithDir(t.TempDir()),
		)
		defer b.Close()

		docRoot, err := b.Build(context.Background(), "serde-json")

		require.NoError(t, err)
		assert.DirExists(t, filepath.Join(docRoot, "serde_json"))
	})

	t.Run("returns ENOTFOUND when no docs were generated for the crate", func(t *testing.T) {
		t.Parallel()

		b := cargo.NewBuilder(
			cargo.WithCargoPath(fakeCargo(t, "other_crate")),
			cargo.WithDir(t.TempDir()),
		)
		defer b.Close()

		_, err := b.Build(context.Background(), "serde")

		require.Error(t, err)
		assert.Equal(t, cratedoc.ENOTFOUND, cratedoc.ErrorCode(err))
	})

	t.Run("returns EINTERNAL when cargo cannot be invoked", func(t *testing.T) {
		t.Parallel()

		b := cargo.NewBuilder(
			cargo.WithCargoPath(filepath.Join(t.TempDir(), "missing-cargo")),
			cargo.WithDir(t.TempDir()),
		)
		defer b.Close()

		_, err := b.Build(context.Background(), "serde")

		require.Error(t, err)
		assert.Equal(t, cratedoc.EINTERNAL, cratedoc.ErrorCode(err))
	})

	t.Run("rejects empty crate name", func(t *testing.T) {
		t.Parallel()

		b := cargo.NewBuilder(cargo.WithDir(t.TempDir()))
		defer b.Close()

		_, err := b.Build(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, cratedoc.EINVALID, cratedoc.ErrorCode(err))
	})
}

func TestBuilder_Close(t *testing.T) {
	t.Parallel()

	t.Run("is a no-op before any build", func(t *testing.T) {
		t.Parallel()

		b := cargo.NewBuilder()

		require.NoError(t, b.Close())
	})
}

func TestAddDependency(t *testing.T) {
	t.Parallel()

	t.Run("inserts under an existing dependencies table", func(t *testing.T) {
		t.Parallel()

		manifest := "[package]\nname = \"cratedoc_build\"\n\n[dependencies]\n"

		got := cargo.AddDependency(manifest, "serde")

		assert.Contains(t, got, "[dependencies]\nserde = \"*\"")
	})

	t.Run("appends a dependencies table when missing", func(t *testing.T) {
		t.Parallel()

		manifest := "[package]\nname = \"cratedoc_build\"\n"

		got := cargo.AddDependency(manifest, "tokio")

		assert.Contains(t, got, "\n\n[dependencies]\ntokio = \"*\"\n")
	})

	t.Run("adds the table only once", func(t *testing.T) {
		t.Parallel()

		manifest := "[package]\n\n[dependencies]\nexisting = \"1\"\n"

		got := cargo.AddDependency(manifest, "serde")

		assert.Equal(t, 1, strings.Count(got, "[dependencies]"))
		assert.Contains(t, got, `existing = "1"`)
	})
}
