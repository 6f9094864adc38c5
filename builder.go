package cratedoc

import "context"

// Builder generates documentation HTML on the local machine.
// Implementations invoke an external toolchain and may scaffold throwaway
// projects to build documentation for crates outside the working tree.
type Builder interface {
	// Build generates documentation for the crate and returns the root
	// directory of the generated HTML tree (the directory that contains
	// one subdirectory per documented crate).
	Build(ctx context.Context, crate string) (docRoot string, err error)

	// Close removes any scratch state created by Build.
	// Must be called when the Builder is no longer needed.
	Close() error
}
