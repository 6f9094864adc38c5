package main

import (
	"fmt"

	"github.com/fwojciec/cratedoc"
)

// Run executes the docs command: resolve the target, run the pipeline, and
// print the Markdown to stdout.
func (c *DocsCmd) Run(deps *Dependencies) error {
	target := cratedoc.Target{
		Crate:    c.Crate,
		ItemPath: c.Item,
		Online:   c.Online,
	}

	markdown, err := deps.Service.Docs(deps.Ctx, target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cratedoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}
