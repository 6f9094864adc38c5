package main

import (
	"context"
	"io"

	"github.com/fwojciec/cratedoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Service *cratedoc.Service
}

// DocsCmd handles the documentation lookup operation.
type DocsCmd struct {
	Crate  string
	Item   string
	Online bool
}
