// Package scripting runs user-supplied JavaScript hooks during batch
// conversion. A hook receives one file's metadata and returns either an
// output name or an object of per-file overrides.
package scripting

import (
	"context"
)

// Engine runs hook scripts.
type Engine interface {
	// Execute evaluates a script and returns its exported result.
	Execute(ctx context.Context, script string) (interface{}, error)

	// BindFile exposes the given file to subsequent Execute calls as the
	// global `file` object.
	BindFile(info FileInfo) error
}

// FileInfo is the view of a batch item a hook script sees.
type FileInfo struct {
	// Name is the file name with extension, without directory.
	Name string
	// Base is Name without its extension.
	Base string
	// Ext is the extension including the leading dot, or "".
	Ext string
	// Dir is the directory part of the original path.
	Dir string
	// Index is the zero-based position of the file in the batch.
	Index int
}

// HookResult carries the overrides a hook produced for one file.
type HookResult struct {
	// OutputName, if nonempty, replaces the default output file name.
	OutputName string
	// Skip marks the file to be passed over without processing.
	Skip bool
	// Options holds free-form per-file option overrides.
	Options map[string]interface{}
}
