// Package filesystem implements the file operations served over HTTP.
//
// This package is organized into specialized modules:
//   - paths: Resolver mapping request segments onto the configured root
//   - directory: Directory operations (list, create)
//   - basic: File operations (create, read, update, delete)
//   - search: Depth-first name search below the root
//   - errors: OperationError and its kinds (list, create, read, update, delete, search)
//
// All operations:
//   - Take absolute paths (resolve them with Resolver first)
//   - Perform a single filesystem call, except Delete (stat + remove) and Search
//   - Return *OperationError wrapping the OS error on failure
//   - Report duration and outcome to an optional Observer
//
// Paths are not sandboxed: ".." segments and absolute inputs reach outside the root.
//
// Example Usage:
//
//	fs, err := filesystem.NewProvider("/srv/data", metrics)
//	names, err := fs.List(ctx, fs.Resolve("docs"))
package filesystem
