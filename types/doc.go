// Package types holds the NEAR JSON-RPC request and response types.
//
// generated.go is produced from openrpc.json at the repository root by
// near-openrpc-gen and must not be edited by hand. The rest of the package
// adds constructors and unit conversions on top of the generated types.
// Nothing here performs I/O, so the package can be used without the client.
package types

//go:generate go run ../cmd/near-openrpc-gen --config ../near-openrpc-gen.toml generate
