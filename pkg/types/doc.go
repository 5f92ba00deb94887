// Package types defines the entity records, request parameter structs,
// the patch-field Optional, and the error taxonomy shared by the lawg
// client, its command-line interface, and the validation layer.
package types
