// Package schema validates JSON documents against embedded JSON Schemas.
// It wraps santhosh-tekuri/jsonschema with lazy, once-only compilation and
// flattens the validator's error tree into path-addressed issues suitable
// for printing to a terminal.
package schema
