// Package blocks contains checks for brace-delimited block structure:
// placement of opening braces, mandatory braces on control-flow bodies,
// and nested bare blocks. Importing the package registers all checks
// with the lint registry.
package blocks
