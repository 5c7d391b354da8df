package errors

import (
	"regexp"
	"unicode"
)

// identifierRegex matches task identifiers that map onto bare DOT node names
// once hyphens are replaced by underscores.
var identifierRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// dotIDRegex matches a bare (unquoted) DOT identifier.
var dotIDRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateIdentifier validates a task identifier as it appears in a workflow
// document, either as a task's own hash or as a dependency reference.
//
// The rules are conservative:
//   - No empty identifiers
//   - No control characters
//   - Only ASCII letters, digits, '-' and '_'
func ValidateIdentifier(id string) error {
	if id == "" {
		return New(ErrCodeInvalidHash, "identifier cannot be empty")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidHash, "identifier contains invalid control characters: %q", id)
		}
	}

	if !identifierRegex.MatchString(id) {
		return New(ErrCodeInvalidHash, "identifier %q may only contain letters, digits, '-' and '_'", id)
	}

	return nil
}

// ValidateGraphName validates the name given to the emitted digraph.
func ValidateGraphName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "graph name cannot be empty")
	}
	if !dotIDRegex.MatchString(name) {
		return New(ErrCodeInvalidConfig, "graph name %q is not a bare DOT identifier", name)
	}
	return nil
}
