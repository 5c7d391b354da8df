package workflow

import (
	"fmt"
	"strings"

	wferrors "github.com/matzehuels/workflowdot/pkg/errors"
)

// Validate checks that every identifier in tasks can be rendered as a bare
// graph node name and that no two tasks share a node name.
//
// Identifiers may only contain ASCII letters, digits, '-' and '_'. Because
// node names replace '-' with '_', two tasks whose hashes differ only in
// that respect (a-b and a_b) collide and are rejected along with exact
// duplicates. Dependencies are checked for shape only; they need not refer
// to a task in the same document.
func Validate(tasks []Task) error {
	seen := make(map[string]Hash, len(tasks))
	for i, t := range tasks {
		if err := wferrors.ValidateIdentifier(string(t.Hash)); err != nil {
			return fmt.Errorf("task %d: %w", i+1, err)
		}
		key := canonical(t.Hash)
		if prev, ok := seen[key]; ok {
			return wferrors.New(wferrors.ErrCodeDuplicateHash,
				"task %d: hash %q collides with earlier hash %q", i+1, t.Hash, prev)
		}
		seen[key] = t.Hash

		for _, d := range t.Dependencies {
			if err := wferrors.ValidateIdentifier(string(d)); err != nil {
				return fmt.Errorf("task %d (%s): dependency: %w", i+1, t.Hash, err)
			}
		}
	}
	return nil
}

func canonical(h Hash) string {
	return strings.ReplaceAll(string(h), "-", "_")
}
