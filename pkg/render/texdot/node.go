package texdot

import (
	"strings"

	"github.com/matzehuels/workflowdot/pkg/workflow"
)

// nodePrefix keeps node names from starting with a digit.
const nodePrefix = "node_"

// NodeToken returns the DOT node name for a task hash.
func NodeToken(h workflow.Hash) string {
	return nodePrefix + strings.ReplaceAll(string(h), "-", "_")
}
