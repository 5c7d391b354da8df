package workflow

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	wferrors "github.com/matzehuels/workflowdot/pkg/errors"
)

// ReadTasks decodes a multi-document YAML stream from r into task records,
// preserving document order.
//
// Each document must be a mapping containing the keys hash, taskType and
// dependencies. ReadTasks fails on the first document that does not
// conform; the returned error carries one of the codes
// [wferrors.ErrCodeInvalidDocument], [wferrors.ErrCodeMissingKey] or
// [wferrors.ErrCodeInvalidTask] and names the 1-based document index.
//
// An empty stream yields no tasks and no error. ReadTasks does not close r.
func ReadTasks(r io.Reader) ([]Task, error) {
	dec := yaml.NewDecoder(r)

	var tasks []Task
	for idx := 1; ; idx++ {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return tasks, nil
			}
			return nil, wferrors.Wrap(wferrors.ErrCodeInvalidDocument, err, "document %d", idx)
		}
		t, err := decodeTask(idx, &doc)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
}

// ImportTasks reads the workflow file at path and returns its task records.
// Open failures are reported as [wferrors.ErrCodeFileNotFound] when the file
// does not exist and [wferrors.ErrCodeInvalidPath] otherwise.
func ImportTasks(path string) ([]Task, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, wferrors.Wrap(wferrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, wferrors.Wrap(wferrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	tasks, err := ReadTasks(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return tasks, nil
}

func decodeTask(idx int, doc *yaml.Node) (Task, error) {
	root := resolve(doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return Task{}, wferrors.New(wferrors.ErrCodeInvalidDocument, "document %d: empty document", idx)
		}
		root = resolve(root.Content[0])
	}
	if root.Kind != yaml.MappingNode {
		return Task{}, wferrors.New(wferrors.ErrCodeInvalidDocument,
			"document %d (line %d): expected a mapping, got %s", idx, root.Line, kindName(root))
	}

	fields := make(map[string]*yaml.Node, 3)
	for i := 0; i+1 < len(root.Content); i += 2 {
		fields[root.Content[i].Value] = resolve(root.Content[i+1])
	}
	for _, key := range []string{KeyHash, KeyTaskType, KeyDependencies} {
		if _, ok := fields[key]; !ok {
			return Task{}, wferrors.New(wferrors.ErrCodeMissingKey,
				"document %d (line %d): missing key %q", idx, root.Line, key)
		}
	}

	hash, err := scalarHash(idx, KeyHash, fields[KeyHash])
	if err != nil {
		return Task{}, err
	}

	typ := fields[KeyTaskType]
	if typ.Kind != yaml.ScalarNode || typ.ShortTag() != "!!str" {
		return Task{}, wferrors.New(wferrors.ErrCodeInvalidTask,
			"document %d (line %d): %s must be a string, got %s", idx, typ.Line, KeyTaskType, kindName(typ))
	}

	deps := fields[KeyDependencies]
	if deps.Kind != yaml.SequenceNode {
		return Task{}, wferrors.New(wferrors.ErrCodeInvalidTask,
			"document %d (line %d): %s must be a sequence, got %s", idx, deps.Line, KeyDependencies, kindName(deps))
	}
	dependencies := make([]Hash, 0, len(deps.Content))
	for _, d := range deps.Content {
		h, err := scalarHash(idx, KeyDependencies, resolve(d))
		if err != nil {
			return Task{}, err
		}
		dependencies = append(dependencies, h)
	}

	return Task{Hash: hash, TaskType: typ.Value, Dependencies: dependencies}, nil
}

func scalarHash(idx int, key string, n *yaml.Node) (Hash, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() == "!!null" {
		return "", wferrors.New(wferrors.ErrCodeInvalidTask,
			"document %d (line %d): %s must be a scalar identifier, got %s", idx, n.Line, key, kindName(n))
	}
	return Hash(n.Value), nil
}

// resolve follows alias nodes to their anchors.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return "null"
		}
		return "scalar " + n.ShortTag()
	case yaml.AliasNode:
		return "alias"
	}
	return "nothing"
}
