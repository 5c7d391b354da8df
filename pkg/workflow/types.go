package workflow

// Hash is an opaque task identifier, unique within one workflow document.
type Hash string

// String returns the literal identifier text.
func (h Hash) String() string { return string(h) }

// Task is one workflow step.
type Task struct {
	Hash         Hash   `yaml:"hash"`
	TaskType     string `yaml:"taskType"`
	Dependencies []Hash `yaml:"dependencies"` // edges run dependency -> task
}

// Required document keys.
const (
	KeyHash         = "hash"
	KeyTaskType     = "taskType"
	KeyDependencies = "dependencies"
)

// EdgeCount returns the total number of dependency edges across tasks.
func EdgeCount(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		n += len(t.Dependencies)
	}
	return n
}
