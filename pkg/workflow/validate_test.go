package workflow

import (
	"testing"

	wferrors "github.com/matzehuels/workflowdot/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		code  wferrors.Code
	}{
		{
			name: "valid",
			tasks: []Task{
				{Hash: "1", TaskType: "Build"},
				{Hash: "-2", TaskType: "Test", Dependencies: []Hash{"1"}},
			},
		},
		{
			name:  "unresolved dependency is allowed",
			tasks: []Task{{Hash: "1", Dependencies: []Hash{"99"}}},
		},
		{
			name:  "empty",
			tasks: nil,
		},
		{
			name:  "invalid hash",
			tasks: []Task{{Hash: "a.b"}},
			code:  wferrors.ErrCodeInvalidHash,
		},
		{
			name:  "invalid dependency",
			tasks: []Task{{Hash: "1", Dependencies: []Hash{"x y"}}},
			code:  wferrors.ErrCodeInvalidHash,
		},
		{
			name:  "exact duplicate",
			tasks: []Task{{Hash: "1"}, {Hash: "1"}},
			code:  wferrors.ErrCodeDuplicateHash,
		},
		{
			name:  "hyphen underscore collision",
			tasks: []Task{{Hash: "a-b"}, {Hash: "a_b"}},
			code:  wferrors.ErrCodeDuplicateHash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.tasks)
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !wferrors.Is(err, tt.code) {
				t.Errorf("Validate() code = %v, want %v (err: %v)", wferrors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestEdgeCount(t *testing.T) {
	tasks := []Task{
		{Hash: "1"},
		{Hash: "2", Dependencies: []Hash{"1"}},
		{Hash: "3", Dependencies: []Hash{"1", "2"}},
	}
	if got := EdgeCount(tasks); got != 3 {
		t.Errorf("EdgeCount() = %d, want 3", got)
	}
}
