package scenario

import "fmt"

// Op is a scenario operation.
type Op string

const (
	OpCreate Op = "create"
	OpAppend Op = "append"
	OpDelete Op = "delete"
	OpPrint  Op = "print"
)

// NeedsValue reports whether the op takes an operand.
func (o Op) NeedsValue() bool {
	return o == OpCreate || o == OpAppend || o == OpDelete
}

// Valid reports whether o is a known op.
func (o Op) Valid() bool {
	switch o {
	case OpCreate, OpAppend, OpDelete, OpPrint:
		return true
	}
	return false
}

// Step is a single operation in a scenario.
type Step struct {
	Op    Op  `yaml:"op" json:"op" mapstructure:"op"`
	Value int `yaml:"value" json:"value" mapstructure:"value"`
}

func (s Step) String() string {
	if s.Op.NeedsValue() {
		return fmt.Sprintf("%s %d", s.Op, s.Value)
	}
	return string(s.Op)
}

// Default returns the fixed driver: create 1, append 2, append 3, print.
func Default() []Step {
	return []Step{
		{Op: OpCreate, Value: 1},
		{Op: OpAppend, Value: 2},
		{Op: OpAppend, Value: 3},
		{Op: OpPrint},
	}
}
