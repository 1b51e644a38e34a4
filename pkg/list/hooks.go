package list

// Op names the list operation that produced an Event.
type Op string

const (
	OpCreate Op = "create"
	OpAppend Op = "append"
	OpDelete Op = "delete"
	OpView   Op = "view"
)

// Event describes a completed list operation.
type Event struct {
	Op    Op
	Value int // zero for OpView
	Len   int // length after the operation
	// Changed reports whether the chain was modified.
	// Always true for OpCreate and OpAppend, false for OpView.
	Changed bool
}

// Hooks defines callbacks for list observability.
type Hooks struct {
	OnCreate func(Event)
	OnAppend func(Event)
	OnDelete func(Event)
	OnView   func(Event)
}

// Chain combines several Hooks so that each callback fires in order.
func Chain(hooks ...Hooks) Hooks {
	var out Hooks
	for _, h := range hooks {
		out.OnCreate = join(out.OnCreate, h.OnCreate)
		out.OnAppend = join(out.OnAppend, h.OnAppend)
		out.OnDelete = join(out.OnDelete, h.OnDelete)
		out.OnView = join(out.OnView, h.OnView)
	}
	return out
}

func join(a, b func(Event)) func(Event) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e Event) {
		a(e)
		b(e)
	}
}
