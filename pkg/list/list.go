package list

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// PrintFormat is the line written by Print for every element.
const PrintFormat = "The list value is: %d\n"

// List is a handle to a chain of nodes.
// The zero value is an empty list ready to use.
// A nil *List reads as empty; Append and Delete need a non-nil handle.
type List struct {
	head  *node
	hooks Hooks
}

// Option configures a List.
type Option func(*List)

// WithHooks registers lifecycle callbacks fired after each operation.
func WithHooks(hooks Hooks) Option {
	return func(l *List) {
		l.hooks = hooks
	}
}

// New creates a single-node list holding value.
func New(value int, opts ...Option) *List {
	l := NewEmpty(opts...)
	l.head = &node{value: value}
	l.notify(l.hooks.OnCreate, OpCreate, value, true)
	return l
}

// NewEmpty creates a list with no nodes.
func NewEmpty(opts ...Option) *List {
	l := &List{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append links value after the current tail.
// The tail is found by walking from the head, so the cost is linear in the length.
// On an empty list the new node becomes the head.
func (l *List) Append(value int) {
	n := &node{value: value}

	if l.head == nil {
		l.head = n
	} else {
		last := l.head
		for last.next != nil {
			last = last.next
		}
		last.next = n
	}

	l.notify(l.hooks.OnAppend, OpAppend, value, true)
}

// Delete unlinks the first node (head to tail) holding value.
// If the head matches, the second node becomes the head.
// Deleting a value that is not present leaves the list unchanged.
func (l *List) Delete(value int) {
	removed := false

	// link points at the owner of the current node: the handle or a predecessor.
	for link := &l.head; *link != nil; link = &(*link).next {
		if (*link).value != value {
			continue
		}
		victim := *link
		*link = victim.next
		victim.next = nil
		removed = true
		break
	}

	l.notify(l.hooks.OnDelete, OpDelete, value, removed)
}

// View returns a lazy head-to-tail sequence of the values.
// Each range over the sequence starts a fresh traversal from the current head.
func (l *List) View() iter.Seq[int] {
	return func(yield func(int) bool) {
		if l == nil {
			return
		}
		l.notify(l.hooks.OnView, OpView, 0, false)
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Print writes one PrintFormat line per value, head to tail.
func (l *List) Print(w io.Writer) error {
	for v := range l.View() {
		if _, err := fmt.Fprintf(w, PrintFormat, v); err != nil {
			return fmt.Errorf("failed to print value %d: %w", v, err)
		}
	}
	return nil
}

// Values collects the list into a slice.
func (l *List) Values() []int {
	return slices.Collect(l.View())
}

// Len counts the nodes.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}

// IsEmpty reports whether the list has no nodes.
func (l *List) IsEmpty() bool {
	return l == nil || l.head == nil
}

// Contains reports whether any node holds value.
func (l *List) Contains(value int) bool {
	if l == nil {
		return false
	}
	for n := l.head; n != nil; n = n.next {
		if n.value == value {
			return true
		}
	}
	return false
}

// Head returns the first value, or ErrEmptyList.
func (l *List) Head() (int, error) {
	if l.IsEmpty() {
		return 0, ErrEmptyList
	}
	return l.head.value, nil
}

// Tail returns the last value, or ErrEmptyList.
func (l *List) Tail() (int, error) {
	if l.IsEmpty() {
		return 0, ErrEmptyList
	}
	last := l.head
	for last.next != nil {
		last = last.next
	}
	return last.value, nil
}

// String formats the list as "[1 2 3]".
func (l *List) String() string {
	if l == nil {
		return "[]"
	}
	// Bypass View so that formatting for logs does not fire OnView.
	values := make([]int, 0)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return fmt.Sprint(values)
}

func (l *List) notify(hook func(Event), op Op, value int, changed bool) {
	if hook == nil {
		return
	}
	hook(Event{Op: op, Value: value, Len: l.Len(), Changed: changed})
}
