/*
Package list implements a singly linked list of integers.

A List is a handle that owns the first node of a chain. Every node is owned by
exactly one predecessor (or by the handle), the chain is acyclic, and nodes
appear in insertion order. Mutations go through the pointer receiver, so the
head a caller observes is always the current one, including after the head
node itself is deleted.

# Operations

  - New / NewEmpty: seed a list with one value, or start with no nodes.
  - Append: link a value after the current tail.
  - View / Print: traverse head to tail, lazily or as formatted lines.
  - Delete: unlink the first node holding a value.

The list is not safe for concurrent use.
*/
package list
