/*
Package sllist is a singly linked list of integers and the tooling that drives it.

The list itself lives in pkg/list. pkg/scenario runs ordered create, append,
delete and print steps against a list, either the built-in driver or a YAML/JSON
scenario file. pkg/observability turns list events into Prometheus metrics.

# Usage

	package main

	import (
		"os"

		"github.com/aretw0/sllist/pkg/list"
	)

	func main() {
		l := list.New(1)
		l.Append(2)
		l.Append(3)

		// The list value is: 1
		// The list value is: 2
		// The list value is: 3
		_ = l.Print(os.Stdout)

		// Deleting the head moves the handle to the next node.
		l.Delete(1)
	}

The sllist command runs the same driver by default and offers an interactive
shell and a Mermaid export.
*/
package sllist
