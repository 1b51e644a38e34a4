/*
Package scenario drives a list through a sequence of steps.

A scenario is an ordered list of create, append, delete and print steps. The
built-in Default scenario seeds a list with 1, appends 2 and 3 and prints it.
Scenarios can also be loaded from YAML or JSON documents:

	steps:
	  - create: 1
	  - append: 2
	  - op: delete
	    value: 1
	  - print

Each step may be a bare op name, a single-key map from op to value, or a map
with explicit "op" and "value" keys.
*/
package scenario
