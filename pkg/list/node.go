package list

type node struct {
	value int
	next  *node // nil marks the tail
}
