/*
Package observability exposes list operations as Prometheus metrics.

Metrics plugs into a list through list.Hooks and keeps its collectors in a
private registry, so several lists (or tests) never collide on the default
registerer. WriteText dumps the registry in the Prometheus text format.
*/
package observability
