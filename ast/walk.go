package ast

import "github.com/npillmayer/derp/trace"

// maxWalkDepth bounds traversal depth as a backstop against an
// accidentally self-referential Reduce result; ordinary parse results
// never come remotely close to it.
const maxWalkDepth = 1000

type queueItem struct {
	v     any
	depth int
}

// Walk performs a breadth-first traversal of root's structure over a FIFO
// work-queue, calling visit once for every value reached (root itself
// first, then its children, then its grandchildren, level by level).
// Returning false from visit skips that value's children without
// stopping the walk elsewhere.
func Walk(root any, visit func(v any) bool) {
	queue := []queueItem{{root, 0}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		trace.AST().Debugf("walk: visit %T at depth %d", item.v, item.depth)
		if !visit(item.v) {
			continue
		}
		if item.depth >= maxWalkDepth {
			continue
		}
		for _, f := range Fields(item.v) {
			queue = append(queue, queueItem{f.Value, item.depth + 1})
		}
	}
}
