package navigation

import "github.com/lixenwraith/battlefield/core"

// node is a transient search entry, priority is g+h
type node struct {
	pos core.Point
	g   int // Steps from search origin
	h   int // Manhattan estimate to goal
	seq int // Insertion order, final tie-break
}

func (n node) f() int { return n.g + n.h }

// before orders by lowest f, then lowest h, then earliest insertion
func (n node) before(o node) bool {
	if nf, of := n.f(), o.f(); nf != of {
		return nf < of
	}
	if n.h != o.h {
		return n.h < o.h
	}
	return n.seq < o.seq
}

// --- Min-heap for A* ---

type frontier struct {
	items []node
	seq   int
}

func (q *frontier) Len() int { return len(q.items) }

func (q *frontier) push(pos core.Point, g, h int) {
	q.items = append(q.items, node{pos: pos, g: g, h: h, seq: q.seq})
	q.seq++

	// Sift up
	i := len(q.items) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !q.items[i].before(q.items[parent]) {
			break
		}
		q.items[parent], q.items[i] = q.items[i], q.items[parent]
		i = parent
	}
}

func (q *frontier) pop() node {
	old := q.items
	n := len(old)
	top := old[0]
	old[0] = old[n-1]
	q.items = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(q.items) {
			break
		}
		smallest := left
		if right := left + 1; right < len(q.items) && q.items[right].before(q.items[left]) {
			smallest = right
		}
		if !q.items[smallest].before(q.items[i]) {
			break
		}
		q.items[i], q.items[smallest] = q.items[smallest], q.items[i]
		i = smallest
	}
	return top
}
