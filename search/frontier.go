package search

import "container/heap"

// frontierItem is a discovered vertex waiting to be finalized.
type frontierItem[V comparable, W Weight] struct {
	vertex V
	dist   W
	seq    uint64 // insertion counter, breaks distance ties
	index  int    // position in the heap, -1 once popped
}

// frontierPQ is a min-heap of *frontierItem ordered by dist. Among equal
// distances the most recently inserted item comes out first.
type frontierPQ[V comparable, W Weight] []*frontierItem[V, W]

func (pq frontierPQ[V, W]) Len() int { return len(pq) }

func (pq frontierPQ[V, W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq > pq[j].seq
}

func (pq frontierPQ[V, W]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push is called by heap.Push; x must be a *frontierItem.
func (pq *frontierPQ[V, W]) Push(x any) {
	it := x.(*frontierItem[V, W])
	it.index = len(*pq)
	*pq = append(*pq, it)
}

// Pop is called by heap.Pop.
func (pq *frontierPQ[V, W]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[:n-1]

	return it
}

// frontier wraps the heap with a vertex index so that a queued vertex can be
// re-prioritised in place instead of being pushed twice.
type frontier[V comparable, W Weight] struct {
	pq     frontierPQ[V, W]
	queued map[V]*frontierItem[V, W]
	seq    uint64
}

func newFrontier[V comparable, W Weight]() *frontier[V, W] {
	f := &frontier[V, W]{queued: make(map[V]*frontierItem[V, W])}
	heap.Init(&f.pq)

	return f
}

func (f *frontier[V, W]) Len() int { return f.pq.Len() }

// push adds v with distance d.
func (f *frontier[V, W]) push(v V, d W) {
	f.seq++
	it := &frontierItem[V, W]{vertex: v, dist: d, seq: f.seq}
	heap.Push(&f.pq, it)
	f.queued[v] = it
}

// pop removes and returns the vertex with the smallest distance.
func (f *frontier[V, W]) pop() V {
	it := heap.Pop(&f.pq).(*frontierItem[V, W])
	delete(f.queued, it.vertex)

	return it.vertex
}

// decrease lowers the distance of v if it is still queued. A vertex that
// already left the frontier is not re-added.
func (f *frontier[V, W]) decrease(v V, d W) {
	it, ok := f.queued[v]
	if !ok {
		return
	}
	it.dist = d
	heap.Fix(&f.pq, it.index)
}
