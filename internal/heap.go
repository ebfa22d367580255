package internal

import "iter"

// PriorityHeap holds dirty computations bucketed by their height in the graph,
// so a node is always processed after the nodes it depends on.
type PriorityHeap struct {
	max  int
	size int

	buckets [][]*Computed // [height]nodes
}

func NewHeap() *PriorityHeap {
	return &PriorityHeap{
		buckets: make([][]*Computed, 16),
	}
}

func (h *PriorityHeap) Insert(node *Computed) {
	if node.HasFlag(FlagInHeap) || node.HasFlag(FlagDisposed) {
		return
	}
	node.AddFlag(FlagInHeap)

	height := node.height
	for height >= len(h.buckets) {
		h.buckets = append(h.buckets, nil)
	}

	h.buckets[height] = append(h.buckets[height], node)
	h.size++

	if height > h.max {
		h.max = height
	}
}

func (h *PriorityHeap) InsertAll(nodes iter.Seq[*Computed]) {
	for node := range nodes {
		h.Insert(node)
	}
}

// Remove unflags the node; its stale bucket entry is skipped on drain.
func (h *PriorityHeap) Remove(node *Computed) {
	if !node.HasFlag(FlagInHeap) {
		return
	}
	node.RemoveFlag(FlagInHeap)
	h.size--
}

func (h *PriorityHeap) Empty() bool {
	return h.size == 0
}

// Drain processes each entry in topological order with the `process` function leaving the heap empty.
// Nodes inserted while draining are picked up, including ones below the current height.
func (h *PriorityHeap) Drain(process func(*Computed)) {
	for h.size > 0 {
		for height := 0; height <= h.max && h.size > 0; height++ {
			bucket := h.buckets[height]
			h.buckets[height] = nil

			for _, node := range bucket {
				if !node.HasFlag(FlagInHeap) {
					continue
				}

				h.Remove(node)
				process(node)
			}
		}
	}

	h.max = 0
}
