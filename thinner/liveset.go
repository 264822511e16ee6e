package thinner

import "container/list"

// liveSet is an order-preserving, O(1)-erase container of padded voxel
// indices, mirroring the reference implementation's std::list<int> of
// foreground points: subiteration candidates are recorded as positional
// references (here, *list.Element) so they can be removed without a scan.
type liveSet struct {
	order *list.List
}

func newLiveSet(indices []int) *liveSet {
	ls := &liveSet{order: list.New()}
	for _, idx := range indices {
		ls.order.PushBack(idx)
	}

	return ls
}

// Front returns the first element, or nil if the set is empty.
func (ls *liveSet) Front() *list.Element {
	return ls.order.Front()
}

// Remove deletes e from the set.
func (ls *liveSet) Remove(e *list.Element) {
	ls.order.Remove(e)
}

// Indices returns the current contents in order, as padded indices.
func (ls *liveSet) Indices() []int {
	out := make([]int, 0, ls.order.Len())
	for e := ls.order.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(int))
	}

	return out
}

func (ls *liveSet) Len() int {
	return ls.order.Len()
}
