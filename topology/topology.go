package topology

import (
	"github.com/katalvlaran/trabecula/neighbourhood"
	"github.com/katalvlaran/trabecula/volume"
)

// Border reports whether p is a border point with respect to direction:
// true iff the neighbour reached by stepping direction from p is
// background. Used to restrict each thinning subiteration to voxels whose
// named-direction neighbour is background.
//
// Complexity: O(1).
func Border(vol *volume.Volume, p, direction int) bool {
	return !vol.Lit(p + direction)
}

// End reports whether a voxel with the given 26-neighbourhood lit count is
// an end point (at most one foreground neighbour).
//
// Complexity: O(1).
func End(litCount int) bool {
	return litCount <= 1
}

// Simple reports whether the voxel whose 26 neighbours are np is simple:
// removing it would not alter the topology of the foreground or the
// background. This is cond2 (object 26-connectivity) AND cond4
// (background 6-in-18 connectivity).
//
// Complexity: O(1) (bounded floods over at most 26/18 positions).
func Simple(vol *volume.Volume, np [26]int) bool {
	return cond2(vol, np) && cond4(vol, np)
}

// cond2 requires the lit positions among np to be 26-connected to each
// other: starting from the first lit position, a flood via S26/IDX26 must
// reach every other lit position.
func cond2(vol *volume.Volume, np [26]int) bool {
	return Connected26(np, func(idx int) bool { return vol.Lit(idx) })
}

// Connected26 reports whether the positions among np for which member
// returns true are all mutually reachable via 26-adjacency (S26/IDX26),
// starting the flood from the first such position. An empty member set is
// vacuously connected. This is reused by package graphbuilder to test
// node-cluster connectivity restricted to node-tagged neighbours (pass 2
// refinement), with a different membership predicate than "is
// foreground".
//
// Complexity: O(1) (at most 26 positions, 171 table entries).
func Connected26(np [26]int, member func(idx int) bool) bool {
	var visited [26]bool
	first := -1
	total := 0
	for i := 0; i < 26; i++ {
		if member(np[i]) {
			total++
			if first == -1 {
				first = i
			}
		}
	}
	if total == 0 {
		return true
	}

	visited[first] = true
	reached := 1
	stack := make([]int, 0, 26)
	stack = append(stack, first)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for j := neighbourhood.IDX26[cur]; j < neighbourhood.IDX26[cur+1]; j++ {
			ind := neighbourhood.S26[j]
			if !visited[ind] && member(np[ind]) {
				visited[ind] = true
				reached++
				stack = append(stack, ind)
			}
		}
	}

	return reached == total
}

// cond4 requires the background positions among the first 6 (face)
// neighbours of np to be reachable from a seed background position via
// 6-adjacency restricted to the 18-set (S6_18/IDX6_18): every background
// face position must be reachable through background-only 6-steps.
func cond4(vol *volume.Volume, np [26]int) bool {
	var visited [18]bool
	var reachedFace [6]bool

	seed := 0
	for seed < 18 && vol.Lit(np[seed]) {
		visited[seed] = true
		seed++
	}
	if seed == 18 {
		// Every one of the 18 positions is foreground: no background seed.
		// By construction cond4 is only evaluated on border points, which
		// guarantees at least one of the six face positions is background,
		// so this branch is unreachable in practice; treat defensively as
		// "no background reached" rather than indexing out of range.
		return false
	}
	if seed < 6 {
		reachedFace[seed] = true
	}
	visited[seed] = true

	stack := make([]int, 0, 18)
	stack = append(stack, seed)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for j := neighbourhood.IDX6_18[cur]; j < neighbourhood.IDX6_18[cur+1]; j++ {
			ind := neighbourhood.S6_18[j]
			if !visited[ind] && !vol.Lit(np[ind]) {
				visited[ind] = true
				if ind < 6 {
					reachedFace[ind] = true
				}
				stack = append(stack, ind)
			}
		}
	}

	bgFaces := 0
	for k := 0; k < 6; k++ {
		if !vol.Lit(np[k]) {
			bgFaces++
		}
	}
	reached := 0
	for _, r := range reachedFace {
		if r {
			reached++
		}
	}

	return reached == bgFaces
}
