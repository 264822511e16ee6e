package thinner

import (
	"container/list"
	"context"

	"github.com/katalvlaran/trabecula/neighbourhood"
	"github.com/katalvlaran/trabecula/topology"
	"github.com/katalvlaran/trabecula/volume"
)

// direction names the six subiteration passes, in the fixed order the
// specification mandates.
type direction struct {
	name   string
	offset int
}

func directions(dims volume.Dims) [6]direction {
	stride := dims.StrideY()
	plane := dims.Plane()

	return [6]direction{
		{"U", -stride},
		{"D", stride},
		{"N", plane},
		{"S", -plane},
		{"E", 1},
		{"W", -1},
	}
}

// Options configures a Thinner run. Every hook is optional, following the
// teacher's own *Options{OnVisit,OnEnqueue,...} convention (see
// algorithms.BFSOptions/DFSOptions) rather than a bespoke logging
// dependency.
type Options struct {
	// OnSweep is invoked once per outer-loop pass, after all six
	// subiterations have run, reporting how many voxels that pass deleted.
	OnSweep func(sweep, deleted int)
}

// Result reports how a Run concluded.
type Result struct {
	Sweeps  int // number of outer-loop passes performed
	Deleted int // total voxels deleted across the whole run
}

// Thinner drives the 6-subiteration fixed-point erosion over a padded
// *volume.Volume, mutating it in place and tracking the live foreground
// voxel set.
type Thinner struct {
	vol  *volume.Volume
	off  [26]int
	live *liveSet
	opts Options
}

// New constructs a Thinner over vol. vol is mutated in place by Run.
func New(vol *volume.Volume, opts Options) *Thinner {
	return &Thinner{
		vol:  vol,
		off:  neighbourhood.Offsets(vol.Dims),
		live: newLiveSet(vol.Foreground()),
		opts: opts,
	}
}

// Run repeats the six subiterations until a full sweep deletes no voxel.
// ctx is checked between subiterations only, never mid-subiteration,
// since observing cancellation inside the inner fixed-point loop would
// break the fixed-point guarantee (see package doc).
func (t *Thinner) Run(ctx context.Context) (Result, error) {
	res := Result{}
	dirs := directions(t.vol.Dims)

	for {
		sweepDeleted := 0
		for _, d := range dirs {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			default:
			}
			sweepDeleted += t.subiteration(d.offset)
		}
		res.Sweeps++
		res.Deleted += sweepDeleted
		if t.opts.OnSweep != nil {
			t.opts.OnSweep(res.Sweeps, sweepDeleted)
		}
		if sweepDeleted == 0 {
			break
		}
	}

	return res, nil
}

// subiteration performs one direction's candidate-collect-then-delete
// pass and returns the number of voxels deleted.
func (t *Thinner) subiteration(direction int) int {
	// Candidate collection observes a snapshot of the volume as it stands
	// at the start of this subiteration: every voxel currently live is a
	// candidate iff it borders in this direction, is not an end point, and
	// is simple.
	candidates := make([]*list.Element, 0)
	for e := t.live.Front(); e != nil; e = e.Next() {
		p := e.Value.(int)
		if !topology.Border(t.vol, p, direction) {
			continue
		}
		nb := neighbourhood.Neighbours(p, t.off)
		lit := neighbourhood.LitCount(t.vol, nb)
		if lit <= 1 {
			continue
		}
		if topology.Simple(t.vol, nb) {
			candidates = append(candidates, e)
		}
	}

	// Inner re-check fixed point: deleting one candidate can make another
	// cease to be simple or become an endpoint, so every candidate is
	// re-validated against the current volume at the moment it is about
	// to be deleted.
	deleted := 0
	for {
		progressed := false
		for i := 0; i < len(candidates); {
			e := candidates[i]
			p := e.Value.(int)
			nb := neighbourhood.Neighbours(p, t.off)
			lit := neighbourhood.LitCount(t.vol, nb)
			if lit > 1 && topology.Simple(t.vol, nb) {
				t.vol.Data[p] = 0
				t.live.Remove(e)
				candidates[i] = candidates[len(candidates)-1]
				candidates = candidates[:len(candidates)-1]
				deleted++
				progressed = true
				continue
			}
			i++
		}
		if !progressed {
			break
		}
	}

	return deleted
}
