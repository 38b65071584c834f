package game

// Electric spark propagation. One "interaction" is a single user-triggered
// application; the arcs walk the spring graph one hop per expansion,
// preferring springs electrified during the previous interaction so
// repeated zaps retrace and extend familiar paths.

// SparkSegment is one renderable arc piece.
type SparkSegment struct {
	Start vec2
	End   vec2
	Size  float32
}

// ElectricSparks owns the double-buffered per-spring electrified state and
// the render segment list of the current interaction.
type ElectricSparks struct {
	// isSpringElectrified is written during the current interaction;
	// isSpringElectrifiedBackup holds the previous interaction's state and
	// is what the continuation policy consults. Swapped at interaction end.
	isSpringElectrified       []bool
	isSpringElectrifiedBackup []bool

	// One fork allowance per interaction.
	hasForkedThisInteraction bool

	Segments []SparkSegment
}

func NewElectricSparks(springCount int) *ElectricSparks {
	return &ElectricSparks{
		isSpringElectrified:       make([]bool, springCount),
		isSpringElectrifiedBackup: make([]bool, springCount),
	}
}

type sparkArc struct {
	point          int32
	incomingDir    vec2
	incomingSpring int32
	pathLength     float32
}

// ApplySparkAt seeds an interaction at the particle nearest to position
// (within the capture radius) and expands arcs until the path-length
// budget is exhausted. counter is the number of consecutive interactions
// at this location; longer sequences reach further, capped at the global
// maximum. Returns false when no particle is in range.
func (es *ElectricSparks) ApplySparkAt(
	position vec2,
	counter uint64,
	points *Points,
	springs *Springs,
	rng *Rand,
) bool {
	// Nearest active particle within the capture radius.
	seed := NoneIndex
	bestSq := float32(SparkSearchRadiusSquared)
	for i := int32(0); i < int32(points.Count()); i++ {
		if !points.IsActive[i] {
			continue
		}
		d := points.Position[i].Sub(position)
		sq := d[0]*d[0] + d[1]*d[1]
		if sq < bestSq {
			bestSq = sq
			seed = i
		}
	}
	if seed == NoneIndex {
		return false
	}

	maxPathLength := minF(float32(counter)+1.0, SparkMaxPathLength)

	for i := range es.isSpringElectrified {
		es.isSpringElectrified[i] = false
	}
	es.Segments = es.Segments[:0]
	es.hasForkedThisInteraction = false

	// Start up to StartingArcs arcs along distinct springs of the seed.
	nStartingArcs := rng.Range(SparkStartingArcsMin, SparkStartingArcsMax)
	candidates := points.ConnectedSprings[seed]
	var arcs []sparkArc
	for _, spring := range candidates {
		if len(arcs) >= nStartingArcs {
			break
		}
		if springs.Deleted[spring] {
			continue
		}
		other := springs.OtherEndpoint(spring, seed)
		dir := points.Position[other].Sub(points.Position[seed])
		l := dir.Len()
		if l == 0 {
			continue
		}
		dir = dir.Mul(1.0 / l)
		es.electrify(spring, seed, other, 0, maxPathLength, points)
		arcs = append(arcs, sparkArc{
			point:          other,
			incomingDir:    dir,
			incomingSpring: spring,
			pathLength:     l,
		})
	}
	if len(arcs) == 0 {
		return false
	}

	// Expansion: one spring hop per arc per iteration.
	next := make([]sparkArc, 0, len(arcs)*2)
	for len(arcs) > 0 {
		next = next[:0]
		for _, arc := range arcs {
			if arc.pathLength >= maxPathLength {
				continue
			}
			es.expandArc(arc, maxPathLength, points, springs, rng, &next)
		}
		arcs, next = next, arcs
	}

	// Publish this interaction's electrified set as history for the next.
	es.isSpringElectrified, es.isSpringElectrifiedBackup =
		es.isSpringElectrifiedBackup, es.isSpringElectrified

	return true
}

// expandArc advances one arc by one spring hop, possibly forking once per
// interaction.
func (es *ElectricSparks) expandArc(
	arc sparkArc,
	maxPathLength float32,
	points *Points,
	springs *Springs,
	rng *Rand,
	out *[]sparkArc,
) {
	p := arc.point

	// Rank the candidate continuations by alignment with the incoming
	// direction, keeping previously-electrified springs apart: those are
	// always preferred when aligned.
	bestPrev := NoneIndex
	bestPrevAlign := float32(0)
	bestNew := NoneIndex
	bestNewAlign := float32(-2)
	secondNew := NoneIndex
	for _, spring := range points.ConnectedSprings[p] {
		if spring == arc.incomingSpring || springs.Deleted[spring] {
			continue
		}
		if es.isSpringElectrified[spring] {
			continue
		}
		other := springs.OtherEndpoint(spring, p)
		dir := points.Position[other].Sub(points.Position[p])
		l := dir.Len()
		if l == 0 {
			continue
		}
		dir = dir.Mul(1.0 / l)
		align := dir[0]*arc.incomingDir[0] + dir[1]*arc.incomingDir[1]
		if es.isSpringElectrifiedBackup[spring] {
			if align > bestPrevAlign {
				bestPrevAlign = align
				bestPrev = spring
			}
		}
		if align > bestNewAlign {
			secondNew = bestNew
			bestNewAlign = align
			bestNew = spring
		} else if secondNew == NoneIndex {
			secondNew = spring
		}
	}

	// Distance factors biasing the stochastic choices: forks happen near
	// the theoretical maximum reach, reroutes near the interaction point.
	dT := clampF((SparkMaxPathLength-arc.pathLength)/SparkMaxPathLength, 0, 1)
	dI := clampF(arc.pathLength/maxPathLength, 0, 1)

	chosen := NoneIndex
	if bestPrev != NoneIndex {
		chosen = bestPrev
		// Reroute away from history, rarely, near the source.
		doReroute := rng.Bool(0.15 * (1.0 - dI) * (1.0 - dI))
		if doReroute && secondNew != NoneIndex {
			chosen = secondNew
		}
	} else if bestNew != NoneIndex {
		// Second-best alignment wins when available: the slight misalign
		// per hop is what gives arcs their zig-zag.
		if secondNew != NoneIndex {
			chosen = secondNew
		} else {
			chosen = bestNew
		}
	}
	if chosen == NoneIndex {
		return
	}

	other := springs.OtherEndpoint(chosen, p)
	dir := points.Position[other].Sub(points.Position[p])
	l := dir.Len()
	if l == 0 {
		return
	}
	dir = dir.Mul(1.0 / l)
	es.electrify(chosen, p, other, arc.pathLength, maxPathLength, points)
	*out = append(*out, sparkArc{
		point:          other,
		incomingDir:    dir,
		incomingSpring: chosen,
		pathLength:     arc.pathLength + l,
	})

	// At most one fork per interaction, biased toward the far end.
	if !es.hasForkedThisInteraction {
		doFork := rng.Bool(0.05 * (1.0 - dT) * (1.0 - dT))
		if doFork && bestNew != NoneIndex && bestNew != chosen {
			forkOther := springs.OtherEndpoint(bestNew, p)
			forkDir := points.Position[forkOther].Sub(points.Position[p])
			fl := forkDir.Len()
			if fl > 0 {
				es.hasForkedThisInteraction = true
				es.electrify(bestNew, p, forkOther, arc.pathLength, maxPathLength, points)
				*out = append(*out, sparkArc{
					point:          forkOther,
					incomingDir:    forkDir.Mul(1.0 / fl),
					incomingSpring: bestNew,
					pathLength:     arc.pathLength + fl,
				})
			}
		}
	}
}

// electrify marks a spring live and records its render segment with the
// size decaying along the path.
func (es *ElectricSparks) electrify(
	spring, from, to int32,
	pathLength, maxPathLength float32,
	points *Points,
) {
	es.isSpringElectrified[spring] = true
	size := 0.2 + 0.8*(maxPathLength-pathLength)/maxPathLength
	if size < 0.2 {
		size = 0.2
	}
	es.Segments = append(es.Segments, SparkSegment{
		Start: points.Position[from],
		End:   points.Position[to],
		Size:  size,
	})
}

// Update fades out rendered segments between interactions.
func (es *ElectricSparks) Update() {
	if len(es.Segments) > 0 {
		out := es.Segments[:0]
		for _, seg := range es.Segments {
			seg.Size -= 0.25
			if seg.Size > 0 {
				out = append(out, seg)
			}
		}
		es.Segments = out
	}
}
