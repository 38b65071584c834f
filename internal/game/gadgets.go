package game

// Gadgets: attachable devices hosted on single particles, each a small
// state machine. Variants are a tagged union dispatched on Kind; there is
// no subtyping anywhere.

type GadgetKind uint8

const (
	GadgetImpactBomb GadgetKind = iota
	GadgetTimerBomb
	GadgetRCBomb
	GadgetAntiMatterBomb
	GadgetPhysicsProbe
)

type GadgetState uint8

const (
	// Shared lifecycle. Variant-specific phases below reuse the slots.
	GadgetStateIdle GadgetState = iota
	GadgetStateTriggeringExplosion
	GadgetStateExploding
	GadgetStateExpired

	// TimerBomb.
	GadgetStateSlowFuse
	GadgetStateFastFuse

	// AntiMatterBomb.
	GadgetStateContained
	GadgetStatePreImplosion
)

type Gadget struct {
	ID    int32
	Kind  GadgetKind
	State GadgetState

	AttachedPoint int32 // NoneIndex once detached

	// Frozen at the instant of explosion so the blast and its fadeout
	// visual stay put even as the structure flies apart.
	Position vec2
	PlaneID  int32

	stepCounter int
}

// Gadgets owns every gadget of one ship. Ordinary gadgets are unbounded;
// at most one physics probe exists at a time.
type Gadgets struct {
	gadgets []*Gadget
	nextID  int32

	probe *Gadget // also present in gadgets
}

func NewGadgets() *Gadgets {
	return &Gadgets{}
}

// position returns the gadget's current world position.
func (g *Gadget) position(points *Points) vec2 {
	if g.AttachedPoint != NoneIndex {
		return points.Position[g.AttachedPoint]
	}
	return g.Position
}

// Update advances every state machine one step, then sweeps expired
// gadgets, detaching them from their hosts.
func (gs *Gadgets) Update(ship *Ship, params *Parameters) {
	points := ship.Points
	for _, g := range gs.gadgets {
		switch g.Kind {
		case GadgetImpactBomb:
			gs.updateImpactBomb(g, ship, params)
		case GadgetTimerBomb:
			gs.updateTimerBomb(g, ship, params)
		case GadgetRCBomb:
			gs.updateRCBomb(g, ship, params)
		case GadgetAntiMatterBomb:
			gs.updateAntiMatterBomb(g, ship, params)
		case GadgetPhysicsProbe:
			// Probes have no lifecycle of their own.
		}
	}

	// Sweep.
	out := gs.gadgets[:0]
	for _, g := range gs.gadgets {
		if g.State == GadgetStateExpired {
			if g.AttachedPoint != NoneIndex {
				points.AttachedGadget[g.AttachedPoint] = NoneIndex
				g.AttachedPoint = NoneIndex
			}
			pos := g.Position
			ship.eventBus.Emit(Event{Type: EventGadgetRemoved, X: pos[0], Y: pos[1], Data: int(g.Kind)})
			continue
		}
		out = append(out, g)
	}
	gs.gadgets = out
}

func (gs *Gadgets) updateImpactBomb(g *Gadget, ship *Ship, params *Parameters) {
	switch g.State {
	case GadgetStateIdle:
		if g.AttachedPoint != NoneIndex &&
			ship.Points.Temperature[g.AttachedPoint] > BombsTemperatureTrigger {
			g.State = GadgetStateTriggeringExplosion
		}
	case GadgetStateExploding:
		g.stepCounter++
		if g.stepCounter >= ExplosionFadeoutStepsCount {
			g.State = GadgetStateExpired
		}
	}

	// Triggering resolves within the same update call.
	if g.State == GadgetStateTriggeringExplosion {
		gs.explode(g, ship, params)
	}
}

func (gs *Gadgets) updateTimerBomb(g *Gadget, ship *Ship, params *Parameters) {
	switch g.State {
	case GadgetStateSlowFuse:
		g.stepCounter++
		if g.stepCounter >= TimerBombFuseSteps {
			g.State = GadgetStateTriggeringExplosion
		}
	case GadgetStateFastFuse:
		g.stepCounter++
		if g.stepCounter >= TimerBombFuseSteps/8 {
			g.State = GadgetStateTriggeringExplosion
		}
	case GadgetStateExploding:
		g.stepCounter++
		if g.stepCounter >= ExplosionFadeoutStepsCount {
			g.State = GadgetStateExpired
		}
	}
	if g.State == GadgetStateTriggeringExplosion {
		gs.explode(g, ship, params)
	}
}

func (gs *Gadgets) updateRCBomb(g *Gadget, ship *Ship, params *Parameters) {
	switch g.State {
	case GadgetStateIdle:
		// Periodic ping so the UI/audio can track armed bombs.
		g.stepCounter++
		if g.stepCounter >= RCBombPingSteps {
			g.stepCounter = 0
		}
	case GadgetStateExploding:
		g.stepCounter++
		if g.stepCounter >= ExplosionFadeoutStepsCount {
			g.State = GadgetStateExpired
		}
	}
	if g.State == GadgetStateTriggeringExplosion {
		gs.explode(g, ship, params)
	}
}

func (gs *Gadgets) updateAntiMatterBomb(g *Gadget, ship *Ship, params *Parameters) {
	switch g.State {
	case GadgetStatePreImplosion:
		// Suck the surroundings in before annihilation.
		ship.DrawTo(g.position(ship.Points), 40000.0)
		g.stepCounter++
		if g.stepCounter >= AntiMatterBombPreimplosionSteps {
			g.stepCounter = 0
			g.State = GadgetStateTriggeringExplosion
		}
	case GadgetStateExploding:
		g.stepCounter++
		if g.stepCounter >= ExplosionFadeoutStepsCount {
			g.State = GadgetStateExpired
		}
	}
	if g.State == GadgetStateTriggeringExplosion {
		gs.explode(g, ship, params)
	}
}

// explode performs the instantaneous Triggering→Exploding transition:
// freeze the position, inject the blast, notify.
func (gs *Gadgets) explode(g *Gadget, ship *Ship, params *Parameters) {
	points := ship.Points
	pos := g.position(points)
	g.Position = pos
	if g.AttachedPoint != NoneIndex {
		g.PlaneID = points.PlaneID[g.AttachedPoint]
		points.AttachedGadget[g.AttachedPoint] = NoneIndex
		g.AttachedPoint = NoneIndex
	}

	uv := float32(1.0)
	if params.IsUltraViolentMode {
		uv = 10.0
	}
	radius := params.BombBlastRadius * uv
	strength := 60.0 * params.BombBlastForceAdjustment
	heat := BombBlastHeat * 1.2 * params.BombBlastHeatAdjustment * uv
	if g.Kind == GadgetAntiMatterBomb {
		radius *= 2.0
		strength *= 3.0
	}

	ship.ApplyBlastAt(pos, radius, strength, heat)
	ship.eventBus.Emit(Event{Type: EventBombDetonated, X: pos[0], Y: pos[1], Data: int(g.Kind)})

	g.stepCounter = 0
	g.State = GadgetStateExploding
}

// ToggleGadgetAt places a gadget of the given kind at the nearest eligible
// particle, or removes an existing same-kind gadget already within the
// search radius. Returns true when anything happened.
func (gs *Gadgets) ToggleGadgetAt(kind GadgetKind, position vec2, ship *Ship) bool {
	points := ship.Points

	// Remove first: an armed gadget near the cursor wins.
	for _, g := range gs.gadgets {
		if g.Kind != kind || g.State == GadgetStateExploding || g.State == GadgetStateExpired {
			continue
		}
		d := g.position(points).Sub(position)
		if d[0]*d[0]+d[1]*d[1] <= GadgetSearchRadius*GadgetSearchRadius {
			gs.remove(g, ship)
			return true
		}
	}

	host := gs.findEligiblePoint(position, ship)
	if host == NoneIndex {
		return false
	}
	gs.attach(kind, host, ship)
	return true
}

// TogglePhysicsProbeAt manages the single probe. The tri-state result:
// placed (true,ok), removed (false,ok), or no eligible particle (ok=false).
func (gs *Gadgets) TogglePhysicsProbeAt(position vec2, ship *Ship) (placed bool, ok bool) {
	points := ship.Points
	if gs.probe != nil {
		d := gs.probe.position(points).Sub(position)
		if d[0]*d[0]+d[1]*d[1] <= GadgetSearchRadius*GadgetSearchRadius {
			gs.remove(gs.probe, ship)
			gs.probe = nil
			return false, true
		}
		// Moving: detach from the old host, fall through to placement.
		gs.remove(gs.probe, ship)
		gs.probe = nil
	}
	host := gs.findEligiblePoint(position, ship)
	if host == NoneIndex {
		return false, false
	}
	gs.probe = gs.attach(GadgetPhysicsProbe, host, ship)
	return true, true
}

// findEligiblePoint returns the nearest particle within the search radius
// that still has springs and no gadget.
func (gs *Gadgets) findEligiblePoint(position vec2, ship *Ship) int32 {
	points := ship.Points
	best := NoneIndex
	bestSq := float32(GadgetSearchRadius * GadgetSearchRadius)
	for i := int32(0); i < int32(points.Count()); i++ {
		if !points.IsActive[i] ||
			len(points.ConnectedSprings[i]) == 0 ||
			points.AttachedGadget[i] != NoneIndex {
			continue
		}
		d := points.Position[i].Sub(position)
		sq := d[0]*d[0] + d[1]*d[1]
		if sq < bestSq {
			bestSq = sq
			best = i
		}
	}
	return best
}

func (gs *Gadgets) attach(kind GadgetKind, host int32, ship *Ship) *Gadget {
	points := ship.Points
	state := GadgetStateIdle
	switch kind {
	case GadgetTimerBomb:
		state = GadgetStateSlowFuse
	case GadgetAntiMatterBomb:
		state = GadgetStateContained
	}
	g := &Gadget{
		ID:            gs.nextID,
		Kind:          kind,
		State:         state,
		AttachedPoint: host,
		Position:      points.Position[host],
		PlaneID:       points.PlaneID[host],
	}
	gs.nextID++
	gs.gadgets = append(gs.gadgets, g)
	points.AttachedGadget[host] = g.ID
	pos := points.Position[host]
	ship.eventBus.Emit(Event{Type: EventGadgetPlaced, X: pos[0], Y: pos[1], Data: int(kind)})
	return g
}

func (gs *Gadgets) remove(g *Gadget, ship *Ship) {
	if g.AttachedPoint != NoneIndex {
		ship.Points.AttachedGadget[g.AttachedPoint] = NoneIndex
		g.Position = ship.Points.Position[g.AttachedPoint]
		g.AttachedPoint = NoneIndex
	}
	for i, other := range gs.gadgets {
		if other == g {
			gs.gadgets = append(gs.gadgets[:i], gs.gadgets[i+1:]...)
			break
		}
	}
	pos := g.Position
	ship.eventBus.Emit(Event{Type: EventGadgetRemoved, X: pos[0], Y: pos[1], Data: int(g.Kind)})
}

// DetonateRCBombs fires every armed remote-controlled bomb. Returns
// whether any was armed.
func (gs *Gadgets) DetonateRCBombs() bool {
	any := false
	for _, g := range gs.gadgets {
		if g.Kind == GadgetRCBomb && g.State == GadgetStateIdle {
			g.State = GadgetStateTriggeringExplosion
			any = true
		}
	}
	return any
}

// DetonateAntiMatterBombs starts the pre-implosion of every contained
// antimatter bomb.
func (gs *Gadgets) DetonateAntiMatterBombs() bool {
	any := false
	for _, g := range gs.gadgets {
		if g.Kind == GadgetAntiMatterBomb && g.State == GadgetStateContained {
			g.State = GadgetStatePreImplosion
			g.stepCounter = 0
			any = true
		}
	}
	return any
}

// OnPointDetached handles the host particle breaking away: impact bombs
// cook off, everything else is dropped where it was.
func (gs *Gadgets) OnPointDetached(point int32) {
	for _, g := range gs.gadgets {
		if g.AttachedPoint != point {
			continue
		}
		switch g.Kind {
		case GadgetImpactBomb, GadgetTimerBomb, GadgetRCBomb:
			if g.State == GadgetStateIdle || g.State == GadgetStateSlowFuse {
				g.State = GadgetStateTriggeringExplosion
			}
		case GadgetPhysicsProbe:
			g.State = GadgetStateExpired
			gs.probe = nil
		}
	}
}

// OnSpringDestroyed is the neighbourhood-disturbance hook: slow-fuse
// timer bombs within the disturbance radius of the break switch to
// their fast fuse. Bombs elsewhere on the ship keep ticking slow.
func (gs *Gadgets) OnSpringDestroyed(at vec2, points *Points) {
	const radiusSq = GadgetNeighborhoodRadius * GadgetNeighborhoodRadius
	for _, g := range gs.gadgets {
		if g.Kind != GadgetTimerBomb || g.State != GadgetStateSlowFuse {
			continue
		}
		d := points.Position[g.AttachedPoint].Sub(at)
		if d[0]*d[0]+d[1]*d[1] >= radiusSq {
			continue
		}
		g.State = GadgetStateFastFuse
		g.stepCounter = 0
	}
}

// VisualStates exposes render snapshots: position, kind, and a fadeout
// fraction for exploding gadgets.
type GadgetVisual struct {
	Position vec2
	Kind     GadgetKind
	Fade     float32 // 1 idle, decreasing through the explosion fadeout
}

func (gs *Gadgets) VisualStates(points *Points, out []GadgetVisual) []GadgetVisual {
	out = out[:0]
	for _, g := range gs.gadgets {
		fade := float32(1.0)
		if g.State == GadgetStateExploding {
			fade = 1.0 - float32(g.stepCounter)/float32(ExplosionFadeoutStepsCount)
		}
		out = append(out, GadgetVisual{
			Position: g.position(points),
			Kind:     g.Kind,
			Fade:     fade,
		})
	}
	return out
}
