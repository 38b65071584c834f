package game

// World owns the ocean, the weather and all ships, and drives the whole
// simulation with a fixed step. Environment subsystems update before the
// ships so every ship sees the same, already-advanced sea and wind state
// within a step.

type World struct {
	params   *Parameters
	eventBus *EventBus
	rng      *Rand

	ships []*Ship

	oceanSurface *OceanSurface
	oceanFloor   *OceanFloor
	wind         *Wind
	storm        *Storm
	clouds       *Clouds
	fishes       *Fishes
	stars        *Stars

	currentSimTime float32

	// Per-tool interaction counters, keyed by tool continuity.
	sparkCounter uint64
}

func NewWorld(params *Parameters, eb *EventBus, seed uint64) *World {
	rng := NewRand(seed)
	w := &World{
		params:   params,
		eventBus: eb,
		rng:      rng,
	}
	w.oceanFloor = NewOceanFloor(params.SeaDepth, rng)
	w.oceanSurface = NewOceanSurface(eb, rng)
	w.storm = NewStorm(eb, rng)
	w.wind = NewWind(rng)
	w.clouds = NewClouds(rng)
	w.fishes = NewFishes(rng)
	w.stars = NewStars(rng)
	return w
}

func (w *World) Params() *Parameters         { return w.params }
func (w *World) OceanSurface() *OceanSurface { return w.oceanSurface }
func (w *World) OceanFloor() *OceanFloor     { return w.oceanFloor }
func (w *World) Wind() *Wind                 { return w.wind }
func (w *World) Storm() *Storm               { return w.storm }
func (w *World) Clouds() *Clouds             { return w.clouds }
func (w *World) Fishes() *Fishes             { return w.fishes }
func (w *World) Stars() *Stars               { return w.stars }
func (w *World) Ships() []*Ship              { return w.ships }
func (w *World) CurrentSimTime() float32     { return w.currentSimTime }

// AddShip registers a built ship; ship IDs are indices and ships are
// never removed, so IDs stay stable for the world's lifetime.
func (w *World) AddShip(def ShipDefinition) *Ship {
	ship := BuildShip(def, len(w.ships), w.params, w.eventBus, w.rng)
	w.ships = append(w.ships, ship)
	return ship
}

// Update advances the whole world by one simulation step.
func (w *World) Update() {
	dt := float32(SimulationStepDuration)
	w.currentSimTime += dt

	w.stars.Update(w.currentSimTime, w.params)
	w.storm.Update(w.currentSimTime, w.wind, w.params, dt)
	w.wind.Update(w.params, dt)
	w.clouds.Update(w.wind, w.storm, dt)
	w.oceanSurface.Update(w.currentSimTime, w.wind, w.params)
	w.oceanFloor.Update()
	w.fishes.Update(w.oceanSurface, w.oceanFloor, dt)

	for _, ship := range w.ships {
		ship.Update(w.currentSimTime, w.params, w.oceanSurface, w.oceanFloor, w.wind, w.storm)
	}
}

// --- Interaction surface ---
//
// Tools that affect at most one target walk the ships in reverse order,
// so the last-added ship (drawn topmost) wins; area tools apply to all.

func (w *World) DestroyAt(position vec2, radius float32) {
	for _, ship := range w.ships {
		ship.DestroyAt(position, radius)
	}
}

func (w *World) RepairAt(position vec2, radius float32) {
	for _, ship := range w.ships {
		ship.RepairAt(position, radius)
	}
}

func (w *World) SawThrough(start, end vec2) {
	for _, ship := range w.ships {
		ship.SawThrough(start, end)
	}
}

// ApplyHeatBlasterAt pumps heat into (positive flow) or out of (negative
// flow) all particles within the radius.
func (w *World) ApplyHeatBlasterAt(position vec2, radius, flow float32) {
	dt := float32(SimulationStepDuration)
	for _, ship := range w.ships {
		ship.ApplyHeatBlasterAt(position, radius, flow, dt)
	}
}

func (w *World) DrawTo(position vec2, strength float32) {
	for _, ship := range w.ships {
		ship.DrawTo(position, strength)
	}
}

func (w *World) SwirlAt(position vec2, strength float32) {
	for _, ship := range w.ships {
		ship.SwirlAt(position, strength)
	}
}

func (w *World) FloodAt(position vec2, radius float32, quantity float32) {
	for _, ship := range w.ships {
		ship.FloodAt(position, radius, quantity)
	}
}

func (w *World) ScrubThrough(start, end vec2, radius float32) {
	for _, ship := range w.ships {
		ship.ScrubThrough(start, end, radius)
	}
}

// ApplySparkAt runs a spark interaction; isFirst resets the continuity
// counter that widens the arc reach over consecutive applications.
func (w *World) ApplySparkAt(position vec2, isFirst bool) bool {
	if isFirst {
		w.sparkCounter = 0
	} else {
		w.sparkCounter++
	}
	for i := len(w.ships) - 1; i >= 0; i-- {
		if w.ships[i].ApplySparkAt(position, w.sparkCounter) {
			return true
		}
	}
	return false
}

func (w *World) ToggleImpactBombAt(position vec2) bool {
	return w.toggleGadgetAt(GadgetImpactBomb, position)
}

func (w *World) ToggleTimerBombAt(position vec2) bool {
	return w.toggleGadgetAt(GadgetTimerBomb, position)
}

func (w *World) ToggleRCBombAt(position vec2) bool {
	return w.toggleGadgetAt(GadgetRCBomb, position)
}

func (w *World) ToggleAntiMatterBombAt(position vec2) bool {
	return w.toggleGadgetAt(GadgetAntiMatterBomb, position)
}

func (w *World) toggleGadgetAt(kind GadgetKind, position vec2) bool {
	for i := len(w.ships) - 1; i >= 0; i-- {
		ship := w.ships[i]
		if ship.Gadgets.ToggleGadgetAt(kind, position, ship) {
			return true
		}
	}
	return false
}

// TogglePhysicsProbeAt places, moves or removes the single probe. ok is
// false when no ship point was in range and nothing changed.
func (w *World) TogglePhysicsProbeAt(position vec2) (placed bool, ok bool) {
	for i := len(w.ships) - 1; i >= 0; i-- {
		ship := w.ships[i]
		if placed, ok = ship.Gadgets.TogglePhysicsProbeAt(position, ship); ok {
			return placed, true
		}
	}
	return false, false
}

func (w *World) DetonateRCBombs() {
	for _, ship := range w.ships {
		ship.Gadgets.DetonateRCBombs()
	}
}

func (w *World) DetonateAntiMatterBombs() {
	for _, ship := range w.ships {
		ship.Gadgets.DetonateAntiMatterBombs()
	}
}

// ApplyThanosSnapAt vaporizes one half of every ship at the vertical
// line through x. Which half goes is drawn per ship.
func (w *World) ApplyThanosSnapAt(x float32) {
	for _, ship := range w.ships {
		ship.ApplyThanosSnapAt(x, w.rng.Bool(0.5))
	}
}

// NudgeShipAt kicks the connected component nearest to the position, or
// does nothing when no point is in range.
func (w *World) NudgeShipAt(position vec2, radius float32, deltaVelocity vec2) bool {
	for i := len(w.ships) - 1; i >= 0; i-- {
		ship := w.ships[i]
		p := ship.QueryNearestPointAt(position, radius)
		if p == NoneIndex {
			continue
		}
		ship.MoveBy(ship.Points.ConnectedComponentID[p], deltaVelocity)
		return true
	}
	return false
}

// AdjustOceanSurfaceTo retargets the interactive wave; a nil position
// releases it.
func (w *World) AdjustOceanSurfaceTo(position *vec2) {
	w.oceanSurface.AdjustTo(position, w.currentSimTime)
}

func (w *World) DisplaceOceanSurfaceAt(x, yOffset float32) {
	w.oceanSurface.DisplaceAt(x, yOffset)
}

func (w *World) TriggerTsunami() {
	w.oceanSurface.TriggerTsunami(w.currentSimTime)
	w.fishes.DisturbAt(vec2{0, 0}, MaxWorldWidth)
}

func (w *World) TriggerRogueWave() {
	w.oceanSurface.TriggerRogueWave(w.currentSimTime)
}

func (w *World) TriggerStorm() {
	w.storm.TriggerStorm()
}

func (w *World) QueryNearestPointAt(position vec2, radius float32) (shipID int, point int32) {
	for i := len(w.ships) - 1; i >= 0; i-- {
		if p := w.ships[i].QueryNearestPointAt(position, radius); p != NoneIndex {
			return w.ships[i].ID, p
		}
	}
	return -1, NoneIndex
}
