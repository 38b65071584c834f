package game

import "testing"

func newTestShip(t *testing.T) *Ship {
	t.Helper()
	return BuildShip(DefaultShipDefinition(vec2{0, 0}), 0, NewParameters(), NewEventBus(), NewRand(3))
}

func TestToggleGadgetPlaceAndRemove(t *testing.T) {
	ship := newTestShip(t)
	gs := ship.Gadgets
	pos := ship.Points.Position[0]

	if !gs.ToggleGadgetAt(GadgetRCBomb, pos, ship) {
		t.Fatal("placement near a particle failed")
	}
	if n := len(gs.VisualStates(ship.Points, nil)); n != 1 {
		t.Fatalf("gadget count after placement = %d, want 1", n)
	}
	host := int32(NoneIndex)
	for i := int32(0); i < int32(ship.Points.Count()); i++ {
		if ship.Points.AttachedGadget[i] != NoneIndex {
			host = i
			break
		}
	}
	if host == NoneIndex {
		t.Fatal("no particle records the attached gadget")
	}

	// Same spot again: the armed bomb wins and is removed.
	if !gs.ToggleGadgetAt(GadgetRCBomb, pos, ship) {
		t.Fatal("removal toggle failed")
	}
	if n := len(gs.VisualStates(ship.Points, nil)); n != 0 {
		t.Fatalf("gadget count after removal = %d, want 0", n)
	}
	if ship.Points.AttachedGadget[host] != NoneIndex {
		t.Fatal("host particle still records the removed gadget")
	}
}

func TestToggleGadgetNowhereNearShip(t *testing.T) {
	ship := newTestShip(t)
	far := vec2{1000, 1000}
	if ship.Gadgets.ToggleGadgetAt(GadgetImpactBomb, far, ship) {
		t.Fatal("placement succeeded with no particle in range")
	}
}

func TestImpactBombTriggersOnHeat(t *testing.T) {
	params := NewParameters()
	ship := newTestShip(t)
	gs := ship.Gadgets
	pos := ship.Points.Position[0]
	if !gs.ToggleGadgetAt(GadgetImpactBomb, pos, ship) {
		t.Fatal("placement failed")
	}
	g := gs.gadgets[0]
	host := g.AttachedPoint

	// Just below the trigger temperature: nothing happens.
	ship.Points.Temperature[host] = BombsTemperatureTrigger
	gs.Update(ship, params)
	if g.State != GadgetStateIdle {
		t.Fatalf("bomb left idle at the trigger threshold: state %d", g.State)
	}

	ship.Points.Temperature[host] = BombsTemperatureTrigger + 1
	gs.Update(ship, params)
	if g.State != GadgetStateExploding {
		t.Fatalf("bomb state after trigger = %d, want exploding", g.State)
	}
	if g.AttachedPoint != NoneIndex {
		t.Fatal("exploding bomb still attached to its host")
	}
}

func TestExplosionFadeoutExpires(t *testing.T) {
	params := NewParameters()
	ship := newTestShip(t)
	gs := ship.Gadgets
	gs.ToggleGadgetAt(GadgetRCBomb, ship.Points.Position[0], ship)
	gs.DetonateRCBombs()
	gs.Update(ship, params) // resolves the detonation into the exploding state

	removed := false
	ship.eventBus.Subscribe(EventGadgetRemoved, func(Event) { removed = true })
	for i := 0; i < ExplosionFadeoutStepsCount; i++ {
		if len(gs.gadgets) == 0 {
			t.Fatalf("bomb swept after only %d fadeout steps", i)
		}
		gs.Update(ship, params)
	}
	if len(gs.gadgets) != 0 {
		t.Fatalf("bomb still present after %d fadeout steps", ExplosionFadeoutStepsCount)
	}
	if !removed {
		t.Fatal("no removal event for the expired bomb")
	}
}

func TestDetonateRCBombsReportsArmed(t *testing.T) {
	ship := newTestShip(t)
	gs := ship.Gadgets
	if gs.DetonateRCBombs() {
		t.Fatal("detonation reported with nothing armed")
	}
	gs.ToggleGadgetAt(GadgetRCBomb, ship.Points.Position[0], ship)
	if !gs.DetonateRCBombs() {
		t.Fatal("detonation not reported with an armed bomb")
	}
}

func TestAntiMatterBombPreImplosionPhase(t *testing.T) {
	params := NewParameters()
	ship := newTestShip(t)
	gs := ship.Gadgets
	gs.ToggleGadgetAt(GadgetAntiMatterBomb, ship.Points.Position[0], ship)
	g := gs.gadgets[0]
	if g.State != GadgetStateContained {
		t.Fatalf("fresh antimatter bomb state = %d, want contained", g.State)
	}

	gs.DetonateAntiMatterBombs()
	if g.State != GadgetStatePreImplosion {
		t.Fatalf("state after detonate = %d, want pre-implosion", g.State)
	}
	for i := 0; i < AntiMatterBombPreimplosionSteps-1; i++ {
		gs.Update(ship, params)
		if g.State != GadgetStatePreImplosion {
			t.Fatalf("pre-implosion ended early at step %d: state %d", i, g.State)
		}
	}
	gs.Update(ship, params)
	if g.State != GadgetStateExploding {
		t.Fatalf("state after pre-implosion = %d, want exploding", g.State)
	}
}

func TestPhysicsProbeSingleton(t *testing.T) {
	ship := newTestShip(t)
	gs := ship.Gadgets
	left := ship.Points.Position[0]
	var right vec2
	for i := 0; i < ship.Points.Count(); i++ {
		p := ship.Points.Position[i]
		if p.Sub(left).Len() > 10 {
			right = p
			break
		}
	}

	placed, ok := gs.TogglePhysicsProbeAt(left, ship)
	if !placed || !ok {
		t.Fatalf("first placement: placed=%v ok=%v", placed, ok)
	}

	// Toggling elsewhere moves the single probe instead of adding one.
	placed, ok = gs.TogglePhysicsProbeAt(right, ship)
	if !placed || !ok {
		t.Fatalf("move: placed=%v ok=%v", placed, ok)
	}
	probes := 0
	for _, v := range gs.VisualStates(ship.Points, nil) {
		if v.Kind == GadgetPhysicsProbe {
			probes++
		}
	}
	if probes != 1 {
		t.Fatalf("probe count after move = %d, want 1", probes)
	}

	// Toggling on the probe removes it.
	placed, ok = gs.TogglePhysicsProbeAt(right, ship)
	if placed || !ok {
		t.Fatalf("removal: placed=%v ok=%v", placed, ok)
	}
}

func TestTimerBombFastFuseOnDisturbance(t *testing.T) {
	ship := newTestShip(t)
	gs := ship.Gadgets
	nearPos := ship.Points.Position[pointAt(t, ship, vec2{0, 0})]
	farPos := ship.Points.Position[pointAt(t, ship, vec2{24, 0})]
	gs.ToggleGadgetAt(GadgetTimerBomb, nearPos, ship)
	gs.ToggleGadgetAt(GadgetTimerBomb, farPos, ship)
	near, far := gs.gadgets[0], gs.gadgets[1]
	if near.State != GadgetStateSlowFuse || far.State != GadgetStateSlowFuse {
		t.Fatalf("fresh timer bomb states = %d, %d, want slow fuse", near.State, far.State)
	}

	gs.OnSpringDestroyed(nearPos, ship.Points)
	if near.State != GadgetStateFastFuse {
		t.Fatalf("state after nearby breakage = %d, want fast fuse", near.State)
	}
	// The break is well outside the other bomb's neighbourhood.
	if far.State != GadgetStateSlowFuse {
		t.Fatalf("remote bomb state = %d, want slow fuse", far.State)
	}
}
