//go:build !android

package game

import "testing"

func TestApplyToolDestroyUsesConfiguredRadius(t *testing.T) {
	w := newTestWorld()
	ship := w.AddShip(DefaultShipDefinition(vec2{-13, 2}))
	session := NewGameSession()
	session.Tool = ToolDestroy

	// Aim one metre off a particle: a tight radius misses, a wide one hits.
	cursor := ship.Points.Position[0].Add(vec2{1.0, 0})

	w.Params().DestroyRadius = 0.5
	ApplyTool(w, session, cursor, true, true)
	if !ship.Points.IsActive[0] {
		t.Fatal("destroy reached past its configured radius")
	}

	w.Params().DestroyRadius = 1.5
	ApplyTool(w, session, cursor, true, true)
	if ship.Points.IsActive[0] {
		t.Fatal("destroy ignored the widened radius")
	}
}

func TestApplyToolHeatBlasterUsesConfiguredFlow(t *testing.T) {
	w := newTestWorld()
	ship := w.AddShip(DefaultShipDefinition(vec2{-13, 2}))
	session := NewGameSession()
	session.Tool = ToolHeatBlaster

	target := ship.Points.Position[0]
	before := ship.Points.Temperature[0]

	w.Params().HeatBlasterHeatFlow = 0
	ApplyTool(w, session, target, true, false)
	if got := ship.Points.Temperature[0]; got != before {
		t.Fatalf("zero-flow blaster changed temperature to %v", got)
	}

	w.Params().HeatBlasterHeatFlow = 2000
	ApplyTool(w, session, target, true, false)
	if got := ship.Points.Temperature[0]; got <= before {
		t.Fatalf("temperature %v did not rise under configured flow", got)
	}
}
