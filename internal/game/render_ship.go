//go:build !android

package game

// Render buffer builders for one ship. All of them append into caller
// supplied slices so the frame loop can reuse allocations.

// TriangleVerts packs the hull faces as filled triangles.
// Vertex colors blend the material tone with flood water, lamp light,
// fire and rot so the hull state reads directly off the render.
func (s *Ship) TriangleVerts(buf []float32) []float32 {
	buf = buf[:0]
	tris := s.Triangles
	for t := 0; t < tris.Count(); t++ {
		if tris.Deleted[t] {
			continue
		}
		for _, p := range [3]int32{tris.PointA[t], tris.PointB[t], tris.PointC[t]} {
			buf = s.appendPointVertex(buf, p)
		}
	}
	return buf
}

// SpringVerts packs the surviving springs as line segments. Springs
// covered by triangles are skipped; only the exposed lattice shows.
func (s *Ship) SpringVerts(buf []float32) []float32 {
	buf = buf[:0]
	springs := s.Springs
	for i := 0; i < springs.Count(); i++ {
		if springs.Deleted[i] {
			continue
		}
		covered := false
		for _, t := range springs.CoveringTriangles[i] {
			if !s.Triangles.Deleted[t] {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		buf = s.appendPointVertex(buf, springs.PointA[i])
		buf = s.appendPointVertex(buf, springs.PointB[i])
	}
	return buf
}

// LoosePointSprites packs active particles with no surviving face, so
// debris and frayed edges stay visible.
func (s *Ship) LoosePointSprites(buf []float32) []float32 {
	buf = buf[:0]
	points := s.Points
	for i := 0; i < points.Count(); i++ {
		if !points.IsActive[i] {
			continue
		}
		hasFace := false
		for _, t := range points.ConnectedTriangles[i] {
			if !s.Triangles.Deleted[t] {
				hasFace = true
				break
			}
		}
		if hasFace {
			continue
		}
		r, g, b := points.Material[i].RenderColor[0], points.Material[i].RenderColor[1], points.Material[i].RenderColor[2]
		buf = append(buf, points.Position[i][0], points.Position[i][1], 0.3, r, g, b, 1.0)
	}
	return buf
}

func (s *Ship) appendPointVertex(buf []float32, p int32) []float32 {
	points := s.Points
	col := points.Material[p].RenderColor
	r, g, b := col[0], col[1], col[2]

	// Rot pulls toward rust brown.
	decay := points.Decay[p]
	if decay < 1.0 {
		rr, rg, rb := Palette.Rust.Floats()
		k := 1.0 - decay
		r += (rr - r) * k
		g += (rg - g) * k
		b += (rb - b) * k
	}

	// Flood water tints toward deep blue.
	if w := minF(points.Water[p], 1.0); w > 0 {
		wr, wg, wb := Palette.OceanDeep.Floats()
		k := w * 0.7
		r += (wr - r) * k
		g += (wg - g) * k
		b += (wb - b) * k
	}

	// Fire overrides with a temperature ramp.
	if points.Combustion[p] == CombustionStateBurning || points.Combustion[p] == CombustionStateDeveloping {
		fr, fg, fb := Palette.FireMid.Floats()
		k := 0.4 + 0.6*minF(points.CombustionProgress[p], 1.0)
		r += (fr - r) * k
		g += (fg - g) * k
		b += (fb - b) * k
	}

	// Lamp light lifts toward warm white.
	if l := points.Light[p]; l > 0 {
		lr, lg, lb := Palette.LampOn.Floats()
		r += (lr - r) * l * 0.6
		g += (lg - g) * l * 0.6
		b += (lb - b) * l * 0.6
	}

	// Rotted structure thins out visually.
	a := 0.55 + 0.45*decay

	return append(buf, points.Position[p][0], points.Position[p][1], r, g, b, a)
}

// FireGlowSprites packs additive glow sprites over burning particles.
func (s *Ship) FireGlowSprites(buf []float32) []float32 {
	buf = buf[:0]
	points := s.Points
	for i := 0; i < points.Count(); i++ {
		if points.Combustion[i] != CombustionStateBurning &&
			points.Combustion[i] != CombustionStateDeveloping {
			continue
		}
		k := 0.3 + 0.7*minF(points.CombustionProgress[i], 1.0)
		r, g, b := Palette.FireHot.Floats()
		buf = append(buf,
			points.Position[i][0], points.Position[i][1], 2.0+2.0*k,
			r*k, g*k*0.8, b*k*0.4, 1.0)
	}
	return buf
}

// LampGlowSprites packs additive halos for powered lamps.
func (s *Ship) LampGlowSprites(buf []float32) []float32 {
	buf = buf[:0]
	elec := s.Electrical
	for i := 0; i < elec.Count(); i++ {
		if elec.Material[i].Kind != ElectricalLamp || elec.Intensity[i] <= 0.01 {
			continue
		}
		host := elec.HostPoint[i]
		k := elec.Intensity[i]
		r, g, b := Palette.LampOn.Floats()
		buf = append(buf,
			s.Points.Position[host][0], s.Points.Position[host][1],
			elec.Material[i].LightSpread*1.5,
			r*k*0.5, g*k*0.5, b*k*0.35, 1.0)
	}
	return buf
}

// SparkVerts packs the live arc segments as lines.
func (s *Ship) SparkVerts(buf []float32) []float32 {
	buf = buf[:0]
	r, g, b := Palette.Spark.Floats()
	for _, seg := range s.Sparks.Segments {
		a := seg.Size
		buf = append(buf,
			seg.Start[0], seg.Start[1], r, g, b, a,
			seg.End[0], seg.End[1], r, g, b, a)
	}
	return buf
}

// GadgetSprites packs gadget markers; armed bombs pulse red, the probe
// stays green, exploding gadgets fade out.
func (s *Ship) GadgetSprites(visuals []GadgetVisual, flashPhase float32, buf []float32) []float32 {
	buf = buf[:0]
	for _, v := range visuals {
		var col RGB
		size := float32(0.8)
		switch v.Kind {
		case GadgetPhysicsProbe:
			col = Palette.ProbeMarker
			size = 0.6
		default:
			col = Palette.BombCasing
			if flashPhase > 0.5 {
				col = Palette.BombArmed
			}
		}
		r, g, b := col.Floats()
		buf = append(buf, v.Position[0], v.Position[1], size, r, g, b, v.Fade)
	}
	return buf
}
