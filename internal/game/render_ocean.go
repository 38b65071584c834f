//go:build !android

package game

// Ocean and floor strip builders. The surface renders as three parallax
// bands: a damped back band, a mid band, and the full-height front band,
// each a triangle strip from the wave line down to the bottom of view.

// oceanBandVerts builds one band: per sample a top vertex on the damped
// wave line and a bottom vertex at floorY. shift offsets the height lookup
// by whole samples so stacked bands do not crest in lockstep.
func oceanBandVerts(samples []float32, shift int, damp, floorY, alpha float32, top, bottom RGB, buf []float32) []float32 {
	tr, tg, tb := top.Floats()
	br, bg, bb := bottom.Floats()
	for i := 0; i+1 < len(samples); i += 2 {
		x := samples[i]
		j := i + 2*shift
		if j+1 >= len(samples) {
			j = len(samples) - 2
		}
		h := samples[j+1] * damp
		buf = append(buf,
			x, h, tr, tg, tb, alpha,
			x, floorY, br, bg, bb, alpha)
	}
	return buf
}

// OceanStripVerts packs the three surface bands for the visible range.
// samplesBuf is scratch reused between frames.
func OceanStripVerts(o *OceanSurface, startX, endX, floorY float32, samplesBuf, buf []float32) ([]float32, []float32) {
	buf = buf[:0]
	samplesBuf = o.UploadRenderSamples(startX, endX, samplesBuf)
	if len(samplesBuf) == 0 {
		return samplesBuf, buf
	}

	// Back and mid bands are split from the front by degenerate joints so
	// a single strip draw covers all three.
	bands := [3]struct {
		shift int
		damp  float32
		alpha float32
		top   RGB
	}{
		{2 * DetailXOffsetSamples, BackPlaneDamp, 1.0, Palette.OceanBack},
		{DetailXOffsetSamples, MidPlaneDamp, 0.85, Palette.OceanTop},
		{0, 1.0, 0.8, Palette.OceanTop},
	}
	for bi, band := range bands {
		start := len(buf)
		buf = oceanBandVerts(samplesBuf, band.shift, band.damp, floorY, band.alpha, band.top, Palette.OceanDeep, buf)
		if bi < len(bands)-1 && len(buf) > start {
			// Degenerate bridge to the next band.
			last := buf[len(buf)-6 : len(buf)]
			buf = append(buf, last...)
			buf = append(buf, samplesBuf[0], samplesBuf[1]*bands[bi+1].damp, 0, 0, 0, 0)
		}
	}
	return samplesBuf, buf
}

// FloorStripVerts packs the sea floor band from the bathymetry line down
// to the bottom of the view.
func FloorStripVerts(floor *OceanFloor, startX, endX, bottomY float32, buf []float32) []float32 {
	buf = buf[:0]
	fr, fg, fb := Palette.Floor.Floats()
	dr, dg, db := Palette.OceanDeep.Floats()

	const slices = RenderSlices
	dx := (endX - startX) / float32(slices)
	for s := 0; s <= slices; s++ {
		x := startX + float32(s)*dx
		h := floor.GetHeightAt(x)
		buf = append(buf,
			x, h, fr, fg, fb, 1.0,
			x, bottomY, dr, dg, db, 1.0)
	}
	return buf
}
