//go:build !android

package game

// Sky, weather and wildlife sprite builders.

// SkyClearColor blends the clear-sky tone toward storm grey.
func SkyClearColor(storm *Storm) (r, g, b float32) {
	dr, dg, db := Palette.SkyDay.Floats()
	sr, sg, sb := Palette.SkyStorm.Floats()
	k := storm.RainDensity()
	return lerpF(dr, sr, k), lerpF(dg, sg, k), lerpF(db, sb, k)
}

// StarSprites packs the twinkle field as additive glow points.
func StarSprites(stars *Stars, buf []float32) []float32 {
	buf = buf[:0]
	r, g, b := Palette.Star.Floats()
	for _, st := range stars.Visuals() {
		k := st.Brightness
		buf = append(buf, st.X, st.Y, 1.5, r*k, g*k, b*k, 1.0)
	}
	return buf
}

// CloudSprites packs drifting clouds as large soft sprites.
func CloudSprites(clouds *Clouds, buf []float32) []float32 {
	buf = buf[:0]
	wr, wg, wb := Palette.Cloud.Floats()
	sr, sg, sb := Palette.CloudStorm.Floats()
	for _, cl := range clouds.Visuals() {
		r := lerpF(wr, sr, cl.Dark)
		g := lerpF(wg, sg, cl.Dark)
		b := lerpF(wb, sb, cl.Dark)
		buf = append(buf, cl.X, cl.Y, 120*cl.Scale, r, g, b, 0.8)
	}
	return buf
}

// RainVerts packs rain streaks over the visible area, density-scaled.
func RainVerts(storm *Storm, wind *Wind, cam Camera, fbW, fbH int, rng *Rand, buf []float32) []float32 {
	buf = buf[:0]
	density := storm.RainDensity()
	if density <= 0.01 {
		return buf
	}
	halfW := float32(fbW) / (2 * cam.Zoom)
	halfH := float32(fbH) / (2 * cam.Zoom)
	slant := wind.CurrentSpeed()[0] * (1000.0 / 3600.0) * 0.15
	n := int(density * 400)
	alpha := 0.35 * linearStep(0.01, 0.4, density)
	r, g, b := Palette.Spray.Floats()
	for i := 0; i < n; i++ {
		x := cam.X + rng.RangeF(-halfW, halfW)
		y := cam.Y + rng.RangeF(-halfH, halfH)
		buf = append(buf,
			x, y, r, g, b, alpha,
			x+slant, y-rng.RangeF(1.5, 3.5), r, g, b, alpha*0.3)
	}
	return buf
}

// FishSprites packs the shoals as small points below the surface.
func FishSprites(fishes *Fishes, buf []float32) []float32 {
	buf = buf[:0]
	r, g, b := Palette.Fish.Floats()
	for _, fi := range fishes.Visuals() {
		buf = append(buf, fi.Pos[0], fi.Pos[1], 0.5, r, g, b, 0.9)
	}
	return buf
}

// EphemeraSprites packs visual particles, color keyed by kind and fading
// over each particle's lifetime.
func EphemeraSprites(e *Ephemera, buf []float32) []float32 {
	buf = buf[:0]
	data := e.RenderData(nil)
	for i := 0; i+4 < len(data); i += 5 {
		x, y, size := data[i], data[i+1], data[i+2]
		kind := EphemeraKind(data[i+3])
		age := data[i+4]
		var col RGB
		alpha := 1.0 - age
		switch kind {
		case EphemeraAirBubble:
			col = Palette.Bubble
			alpha *= 0.6
		case EphemeraDebris:
			col = Palette.Debris
		case EphemeraSmoke:
			col = Palette.Smoke
			alpha *= 0.5
		case EphemeraSpray:
			col = Palette.Spray
			alpha *= 0.7
		}
		r, g, b := col.Floats()
		buf = append(buf, x, y, size, r, g, b, alpha)
	}
	return buf
}
