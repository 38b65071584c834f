package game

type Camera struct {
	X, Y float32 // world metres, camera centre
	Zoom float32 // screen pixels per world metre

	// Screen shake.
	ShakeX, ShakeY float32 // current offset in world metres
	ShakeTimer     float32 // remaining shake time
	ShakeIntensity float32 // max offset magnitude
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float32) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float32, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	// Decaying intensity.
	t := c.ShakeTimer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// EffectivePos returns camera position with shake applied.
func (c *Camera) EffectivePos() (float32, float32) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}

// Clamp keeps the view inside the world; vertically the view may reach
// from well below the sea floor to the top of the sky.
func (c *Camera) Clamp(fbW, fbH int) {
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}

	halfW := float32(fbW) / (2.0 * c.Zoom)
	halfH := float32(fbH) / (2.0 * c.Zoom)

	minX := float32(-HalfWorldWidth) + halfW
	maxX := float32(HalfWorldWidth) - halfW
	minY := float32(-MaxWorldHeight/2) + halfH
	maxY := float32(MaxWorldHeight/2) - halfH

	if minX > maxX {
		c.X = 0
	} else {
		if c.X < minX {
			c.X = minX
		}
		if c.X > maxX {
			c.X = maxX
		}
	}

	if minY > maxY {
		c.Y = 0
	} else {
		if c.Y < minY {
			c.Y = minY
		}
		if c.Y > maxY {
			c.Y = maxY
		}
	}
}
