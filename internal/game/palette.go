package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Floats expands to normalized components for vertex buffers.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	SkyDay      RGB
	SkyStorm    RGB
	OceanTop    RGB
	OceanDeep   RGB
	OceanBack   RGB
	Floor       RGB
	Cloud       RGB
	CloudStorm  RGB
	Star        RGB
	Fish        RGB
	Hull        RGB
	Wood        RGB
	Glass       RGB
	Rubber      RGB
	Cable       RGB
	LampOn      RGB
	LampOff     RGB
	Rust        RGB
	Bubble      RGB
	Debris      RGB
	Smoke       RGB
	Spray       RGB
	Spark       RGB
	Glow        RGB
	FireHot     RGB
	FireMid     RGB
	FireCool    RGB
	BombCasing  RGB
	BombArmed   RGB
	ProbeMarker RGB
}{
	SkyDay:      RGB{R: 134, G: 180, B: 218},
	SkyStorm:    RGB{R: 84, G: 96, B: 110},
	OceanTop:    RGB{R: 40, G: 110, B: 150},
	OceanDeep:   RGB{R: 8, G: 28, B: 52},
	OceanBack:   RGB{R: 28, G: 84, B: 120},
	Floor:       RGB{R: 96, G: 86, B: 64},
	Cloud:       RGB{R: 235, G: 238, B: 242},
	CloudStorm:  RGB{R: 120, G: 124, B: 132},
	Star:        RGB{R: 255, G: 250, B: 230},
	Fish:        RGB{R: 196, G: 164, B: 84},
	Hull:        RGB{R: 112, G: 116, B: 124},
	Wood:        RGB{R: 150, G: 112, B: 70},
	Glass:       RGB{R: 170, G: 210, B: 228},
	Rubber:      RGB{R: 48, G: 48, B: 52},
	Cable:       RGB{R: 180, G: 130, B: 40},
	LampOn:      RGB{R: 255, G: 232, B: 150},
	LampOff:     RGB{R: 110, G: 104, B: 84},
	Rust:        RGB{R: 128, G: 76, B: 48},
	Bubble:      RGB{R: 210, G: 230, B: 245},
	Debris:      RGB{R: 120, G: 104, B: 88},
	Smoke:       RGB{R: 120, G: 120, B: 125},
	Spray:       RGB{R: 225, G: 238, B: 248},
	Spark:       RGB{R: 160, G: 220, B: 255},
	Glow:        RGB{R: 255, G: 200, B: 90},
	FireHot:     RGB{R: 255, G: 210, B: 110},
	FireMid:     RGB{R: 255, G: 150, B: 70},
	FireCool:    RGB{R: 190, G: 70, B: 45},
	BombCasing:  RGB{R: 70, G: 74, B: 80},
	BombArmed:   RGB{R: 235, G: 60, B: 50},
	ProbeMarker: RGB{R: 90, G: 235, B: 140},
}
