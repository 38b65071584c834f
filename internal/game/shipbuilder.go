package game

// ShipDefinition is a programmatic ship description: a structural grid of
// material cells, one rune per particle. Row 0 is the top of the ship.
//
//	'H' hull iron   'I' iron       'W' wood   'G' glass   'R' rubber
//	'L' lamp        'P' generator  'E' engine 'C' cable   '.'/' ' empty
type ShipDefinition struct {
	Name string
	Grid []string
	// World position of the grid's bottom-left particle.
	Origin vec2
	// Metres between neighbouring particles.
	CellSize float32
}

// BuildShip instantiates points, springs, triangles, and electrical
// elements from a definition. Springs connect every cell to its E, SE, S
// and SW neighbours, giving the lattice shear stiffness without duplicate
// connections.
func BuildShip(def ShipDefinition, id int, params *Parameters, eb *EventBus, rng *Rand) *Ship {
	rows := len(def.Grid)
	cell := def.CellSize
	if cell <= 0 {
		cell = 1.0
	}

	// First pass: particles.
	cellPoint := make([][]int32, rows)
	capacityGuess := 0
	for _, row := range def.Grid {
		capacityGuess += len(row)
	}
	points := NewPoints(capacityGuess)
	springs := NewSprings(capacityGuess * 4)
	triangles := NewTriangles(capacityGuess * 2)
	elec := NewElectricalElements()

	for r := 0; r < rows; r++ {
		row := []rune(def.Grid[r])
		cellPoint[r] = make([]int32, len(row))
		for c := range row {
			cellPoint[r][c] = NoneIndex
			mat := materialForRune(row[c])
			if mat == nil {
				continue
			}
			pos := def.Origin.Add(vec2{
				float32(c) * cell,
				float32(rows-1-r) * cell,
			})
			idx := points.Add(pos, mat, params.BuoyancyAdjustment)
			cellPoint[r][c] = idx
			if em := electricalForRune(row[c]); em != nil {
				elec.Add(idx, em)
			}
		}
	}

	// Second pass: springs toward forward directions only, so each
	// neighbour pair is added exactly once.
	at := func(r, c int) int32 {
		if r < 0 || r >= rows || c < 0 || c >= len(cellPoint[r]) {
			return NoneIndex
		}
		return cellPoint[r][c]
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < len(cellPoint[r]); c++ {
			p := cellPoint[r][c]
			if p == NoneIndex {
				continue
			}
			for _, d := range [4][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}} {
				q := at(r+d[0], c+d[1])
				if q != NoneIndex {
					springs.Add(points, p, q)
				}
			}
		}
	}

	// Third pass: triangles on each 2x2 quad.
	for r := 0; r+1 < rows; r++ {
		width := len(cellPoint[r])
		if len(cellPoint[r+1]) > width {
			width = len(cellPoint[r+1])
		}
		for c := 0; c+1 < width; c++ {
			tl := at(r, c)
			tr := at(r, c+1)
			bl := at(r+1, c)
			br := at(r+1, c+1)
			switch {
			case tl != NoneIndex && tr != NoneIndex && bl != NoneIndex && br != NoneIndex:
				triangles.Add(points, tl, tr, bl)
				triangles.Add(points, tr, br, bl)
			case tl != NoneIndex && tr != NoneIndex && bl != NoneIndex:
				triangles.Add(points, tl, tr, bl)
			case tl != NoneIndex && tr != NoneIndex && br != NoneIndex:
				triangles.Add(points, tl, tr, br)
			case tl != NoneIndex && bl != NoneIndex && br != NoneIndex:
				triangles.Add(points, tl, br, bl)
			case tr != NoneIndex && bl != NoneIndex && br != NoneIndex:
				triangles.Add(points, tr, br, bl)
			}
		}
	}

	ship := NewShip(id, points, springs, triangles, elec, params, eb, rng)
	ship.Name = def.Name
	return ship
}

// DefaultShipDefinition is a small iron-hulled steamer with a wooden deck
// cabin, a generator, lamps, and an engine. Handy for the demo and tests.
func DefaultShipDefinition(origin vec2) ShipDefinition {
	return ShipDefinition{
		Name: "S.S. Gopher",
		Grid: []string{
			"....WWLWW....",
			"....WWCWW....",
			"HHHHHHCHHHHHH",
			"HIICCCCCCCIIH",
			"HIIPCIIIICLIH",
			"HIIICIIIICEIH",
			"HHHHHHHHHHHHH",
		},
		Origin:   origin,
		CellSize: 2.0,
	}
}
