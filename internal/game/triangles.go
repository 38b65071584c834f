package game

// Triangles is the structural face container of one ship. Faces are used
// for hull detection (a point covered by no triangle is exposed to water)
// and by the repair tool, which restores deleted faces near the cursor.
type Triangles struct {
	PointA []int32
	PointB []int32
	PointC []int32

	Deleted []bool
}

func NewTriangles(capacity int) *Triangles {
	t := &Triangles{}
	t.PointA = make([]int32, 0, capacity)
	t.PointB = make([]int32, 0, capacity)
	t.PointC = make([]int32, 0, capacity)
	t.Deleted = make([]bool, 0, capacity)
	return t
}

func (t *Triangles) Count() int { return len(t.PointA) }

func (t *Triangles) Add(points *Points, a, b, c int32) int32 {
	idx := int32(len(t.PointA))
	t.PointA = append(t.PointA, a)
	t.PointB = append(t.PointB, b)
	t.PointC = append(t.PointC, c)
	t.Deleted = append(t.Deleted, false)
	points.ConnectTriangle(a, idx)
	points.ConnectTriangle(b, idx)
	points.ConnectTriangle(c, idx)
	return idx
}

// Delete removes a face (destruction); endpoints keep their indices.
func (t *Triangles) Delete(tri int32, points *Points) {
	if t.Deleted[tri] {
		return
	}
	t.Deleted[tri] = true
	points.DisconnectTriangle(t.PointA[tri], tri)
	points.DisconnectTriangle(t.PointB[tri], tri)
	points.DisconnectTriangle(t.PointC[tri], tri)
}

// Restore re-adds a deleted face (repair tool).
func (t *Triangles) Restore(tri int32, points *Points) {
	if !t.Deleted[tri] {
		return
	}
	t.Deleted[tri] = false
	points.ConnectTriangle(t.PointA[tri], tri)
	points.ConnectTriangle(t.PointB[tri], tri)
	points.ConnectTriangle(t.PointC[tri], tri)
}

// Area returns the signed area of the face at the points' current positions.
func (t *Triangles) Area(tri int32, points *Points) float32 {
	pa := points.Position[t.PointA[tri]]
	pb := points.Position[t.PointB[tri]]
	pc := points.Position[t.PointC[tri]]
	return 0.5 * ((pb[0]-pa[0])*(pc[1]-pa[1]) - (pc[0]-pa[0])*(pb[1]-pa[1]))
}
