package game

// RectF is an axis-aligned rectangle in world space.
type RectF struct {
	X0, Y0 float32
	X1, Y1 float32
}

func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

func (r RectF) Contains(o RectF) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

func (r RectF) ContainsPoint(p vec2) bool {
	return p[0] >= r.X0 && p[0] < r.X1 && p[1] >= r.Y0 && p[1] < r.Y1
}

type quadItem struct {
	point  int32
	pos    vec2
}

// QuadNode is a simple quadtree over ship particles, rebuilt on demand to
// accelerate region queries from the interaction tools.
type QuadNode struct {
	bounds RectF
	depth  int
	items  []quadItem
	child  [4]*QuadNode
}

func NewQuadNode(bounds RectF, depth int) *QuadNode {
	return &QuadNode{
		bounds: bounds,
		depth:  depth,
		items:  make([]quadItem, 0, QuadCapacity),
	}
}

func (n *QuadNode) Insert(point int32, pos vec2) {
	if n.child[0] != nil {
		if c := n.childThatContains(pos); c != nil {
			c.Insert(point, pos)
			return
		}
	}

	n.items = append(n.items, quadItem{point: point, pos: pos})

	if len(n.items) > QuadCapacity && n.depth < QuadMaxDepth {
		n.subdivide()
		kept := n.items[:0]
		for _, it := range n.items {
			if c := n.childThatContains(it.pos); c != nil {
				c.Insert(it.point, it.pos)
			} else {
				kept = append(kept, it)
			}
		}
		n.items = kept
	}
}

// Query appends every point inside r to out.
func (n *QuadNode) Query(r RectF, out *[]int32) {
	if !n.bounds.Intersects(r) {
		return
	}
	for _, it := range n.items {
		if r.ContainsPoint(it.pos) {
			*out = append(*out, it.point)
		}
	}
	if n.child[0] == nil {
		return
	}
	for i := 0; i < 4; i++ {
		n.child[i].Query(r, out)
	}
}

func (n *QuadNode) subdivide() {
	if n.child[0] != nil {
		return
	}
	mx := (n.bounds.X0 + n.bounds.X1) * 0.5
	my := (n.bounds.Y0 + n.bounds.Y1) * 0.5
	n.child[0] = NewQuadNode(RectF{X0: n.bounds.X0, Y0: n.bounds.Y0, X1: mx, Y1: my}, n.depth+1)
	n.child[1] = NewQuadNode(RectF{X0: mx, Y0: n.bounds.Y0, X1: n.bounds.X1, Y1: my}, n.depth+1)
	n.child[2] = NewQuadNode(RectF{X0: n.bounds.X0, Y0: my, X1: mx, Y1: n.bounds.Y1}, n.depth+1)
	n.child[3] = NewQuadNode(RectF{X0: mx, Y0: my, X1: n.bounds.X1, Y1: n.bounds.Y1}, n.depth+1)
}

func (n *QuadNode) childThatContains(p vec2) *QuadNode {
	for i := 0; i < 4; i++ {
		c := n.child[i]
		if c != nil && c.bounds.ContainsPoint(p) {
			return c
		}
	}
	return nil
}
