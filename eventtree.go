package sweepline

// eventNode is one key of the event tree: a coalesced point together with
// every segment incident on it.
type eventNode struct {
	point      Point
	incidences []Incidence
	bestPrio   int

	left, right, parent *eventNode
	height               int
}

// eventTree is an AVL tree of eventNodes ordered lexicographically by
// point, with a coalescing insert that glomms together any two points
// within tolerance of one another.
type eventTree struct {
	root *eventNode
	tol  float64
	size int
}

func newEventTree(tol float64) *eventTree {
	return &eventTree{tol: tol}
}

func nodeHeight(n *eventNode) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight(n *eventNode) {
	lh, rh := nodeHeight(n.left), nodeHeight(n.right)
	if lh > rh {
		n.height = lh + 1
	} else {
		n.height = rh + 1
	}
}

func balanceFactor(n *eventNode) int {
	return nodeHeight(n.left) - nodeHeight(n.right)
}

// swapChild replaces old with n as a child of old's parent, fixing up the
// root pointer when old had none.
func (t *eventTree) swapChild(old, n *eventNode) {
	p := old.parent
	if p == nil {
		t.root = n
	} else if p.left == old {
		p.left = n
	} else {
		p.right = n
	}
	if n != nil {
		n.parent = p
	}
}

func (t *eventTree) rotateLeft(n *eventNode) *eventNode {
	r := n.right
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	t.swapChild(n, r)
	r.left = n
	n.parent = r
	updateHeight(n)
	updateHeight(r)
	return r
}

func (t *eventTree) rotateRight(n *eventNode) *eventNode {
	l := n.left
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	t.swapChild(n, l)
	l.right = n
	n.parent = l
	updateHeight(n)
	updateHeight(l)
	return l
}

// rebalance walks from n up to the root, rotating any node whose balance
// factor has left the [-1,1] range.
func (t *eventTree) rebalance(n *eventNode) {
	for n != nil {
		updateHeight(n)
		bf := balanceFactor(n)
		switch {
		case bf > 1:
			if balanceFactor(n.left) < 0 {
				t.rotateLeft(n.left)
			}
			n = t.rotateRight(n)
		case bf < -1:
			if balanceFactor(n.right) > 0 {
				t.rotateRight(n.right)
			}
			n = t.rotateLeft(n)
		}
		n = n.parent
	}
}

// Prev returns n's topological predecessor in point order, or nil if n is
// the first node.
func (n *eventNode) Prev() *eventNode {
	if n.left != nil {
		m := n.left
		for m.right != nil {
			m = m.right
		}
		return m
	}
	for p := n.parent; p != nil; n, p = p, p.parent {
		if p.right == n {
			return p
		}
	}
	return nil
}

// Next returns n's topological successor in point order, or nil if n is
// the last node.
func (n *eventNode) Next() *eventNode {
	if n.right != nil {
		m := n.right
		for m.left != nil {
			m = m.left
		}
		return m
	}
	for p := n.parent; p != nil; n, p = p, p.parent {
		if p.left == n {
			return p
		}
	}
	return nil
}

func (t *eventTree) min() *eventNode {
	n := t.root
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// bstInsert places n into the tree by plain lexicographic point order,
// with no coalescing; callers establish n.point first.
func (t *eventTree) bstInsert(n *eventNode) {
	if t.root == nil {
		t.root = n
		t.size++
		return
	}
	cur := t.root
	for {
		if lessPoint(n.point, cur.point) {
			if cur.left == nil {
				cur.left = n
				n.parent = cur
				break
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				n.parent = cur
				break
			}
			cur = cur.right
		}
	}
	t.size++
	t.rebalance(n)
}

// remove deletes n from the tree. The two-children case swaps in the
// in-order successor before unlinking.
func (t *eventTree) remove(n *eventNode) {
	if n.left != nil && n.right != nil {
		succ := n.Next()
		n.point, succ.point = succ.point, n.point
		n.incidences, succ.incidences = succ.incidences, n.incidences
		n.bestPrio, succ.bestPrio = succ.bestPrio, n.bestPrio
		n = succ
	}
	child := n.left
	if child == nil {
		child = n.right
	}
	parent := n.parent
	t.swapChild(n, child)
	t.size--
	if parent != nil {
		t.rebalance(parent)
	}
}

// findNear returns the first existing node whose point lies within tol of
// p in both coordinates, by descending to p's insertion point and walking
// outward with Prev/Next while candidates remain in the x-band.
func (t *eventTree) findNear(p Point) *eventNode {
	if t.root == nil {
		return nil
	}
	cur := t.root
	var closest *eventNode
	for cur != nil {
		closest = cur
		if lessPoint(p, cur.point) {
			cur = cur.left
		} else if lessPoint(cur.point, p) {
			cur = cur.right
		} else {
			return cur
		}
	}
	for n := closest; n != nil && n.point.X >= p.X-t.tol; n = n.Prev() {
		if equalPoint(n.point, p, t.tol) {
			return n
		}
	}
	for n := closest; n != nil && n.point.X <= p.X+t.tol; n = n.Next() {
		if equalPoint(n.point, p, t.tol) {
			return n
		}
	}
	return nil
}

// priority ranks how strongly an incidence's natural point should pin the
// glommed node's canonical coordinate: a vertical segment's top endpoint
// pins hardest, then its bottom endpoint, then any other endpoint, then a
// discovered interior point pins weakest. Lower is stronger.
func priority(seg *Segment, role Role) int {
	switch {
	case seg.vertical() && role == Right:
		return 0
	case seg.vertical() && role == Left:
		return 1
	case role == Interior:
		return 3
	default:
		return 2
	}
}

// insert glomms p into the nearest existing event within tolerance, or
// creates a new event for it. It returns the canonical point the
// incidence ended up attached to, which may differ from p.
func (t *eventTree) insert(p Point, seg *Segment, role Role) Point {
	prio := priority(seg, role)
	inc := Incidence{Segment: seg.id, Role: role}

	if n := t.findNear(p); n != nil {
		n.incidences = append(n.incidences, inc)
		better := prio < n.bestPrio || (prio == n.bestPrio && lessPoint(p, n.point))
		if better {
			n.bestPrio = prio
			if !p.Equals(n.point) {
				moved := &eventNode{point: p, incidences: n.incidences, bestPrio: prio, height: 1}
				t.remove(n)
				t.bstInsert(moved)
				return p
			}
		}
		return n.point
	}

	n := &eventNode{point: p, incidences: []Incidence{inc}, bestPrio: prio, height: 1}
	t.bstInsert(n)
	return p
}

// popMin removes and returns the lexicographically first event, or false
// if the tree is empty.
func (t *eventTree) popMin() (eventNode, bool) {
	n := t.min()
	if n == nil {
		return eventNode{}, false
	}
	out := eventNode{point: n.point, incidences: n.incidences}
	t.remove(n)
	return out, true
}

func (t *eventTree) empty() bool {
	return t.root == nil
}
