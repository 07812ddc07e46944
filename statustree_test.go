package sweepline

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestStatusTreeOrdersByHeight(t *testing.T) {
	st := newStatusTree(1e-6)
	top := NewSegment(Point{0, 10}, Point{10, 10})
	mid := NewSegment(Point{0, 5}, Point{10, 5})
	bot := NewSegment(Point{0, 0}, Point{10, 0})
	top.id, mid.id, bot.id = 1, 2, 3

	st.insert(&mid, 5)
	st.insert(&bot, 5)
	st.insert(&top, 5)

	test.T(t, st.above(&mid).id, top.id)
	test.T(t, st.below(&mid).id, bot.id)
	test.That(t, st.above(&top) == nil)
	test.That(t, st.below(&bot) == nil)
}

func TestStatusTreeRemove(t *testing.T) {
	st := newStatusTree(1e-6)
	a := NewSegment(Point{0, 0}, Point{10, 0})
	b := NewSegment(Point{0, 5}, Point{10, 5})
	a.id, b.id = 1, 2

	st.insert(&a, 5)
	st.insert(&b, 5)
	st.remove(&a)

	test.That(t, st.above(&b) == nil)
	test.That(t, st.below(&b) == nil)
}

func TestStatusTreeSwapRange(t *testing.T) {
	st := newStatusTree(1e-6)
	a := NewSegment(Point{0, 0}, Point{10, 0})
	b := NewSegment(Point{0, 5}, Point{10, 5})
	c := NewSegment(Point{0, 10}, Point{10, 10})
	a.id, b.id, c.id = 1, 2, 3

	st.insert(&a, 5)
	st.insert(&b, 5)
	st.insert(&c, 5)

	ordered := st.sortByRank([]*Segment{&a, &b, &c})
	test.T(t, ordered[0].id, c.id)
	test.T(t, ordered[2].id, a.id)

	st.swapRange(ordered)
	test.T(t, st.above(&b).id, a.id)
	test.T(t, st.below(&b).id, c.id)
}
