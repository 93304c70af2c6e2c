package render

import "testing"

func TestCoverageStartsUnpainted(t *testing.T) {
	c := NewCoverage(Width, Height)
	if c.Full() {
		t.Fatal("fresh coverage reports full")
	}
	for x := 0; x < Width; x++ {
		if got := c.Column(x); got != (Interval{L: 0, R: Height}) {
			t.Fatalf("column %d = %v, want [0, %d)", x, got, Height)
		}
	}
}

func TestCoverageFullAfterEveryColumnEmptied(t *testing.T) {
	c := NewCoverage(Width, Height)
	for x := 0; x < Width; x++ {
		if c.Full() {
			t.Fatalf("full before column %d emptied", x)
		}
		c.Intersect(x, Interval{})
	}
	if !c.Full() {
		t.Fatal("not full after every column emptied")
	}
	c.Reset()
	if c.Full() {
		t.Fatal("full after reset")
	}
}

func TestCoverageMonotonic(t *testing.T) {
	c := NewCoverage(Width, Height)
	spans := []Interval{
		{L: 0, R: 150},
		{L: 20, R: 300},
		{L: 50, R: 60},
		{L: 55, R: 100},
		{},
	}
	prev := c.Column(7)
	for _, s := range spans {
		c.Intersect(7, s)
		got := c.Column(7)
		// Each remaining interval is a subset of its prior value.
		if got.Intersect(prev) != got {
			t.Fatalf("column grew: %v not a subset of %v", got, prev)
		}
		prev = got
	}
	if !c.Column(7).Empty() {
		t.Error("column not empty after intersecting with empty interval")
	}
}

func TestCoverageEmptiedCountedOnce(t *testing.T) {
	c := NewCoverage(4, 16)
	c.Intersect(0, Interval{})
	c.Intersect(0, Interval{})
	c.Intersect(0, Interval{L: 3, R: 5})
	if c.Full() {
		t.Fatal("full after emptying a single column repeatedly")
	}
	for x := 1; x < 4; x++ {
		c.Intersect(x, Interval{})
	}
	if !c.Full() {
		t.Fatal("not full after emptying all columns")
	}
}
