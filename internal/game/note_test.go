package game

import (
	"math"
	"testing"
)

func TestAdvanceClampsAtStop(t *testing.T) {
	n := &Note{X: 3.5, Size: 0.8}
	n.Advance(0.4, 4.0)
	if n.X != 4.0 {
		t.Fatalf("expected clamp at 4.0, got %v", n.X)
	}
	if !n.Expired {
		t.Fatal("expected note expired at the stop coordinate")
	}

	// Expired notes stay put.
	n.Advance(1.0, 4.0)
	if n.X != 4.0 {
		t.Fatalf("expired note moved to %v", n.X)
	}
}

func TestAdvanceBeforeStop(t *testing.T) {
	n := &Note{X: -3, Size: 0.8}
	n.Advance(0.2, 4.0)
	if n.X != -2.8 || n.Expired {
		t.Fatalf("expected -2.8 unexpired, got %v expired=%v", n.X, n.Expired)
	}
}

func TestRectSwapsForHorizontalDirections(t *testing.T) {
	up := &Note{Direction: Up, Size: 1}
	left := &Note{Direction: Left, Size: 1}

	uMinX, uMinZ, uMaxX, uMaxZ := up.Rect()
	lMinX, lMinZ, lMaxX, lMaxZ := left.Rect()

	uw, uh := uMaxX-uMinX, uMaxZ-uMinZ
	lw, lh := lMaxX-lMinX, lMaxZ-lMinZ

	if math.Abs(uw-lh) > 1e-9 || math.Abs(uh-lw) > 1e-9 {
		t.Log("up  ", uw, uh)
		t.Log("left", lw, lh)
		t.Fail()
	}
	if uw >= uh {
		t.Fatalf("vertical note should be taller than wide, got %v x %v", uw, uh)
	}
}

func TestCornersCentered(t *testing.T) {
	n := &Note{Direction: Down, X: 2, Z: 8, Size: 0.8}
	for _, c := range n.Corners() {
		if c[0] == 2 || c[1] == 8 {
			t.Fatalf("corner on center axis: %v", c)
		}
	}
	minX, _, maxX, _ := n.Rect()
	if math.Abs((minX+maxX)/2-2) > 1e-9 {
		t.Fatal("rect not centered on the note position")
	}
}

func TestParseDirection(t *testing.T) {
	for s, expected := range map[string]Direction{
		"up": Up, "Up": Up, "DOWN": Down, "left": Left, "RiGhT": Right,
	} {
		d, err := ParseDirection(s)
		if nil != err || d != expected {
			t.Log("input", s, "got", d, err)
			t.Fail()
		}
	}
	if _, err := ParseDirection("sideways"); nil == err {
		t.Fatal("expected error for unknown direction")
	}
}
