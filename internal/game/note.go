package game

import "math"

// Note silhouette proportions, relative to the configured size. The shape is
// a rectangular body with a triangular tip; its bounding rectangle is what the
// judgment pass tests against the target radii.
const (
	BodyWidth  = 0.2
	BodyHeight = 0.6
	TipRadius  = 0.3
)

// Note is a live, moving occurrence of a note event. Every judgment field is
// present from construction with its zero value; the judge engine is the only
// component that transitions them.
type Note struct {
	ID        uint64
	Direction Direction
	X         float64 // position along the travel axis
	Z         float64 // lateral offset, fixed at spawn
	Size      float64
	Expired   bool

	// Judgment state, owned by the judge engine.
	Pending     float64 // recomputed every frame until locked
	Locked      bool
	LockedValue float64
	Eligible    bool
	Revoked     bool // displaced by a nearer note, permanently unjudgable
	MarkedMiss  bool
	Finalized   bool
	HoldChecked bool // locked during the current hold cycle
}

// Advance moves the note along the travel axis, clamped at stopX. Once the
// note reaches stopX it is expired and becomes a removal candidate.
func (n *Note) Advance(distance, stopX float64) {
	if n.Expired {
		return
	}
	n.X += distance
	if n.X >= stopX {
		n.X = stopX
		n.Expired = true
	}
}

// Rect returns the axis-aligned bounding rectangle of the note in the
// travel/lateral plane. The extents swap for horizontal directions, matching
// a quarter-turn of the silhouette.
func (n *Note) Rect() (minX, minZ, maxX, maxZ float64) {
	w := BodyWidth * n.Size
	h := (BodyHeight + TipRadius*math.Cos(math.Pi/6)) * n.Size
	if n.Direction.Horizontal() {
		w, h = h, w
	}
	return n.X - w/2, n.Z - h/2, n.X + w/2, n.Z + h/2
}

// Corners returns the four corners of the bounding rectangle.
func (n *Note) Corners() [4][2]float64 {
	minX, minZ, maxX, maxZ := n.Rect()
	return [4][2]float64{
		{minX, minZ},
		{maxX, minZ},
		{maxX, maxZ},
		{minX, maxZ},
	}
}
