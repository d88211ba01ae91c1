package partition

import (
	"testing"

	"github.com/earthmesh/cubedsphere/internal/direction"
)

func mustLayout(t *testing.T, rows, cols int) Layout {
	t.Helper()
	l, err := NewLayout(rows, cols)
	if err != nil {
		t.Fatalf("NewLayout(%d, %d): %v", rows, cols, err)
	}
	return l
}

func newSphere(t *testing.T, rows, cols int) CubedSpherePartitioner {
	t.Helper()
	return NewCubedSpherePartitioner(NewTilePartitioner(mustLayout(t, rows, cols)))
}

func TestBoundary1x1West(t *testing.T) {
	c := newSphere(t, 1, 1)

	rec, ok, err := c.Boundary(direction.West, 0)
	if err != nil || !ok {
		t.Fatalf("Boundary(WEST, 0) = %v, %v, %v", rec, ok, err)
	}
	if rec.ToRank != 4 || rec.NClockwiseRotations != 1 {
		t.Errorf("Boundary(WEST, 0) = to_rank=%d rot=%d, want to_rank=4 rot=1", rec.ToRank, rec.NClockwiseRotations)
	}

	rec, ok, err = c.Boundary(direction.West, 1)
	if err != nil || !ok {
		t.Fatalf("Boundary(WEST, 1) = %v, %v, %v", rec, ok, err)
	}
	if rec.ToRank != 0 || rec.NClockwiseRotations != 0 {
		t.Errorf("Boundary(WEST, 1) = to_rank=%d rot=%d, want to_rank=0 rot=0", rec.ToRank, rec.NClockwiseRotations)
	}
}

func TestBoundary2x2NorthwestCorner(t *testing.T) {
	c := newSphere(t, 2, 2)

	_, ok, err := c.Boundary(direction.Northwest, 2)
	if err != nil {
		t.Fatalf("Boundary(NORTHWEST, 2): %v", err)
	}
	if ok {
		t.Error("Boundary(NORTHWEST, 2) should be absent")
	}

	rec, ok, err := c.Boundary(direction.Northwest, 0)
	if err != nil || !ok {
		t.Fatalf("Boundary(NORTHWEST, 0) = %v, %v, %v", rec, ok, err)
	}
	if rec.ToRank != 18 || rec.NClockwiseRotations != 1 {
		t.Errorf("Boundary(NORTHWEST, 0) = to_rank=%d rot=%d, want to_rank=18 rot=1", rec.ToRank, rec.NClockwiseRotations)
	}
}

// TestBoundary1x1FullFaceGraph replays every rank across every cardinal
// direction at layout=(1,1), where tile and rank coincide and the result
// is exactly the face adjacency graph itself.
func TestBoundary1x1FullFaceGraph(t *testing.T) {
	c := newSphere(t, 1, 1)

	tests := []struct {
		d       direction.Direction
		rank    int
		wantTo  int
		wantRot int
	}{
		{direction.West, 0, 4, 1}, {direction.West, 1, 0, 0}, {direction.West, 2, 0, 1},
		{direction.West, 3, 2, 0}, {direction.West, 4, 2, 1}, {direction.West, 5, 4, 0},

		{direction.North, 0, 2, 3}, {direction.North, 1, 2, 0}, {direction.North, 2, 4, 3},
		{direction.North, 3, 4, 0}, {direction.North, 4, 0, 3}, {direction.North, 5, 0, 0},

		{direction.South, 0, 5, 0}, {direction.South, 1, 5, 3}, {direction.South, 2, 1, 0},
		{direction.South, 3, 1, 3}, {direction.South, 4, 3, 0}, {direction.South, 5, 3, 3},

		{direction.East, 0, 1, 0}, {direction.East, 1, 3, 1}, {direction.East, 2, 3, 0},
		{direction.East, 3, 5, 1}, {direction.East, 4, 5, 0}, {direction.East, 5, 1, 1},
	}
	for _, tt := range tests {
		rec, ok, err := c.Boundary(tt.d, tt.rank)
		if err != nil || !ok {
			t.Fatalf("Boundary(%v, %d) = %v, %v, %v", tt.d, tt.rank, rec, ok, err)
		}
		if rec.ToRank != tt.wantTo || rec.NClockwiseRotations != tt.wantRot {
			t.Errorf("Boundary(%v, %d) = to_rank=%d rot=%d, want to_rank=%d rot=%d",
				tt.d, tt.rank, rec.ToRank, rec.NClockwiseRotations, tt.wantTo, tt.wantRot)
		}
	}

	// Every diagonal is absent at layout=(1,1): a single sub-tile has no
	// interior diagonal neighbor and no well-defined face-corner image.
	for rank := 0; rank < 6; rank++ {
		for _, d := range []direction.Direction{direction.Northwest, direction.Northeast, direction.Southwest, direction.Southeast} {
			_, ok, err := c.Boundary(d, rank)
			if err != nil {
				t.Fatalf("Boundary(%v, %d): %v", d, rank, err)
			}
			if ok {
				t.Errorf("Boundary(%v, %d) should be absent at layout=(1,1)", d, rank)
			}
		}
	}
}

// TestBoundary2x2FullCardinalEdges replays every rank across every cardinal
// direction at layout=(2,2), catching the row/col-flip parity bug the
// layout=(1,1) graph above can't exercise (every sub-tile there is
// trivially the whole face).
func TestBoundary2x2FullCardinalEdges(t *testing.T) {
	c := newSphere(t, 2, 2)

	type want struct{ to, rot int }
	cases := map[direction.Direction][]want{
		direction.West: {
			{19, 1}, {0, 0}, {18, 1}, {2, 0}, {1, 0}, {4, 0}, {3, 0}, {6, 0},
			{3, 1}, {8, 0}, {2, 1}, {10, 0}, {9, 0}, {12, 0}, {11, 0}, {14, 0},
			{11, 1}, {16, 0}, {10, 1}, {18, 0}, {17, 0}, {20, 0}, {19, 0}, {22, 0},
		},
		direction.North: {
			{2, 0}, {3, 0}, {10, 3}, {8, 3}, {6, 0}, {7, 0}, {8, 0}, {9, 0},
			{10, 0}, {11, 0}, {18, 3}, {16, 3}, {14, 0}, {15, 0}, {16, 0}, {17, 0},
			{18, 0}, {19, 0}, {2, 3}, {0, 3}, {22, 0}, {23, 0}, {0, 0}, {1, 0},
		},
		direction.South: {
			{22, 0}, {23, 0}, {0, 0}, {1, 0}, {23, 3}, {21, 3}, {4, 0}, {5, 0},
			{6, 0}, {7, 0}, {8, 0}, {9, 0}, {7, 3}, {5, 3}, {12, 0}, {13, 0},
			{14, 0}, {15, 0}, {16, 0}, {17, 0}, {15, 3}, {13, 3}, {20, 0}, {21, 0},
		},
		direction.East: {
			{1, 0}, {4, 0}, {3, 0}, {6, 0}, {5, 0}, {13, 1}, {7, 0}, {12, 1},
			{9, 0}, {12, 0}, {11, 0}, {14, 0}, {13, 0}, {21, 1}, {15, 0}, {20, 1},
			{17, 0}, {20, 0}, {19, 0}, {22, 0}, {21, 0}, {5, 1}, {23, 0}, {4, 1},
		},
	}

	for d, wants := range cases {
		for rank, w := range wants {
			rec, ok, err := c.Boundary(d, rank)
			if err != nil || !ok {
				t.Fatalf("Boundary(%v, %d) = %v, %v, %v", d, rank, rec, ok, err)
			}
			if rec.ToRank != w.to || rec.NClockwiseRotations != w.rot {
				t.Errorf("Boundary(%v, %d) = to_rank=%d rot=%d, want to_rank=%d rot=%d",
					d, rank, rec.ToRank, rec.NClockwiseRotations, w.to, w.rot)
			}
		}
	}
}

// TestBoundary2x2FullCorners replays every rank across every diagonal
// direction at layout=(2,2), including the absent (three-face-vertex)
// cases.
func TestBoundary2x2FullCorners(t *testing.T) {
	c := newSphere(t, 2, 2)

	type want struct {
		to, rot int
		absent  bool
	}
	cases := map[direction.Direction][]want{
		direction.Northwest: {
			{18, 1, false}, {2, 0, false}, {0, 0, true}, {10, 3, false},
			{3, 0, false}, {6, 0, false}, {0, 0, true}, {8, 0, false},
			{2, 1, false}, {10, 0, false}, {0, 0, true}, {18, 3, false},
			{11, 0, false}, {14, 0, false}, {0, 0, true}, {16, 0, false},
			{10, 1, false}, {18, 0, false}, {0, 0, true}, {2, 3, false},
			{19, 0, false}, {22, 0, false}, {0, 0, true}, {0, 0, false},
		},
		direction.Northeast: {
			{3, 0, false}, {6, 0, false}, {8, 3, false}, {0, 0, true},
			{7, 0, false}, {12, 1, false}, {9, 0, false}, {0, 0, true},
			{11, 0, false}, {14, 0, false}, {16, 3, false}, {0, 0, true},
			{15, 0, false}, {20, 1, false}, {17, 0, false}, {0, 0, true},
			{19, 0, false}, {22, 0, false}, {0, 3, false}, {0, 0, true},
			{23, 0, false}, {4, 1, false}, {1, 0, false}, {0, 0, true},
		},
		direction.Southwest: {
			{0, 0, true}, {22, 0, false}, {19, 1, false}, {0, 0, false},
			{0, 0, true}, {23, 3, false}, {1, 0, false}, {4, 0, false},
			{0, 0, true}, {6, 0, false}, {3, 1, false}, {8, 0, false},
			{0, 0, true}, {7, 3, false}, {9, 0, false}, {12, 0, false},
			{0, 0, true}, {14, 0, false}, {11, 1, false}, {16, 0, false},
			{0, 0, true}, {15, 3, false}, {17, 0, false}, {20, 0, false},
		},
		direction.Southeast: {
			{23, 0, false}, {0, 0, true}, {1, 0, false}, {4, 0, false},
			{21, 3, false}, {0, 0, true}, {5, 0, false}, {13, 1, false},
			{7, 0, false}, {0, 0, true}, {9, 0, false}, {12, 0, false},
			{5, 3, false}, {0, 0, true}, {13, 0, false}, {21, 1, false},
			{15, 0, false}, {0, 0, true}, {17, 0, false}, {20, 0, false},
			{13, 3, false}, {0, 0, true}, {21, 0, false}, {5, 1, false},
		},
	}

	for d, wants := range cases {
		for rank, w := range wants {
			rec, ok, err := c.Boundary(d, rank)
			if err != nil {
				t.Fatalf("Boundary(%v, %d): %v", d, rank, err)
			}
			if w.absent {
				if ok {
					t.Errorf("Boundary(%v, %d) should be absent", d, rank)
				}
				continue
			}
			if !ok {
				t.Fatalf("Boundary(%v, %d) unexpectedly absent", d, rank)
			}
			if rec.ToRank != w.to || rec.NClockwiseRotations != w.rot {
				t.Errorf("Boundary(%v, %d) = to_rank=%d rot=%d, want to_rank=%d rot=%d",
					d, rank, rec.ToRank, rec.NClockwiseRotations, w.to, w.rot)
			}
		}
	}
}

func TestBoundary3x3DifficultCases(t *testing.T) {
	c := newSphere(t, 3, 3)

	tests := []struct {
		name     string
		d        direction.Direction
		rank     int
		wantTo   int
		wantRot  int
	}{
		{"west at 0", direction.West, 0, 44, 1},
		{"south at 0", direction.South, 0, 51, 0},
		{"west at 42", direction.West, 42, 24, 1},
		{"north at 42", direction.North, 42, 6, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok, err := c.Boundary(tt.d, tt.rank)
			if err != nil || !ok {
				t.Fatalf("Boundary(%v, %d) = %v, %v, %v", tt.d, tt.rank, rec, ok, err)
			}
			if rec.ToRank != tt.wantTo || rec.NClockwiseRotations != tt.wantRot {
				t.Errorf("Boundary(%v, %d) = to_rank=%d rot=%d, want to_rank=%d rot=%d",
					tt.d, tt.rank, rec.ToRank, rec.NClockwiseRotations, tt.wantTo, tt.wantRot)
			}
		})
	}
}

func TestRotateSubtileRank(t *testing.T) {
	tests := []struct {
		subRank int
		rows    int
		cols    int
		k       int
		want    int
	}{
		{12, 4, 4, 1, 15},
		{14, 4, 4, 1, 7},
		{2, 2, 2, 1, 3},
	}
	for _, tt := range tests {
		layout := mustLayout(t, tt.rows, tt.cols)
		got := RotateSubtileRank(tt.subRank, layout, tt.k)
		if got != tt.want {
			t.Errorf("RotateSubtileRank(%d, (%d,%d), %d) = %d, want %d", tt.subRank, tt.rows, tt.cols, tt.k, got, tt.want)
		}
	}
}

func TestRotateSubtileRankIdentity(t *testing.T) {
	for _, layout := range []Layout{mustLayout(t, 1, 1), mustLayout(t, 2, 3), mustLayout(t, 4, 4)} {
		for s := 0; s < layout.TotalRanks(); s++ {
			if got := RotateSubtileRank(s, layout, 0); got != s {
				t.Errorf("RotateSubtileRank(%d, %+v, 0) = %d, want %d", s, layout, got, s)
			}
		}
	}
}

func TestRotateSubtileRankFullTurnIsIdentity(t *testing.T) {
	layout := mustLayout(t, 3, 4)
	for s := 0; s < layout.TotalRanks(); s++ {
		got := RotateSubtileRank(s, layout, 4)
		if got != s {
			t.Errorf("RotateSubtileRank(%d, %+v, 4) = %d, want %d", s, layout, got, s)
		}
	}
}

func TestRotationsAlwaysNormalized(t *testing.T) {
	for _, layout := range []Layout{mustLayout(t, 1, 1), mustLayout(t, 2, 2), mustLayout(t, 3, 3)} {
		c := NewCubedSpherePartitioner(NewTilePartitioner(layout))
		for rank := 0; rank < c.TotalRanks(); rank++ {
			for _, d := range allDirections {
				rec, ok, err := c.Boundary(d, rank)
				if err != nil {
					t.Fatalf("Boundary(%v, %d): %v", d, rank, err)
				}
				if !ok {
					continue
				}
				if rec.NClockwiseRotations < 0 || rec.NClockwiseRotations > 3 {
					t.Errorf("Boundary(%v, %d).NClockwiseRotations = %d out of [0,3]", d, rank, rec.NClockwiseRotations)
				}
				if rec.ToRank < 0 || rec.ToRank >= c.TotalRanks() {
					t.Errorf("Boundary(%v, %d).ToRank = %d out of range", d, rank, rec.ToRank)
				}
			}
		}
	}
}

var allDirections = []direction.Direction{
	direction.West, direction.East, direction.North, direction.South,
	direction.Northwest, direction.Northeast, direction.Southwest, direction.Southeast,
}

// TestReversibility exercises the pairing law from the reversibility
// invariant: crossing a boundary and crossing back along the appropriately
// rotated reverse direction returns to the origin rank with rotations
// summing to 0 mod 4.
func TestReversibility(t *testing.T) {
	for _, layout := range []Layout{mustLayout(t, 1, 1), mustLayout(t, 2, 2), mustLayout(t, 3, 3), mustLayout(t, 4, 4)} {
		c := NewCubedSpherePartitioner(NewTilePartitioner(layout))
		for rank := 0; rank < c.TotalRanks(); rank++ {
			for _, d := range allDirections {
				out, ok, err := c.Boundary(d, rank)
				if err != nil {
					t.Fatalf("Boundary(%v, %d): %v", d, rank, err)
				}
				if !ok {
					continue
				}
				reverseDir, err := direction.RotateClockwise(d, 2-out.NClockwiseRotations)
				if err != nil {
					t.Fatalf("RotateClockwise(%v, %d): %v", d, 2-out.NClockwiseRotations, err)
				}
				in, ok, err := c.Boundary(reverseDir, out.ToRank)
				if err != nil {
					t.Fatalf("Boundary(%v, %d): %v", reverseDir, out.ToRank, err)
				}
				if !ok {
					t.Fatalf("reverse boundary(%v, %d) unexpectedly absent", reverseDir, out.ToRank)
				}
				if in.ToRank != rank {
					t.Errorf("layout=%+v rank=%d dir=%v: reverse to_rank=%d, want %d", layout, rank, d, in.ToRank, rank)
				}
				if (in.NClockwiseRotations+out.NClockwiseRotations)%4 != 0 {
					t.Errorf("layout=%+v rank=%d dir=%v: rotations %d + %d not 0 mod 4",
						layout, rank, d, out.NClockwiseRotations, in.NClockwiseRotations)
				}
			}
		}
	}
}
