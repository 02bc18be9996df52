package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	moved := r.Offset(1, -2)
	if moved.X != 6 || moved.Y != 8 || moved.W != 20 || moved.H != 15 {
		t.Errorf("Offset(1, -2) = %+v", moved)
	}
}

func TestGridRects(t *testing.T) {
	g := Grid{X: 2, Y: 1, CellW: 5, CellH: 4, GapX: 1, GapY: 2, Cols: 3}
	rects := g.Rects(5)

	expected := []Rect{
		{X: 2, Y: 1, W: 5, H: 4},
		{X: 8, Y: 1, W: 5, H: 4},
		{X: 14, Y: 1, W: 5, H: 4},
		{X: 2, Y: 7, W: 5, H: 4},
		{X: 8, Y: 7, W: 5, H: 4},
	}
	if len(rects) != len(expected) {
		t.Fatalf("Rects(5) returned %d rects", len(rects))
	}
	for i := range expected {
		if rects[i] != expected[i] {
			t.Errorf("rect %d = %+v, expected %+v", i, rects[i], expected[i])
		}
	}
}

func TestGridColsFor(t *testing.T) {
	g := Grid{CellW: 5, GapX: 1}

	tests := []struct {
		width, expected int
	}{
		{78, 13},
		{77, 13}, // 13*5 + 12 gaps
		{76, 12},
		{5, 1},
		{2, 1}, // never below one column
	}

	for _, tc := range tests {
		if got := g.ColsFor(tc.width); got != tc.expected {
			t.Errorf("ColsFor(%d) = %d, expected %d", tc.width, got, tc.expected)
		}
	}
}

func TestHitTest(t *testing.T) {
	rects := Grid{X: 0, Y: 0, CellW: 5, CellH: 4, GapX: 1, Cols: 13}.Rects(13)

	tests := []struct {
		name     string
		x, y     int
		expected int
	}{
		{"first tile", 0, 0, 0},
		{"first tile far corner", 4, 3, 0},
		{"gap between tiles", 5, 1, -1},
		{"second tile", 6, 2, 1},
		{"last tile", 76, 1, 12},
		{"below the row", 3, 4, -1},
		{"past the end", 79, 1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HitTest(rects, tc.x, tc.y); got != tc.expected {
				t.Errorf("HitTest(%d, %d) = %d, expected %d", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
