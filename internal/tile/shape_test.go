package tile

import "testing"

func TestShapeNumTiles(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{9, 9}, 81},
		{Shape{1}, 1},
		{Shape{2, 3, 4}, 24},
		{Shape{5, 0, 2}, 0},
		{Shape{}, 1},
	}

	for _, tt := range tests {
		if got := tt.shape.NumTiles(); got != tt.want {
			t.Errorf("Shape%v.NumTiles() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("equal shapes reported unequal")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 4}) {
		t.Error("shapes of different length reported equal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("shapes with different entries reported equal")
	}
}

func TestShapeClone(t *testing.T) {
	orig := Shape{2, 3, 4}
	clone := orig.Clone()

	if !clone.Equal(orig) {
		t.Fatalf("Clone() = %v, want %v", clone, orig)
	}

	clone[0] = 99
	if orig[0] != 2 {
		t.Error("mutating clone changed the original")
	}
}
