package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundsOf(t *testing.T) {
	bbox := BoundsOf([]Vector3{
		NewVector3(0, 0, 0),
		NewVector3(10, 20, 30),
	})

	size := bbox.Size()
	expected := NewVector3(10, 20, 30)
	if size != expected {
		t.Errorf("Size failed: expected %v, got %v", expected, size)
	}

	center := bbox.Center()
	if center != NewVector3(5, 10, 15) {
		t.Errorf("Center failed: expected (5, 10, 15), got %v", center)
	}

	if math.Abs(bbox.Diagonal()-size.Length()) > 1e-10 {
		t.Errorf("Diagonal failed: expected %v, got %v", size.Length(), bbox.Diagonal())
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Error("expected new bounding box to be empty")
	}
	bbox.Extend(NewVector3(1, 1, 1))
	if bbox.IsEmpty() {
		t.Error("expected bounding box with a point to be non-empty")
	}
}
