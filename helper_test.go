package solarsystem

import (
	"testing"

	"github.com/gonum/floats"
)

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

func pointsEqual(a, b Point) bool {
	return floats.EqualWithinAbs(a.X, b.X, 1e-9) && floats.EqualWithinAbs(a.Y, b.Y, 1e-9)
}
