package upmix

import (
	"testing"
)

func TestSelectCenterPicksSmallerBin(t *testing.T) {
	e, err := New(WithWindowSize(8), WithOverlap(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		left  complex128
		right complex128
		want  complex128
	}{
		{"left smaller", complex(1, 0), complex(3, 0), complex(1, 0)},
		{"right smaller", complex(0, 5), complex(2, 1), complex(2, 1)},
		{"imaginary counts", complex(0, 2), complex(1, 0), complex(1, 0)},
		{"tie goes right", complex(3, 4), complex(4, 3), complex(4, 3)},
		{"zero tie goes right", complex(0, 0), complex(0, 0), complex(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k := range e.bins {
				e.left[k] = tt.left
				e.right[k] = tt.right
			}
			e.selectCenter()
			for k := range e.bins {
				if e.center[k] != tt.want {
					t.Fatalf("bin %d = %v, expected %v", k, e.center[k], tt.want)
				}
			}
		})
	}
}

func TestSelectCenterPerBin(t *testing.T) {
	e, err := New(WithWindowSize(8), WithOverlap(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Alternate which channel has the quieter bin.
	for k := range e.bins {
		if k%2 == 0 {
			e.left[k] = complex(float64(k), 1)
			e.right[k] = complex(float64(k)+2, 1)
		} else {
			e.left[k] = complex(float64(k)+2, 1)
			e.right[k] = complex(float64(k), 1)
		}
	}

	e.selectCenter()

	for k := range e.bins {
		want := complex(float64(k), 1)
		if e.center[k] != want {
			t.Errorf("bin %d = %v, expected %v", k, e.center[k], want)
		}
	}
}
