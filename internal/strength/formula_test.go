package strength

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormulaRoundTrip(t *testing.T) {
	weights := []float64{0.5, 20, 60, 100, 142.5, 300}

	for _, f := range Formulas() {
		t.Run(f.Name, func(t *testing.T) {
			for _, w := range weights {
				// Brzycki's denominator vanishes at 37 reps.
				for r := 1; r <= 36; r++ {
					got := f.Project(f.Estimate(w, r), r)
					if math.Abs(got-w) > 1e-6*w {
						t.Errorf("Project(Estimate(%v, %d)) = %v, want %v", w, r, got, w)
					}
				}
			}
		})
	}
}

func TestFormulaProjectionIsNonIncreasing(t *testing.T) {
	const oneRM = 150.0

	for _, f := range Formulas() {
		t.Run(f.Name, func(t *testing.T) {
			prev := f.Project(oneRM, 1)
			for r := 2; r <= 40; r++ {
				got := f.Project(oneRM, r)
				if got > prev {
					t.Errorf("Project(%v, %d) = %v, greater than %v at %d reps", oneRM, r, got, prev, r-1)
				}
				prev = got
			}
		})
	}
}

func TestFormulaEstimates(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{"Epley", 100, 5, 116.6667},
		{"Brzycki", 100, 5, 112.5},
		{"Lombardi", 100, 5, 117.4619},
		{"O'Conner", 100, 5, 112.5},
		{"Wathan", 100, 5, 116.5825},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) found nothing", tt.name)
			}
			got := f.Estimate(tt.weight, tt.reps)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("%s.Estimate(%v, %d) = %v, want %v", tt.name, tt.weight, tt.reps, got, tt.want)
			}
		})
	}
}

func TestBrzyckiOutsideDomainStillComputes(t *testing.T) {
	f, _ := Lookup("brzycki")

	if got := f.Estimate(100, 37); !math.IsInf(got, 1) {
		t.Errorf("Estimate(100, 37) = %v, want +Inf", got)
	}
	if got := f.Estimate(100, 40); got >= 0 {
		t.Errorf("Estimate(100, 40) = %v, want a negative value", got)
	}
}

func TestNames(t *testing.T) {
	want := []string{"Epley", "Brzycki", "Lombardi", "O'Conner", "Wathan"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup(" o'conner "); !ok {
		t.Error("Lookup should ignore case and surrounding spaces")
	}
	if _, ok := Lookup("Mayhew"); ok {
		t.Error("Lookup(Mayhew) should not find anything")
	}
}

func TestFormulasReturnsCopy(t *testing.T) {
	fs := Formulas()
	fs[0].Name = "changed"

	if Names()[0] != "Epley" {
		t.Error("mutating Formulas() result changed the registry")
	}
}
