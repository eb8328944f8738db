package spectral_test

import (
	"testing"

	"github.com/katalvlaran/asperity/grid"
	"github.com/katalvlaran/asperity/spectral"
)

func BenchmarkHurstFractal_Discretise(b *testing.B) {
	s, err := spectral.NewHurstFractal(1, 0.1, 16, 0.8, spectral.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	g := grid.Grid{Extent: []float64{1, 1}, Spacing: 1.0 / 64}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Discretise(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStatistical_Discretise(b *testing.B) {
	s := spectral.DefaultStatistical(spectral.WithSeed(1))
	g := grid.Grid{Extent: []float64{1, 1}, Spacing: 1.0 / 128}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Discretise(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDiscrete_Discretise(b *testing.B) {
	d, err := spectral.NewDiscretePolar([]float64{1, 2, 4, 8}, []float64{1, 0.5, 0.25, 0.125}, nil, spectral.WithRandomPhases(), spectral.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	g := grid.Grid{Extent: []float64{1, 1}, Spacing: 1.0 / 256}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Discretise(g); err != nil {
			b.Fatal(err)
		}
	}
}
