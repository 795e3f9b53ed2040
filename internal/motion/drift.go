package motion

import opensimplex "github.com/ojrac/opensimplex-go"

// Drift wanders each glyph organically using two independent noise channels
// (one per axis). The per-cell seed offset gives every glyph its own path.
type Drift struct {
	Radius float64
	Speed  float64

	// TimeScale is the noise increment per frame; lower is smoother.
	TimeScale float64
	// SeedSpread is the spatial seed offset between neighbouring cells.
	SeedSpread float64

	noise opensimplex.Noise
}

// NewDrift creates a drift motion seeded deterministically.
func NewDrift(radius, speed float64, seed int64) *Drift {
	return &Drift{
		Radius:     radius,
		Speed:      speed,
		TimeScale:  0.012,
		SeedSpread: 100.0,
		noise:      opensimplex.NewNormalized(seed),
	}
}

func (d *Drift) Name() string { return "drift" }

func (d *Drift) Offset(col, row, frame int) (float64, float64) {
	t := float64(frame) * d.TimeScale * d.Speed

	seedX := float64(col)*d.SeedSpread + float64(row)*d.SeedSpread*0.37
	seedY := float64(col)*d.SeedSpread*0.61 + float64(row)*d.SeedSpread

	// Normalized noise is 0-1; centre on 0 and scale to [-radius, radius].
	dx := (d.noise.Eval2(seedX+t, seedY) - 0.5) * 2 * d.Radius
	dy := (d.noise.Eval2(seedX, seedY+t) - 0.5) * 2 * d.Radius
	return dx, dy
}
