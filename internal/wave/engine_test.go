package wave

import (
	"math"
	"testing"
)

func TestAmplitudeBounded(t *testing.T) {
	e := NewEngine(DefaultParams())
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			a := e.Amplitude(x, y)
			if a < 0 || a > 1 {
				t.Fatalf("Amplitude(%d,%d) = %v, want within [0,1]", x, y, a)
			}
		}
	}
}

func TestAmplitudeDeterministic(t *testing.T) {
	e := NewEngine(DefaultParams())
	first := e.Amplitude(5, 10)
	second := e.Amplitude(5, 10)
	if first != second {
		t.Fatalf("Amplitude(5,10) not deterministic: %v then %v", first, second)
	}
}

func TestBrightnessBounded(t *testing.T) {
	p := DefaultParams()
	e := NewEngine(p)
	for frame := 0; frame < 120; frame += 7 {
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				b := e.Brightness(frame, x, y, e.Amplitude(x, y))
				if b < p.BrightnessMin || b > p.BrightnessMax {
					t.Fatalf("Brightness(%d,%d,%d) = %v, want within [%v,%v]",
						frame, x, y, b, p.BrightnessMin, p.BrightnessMax)
				}
			}
		}
	}
}

func TestHueFixedWhenRangeDegenerate(t *testing.T) {
	p := DefaultParams()
	p.HueMin = 180
	p.HueMax = 180
	e := NewEngine(p)
	for frame := 0; frame < 50; frame += 3 {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if h := e.Hue(frame, x, y); h != 180 {
					t.Fatalf("Hue(%d,%d,%d) = %v, want exactly 180", frame, x, y, h)
				}
			}
		}
	}
}

func TestSaturationFixedWhenRangeDegenerate(t *testing.T) {
	p := DefaultParams()
	p.SaturationMin = 96
	p.SaturationMax = 96
	e := NewEngine(p)
	if s := e.Saturation(7, 3, 4); s != 96 {
		t.Fatalf("Saturation = %v, want exactly 96", s)
	}
}

func TestSaturationWaveStaysInRange(t *testing.T) {
	p := DefaultParams()
	p.SaturationMin = 40
	p.SaturationMax = 220
	e := NewEngine(p)
	for frame := 0; frame < 90; frame += 5 {
		for y := 0; y < 12; y++ {
			for x := 0; x < 12; x++ {
				s := e.Saturation(frame, x, y)
				if s < 40 || s > 220 {
					t.Fatalf("Saturation(%d,%d,%d) = %v out of range", frame, x, y, s)
				}
			}
		}
	}
}

func TestUpdateMemoization(t *testing.T) {
	p := DefaultParams()
	e := NewEngine(p)
	e.Update(90, p.WaveSpeed)
	want := e.WaveMultiplier()

	// Same (frame, speed) pair: queries must not recompute the multiplier.
	e.Brightness(90, 1, 2, 0.5)
	if got := e.WaveMultiplier(); got != want {
		t.Fatalf("multiplier changed within one frame: %v -> %v", want, got)
	}

	// New frame: auto-update kicks in.
	e.Brightness(91, 1, 2, 0.5)
	if got := e.WaveMultiplier(); got == want {
		t.Fatal("multiplier not recomputed for a new frame")
	}
}

func TestSetAutoUpdateDisablesImplicitUpdate(t *testing.T) {
	p := DefaultParams()
	e := NewEngine(p)
	e.Update(90, p.WaveSpeed)
	want := e.WaveMultiplier()

	e.SetAutoUpdate(false)
	e.Brightness(200, 1, 2, 0.5)
	if got := e.WaveMultiplier(); got != want {
		t.Fatalf("multiplier recomputed despite auto-update off: %v -> %v", want, got)
	}
}

func TestWaveMultiplierRange(t *testing.T) {
	p := DefaultParams()
	e := NewEngine(p)
	for frame := 0; frame < 720; frame++ {
		e.Update(frame, p.WaveSpeed)
		m := e.WaveMultiplier()
		if m < p.WaveMultiplierMin || m > p.WaveMultiplierMax {
			t.Fatalf("multiplier %v at frame %d outside [%v,%v]",
				m, frame, p.WaveMultiplierMin, p.WaveMultiplierMax)
		}
	}
}

func TestBrightnessAtFallsBackToDefault(t *testing.T) {
	p := DefaultParams()
	e := NewEngine(p)
	want := e.Brightness(12, 3, 5, e.Amplitude(3, 5))
	got := e.BrightnessAt(12, 3, 5, 16, 16)
	if got != want {
		t.Fatalf("BrightnessAt without custom function = %v, want default %v", got, want)
	}
}

func TestBrightnessAtDelegatesNormalized(t *testing.T) {
	p := DefaultParams()
	e := NewEngine(p)

	var gotX, gotY, gotT float64
	fn := Function{
		Name: "probe",
		Eval: func(_ int, x, y, t float64, _ *Params) float64 {
			gotX, gotY, gotT = x, y, t
			return 123
		},
	}
	e.SetFunction(&fn)

	if v := e.BrightnessAt(270, 4, 8, 16, 32); v != 123 {
		t.Fatalf("custom function result = %v, want 123", v)
	}
	if gotX != 0.25 || gotY != 0.25 {
		t.Fatalf("normalized coords = (%v,%v), want (0.25,0.25)", gotX, gotY)
	}
	wantT := 270.0 / float64(p.FPS*p.DurationSeconds)
	if math.Abs(gotT-wantT) > 1e-12 {
		t.Fatalf("normalized time = %v, want %v", gotT, wantT)
	}

	e.Reset()
	if e.Function() != nil {
		t.Fatal("Reset did not remove the custom function")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"defaults", func(*Params) {}, false},
		{"zero fps", func(p *Params) { p.FPS = 0 }, true},
		{"zero duration", func(p *Params) { p.DurationSeconds = 0 }, true},
		{"inverted hue", func(p *Params) { p.HueMin = 200; p.HueMax = 100 }, true},
		{"hue above 360", func(p *Params) { p.HueMax = 400 }, true},
		{"inverted brightness", func(p *Params) { p.BrightnessMin = 255; p.BrightnessMax = 0 }, true},
		{"fixed hue is fine", func(p *Params) { p.HueMin = 180; p.HueMax = 180 }, false},
		{"fixed saturation is fine", func(p *Params) { p.SaturationMin = 40; p.SaturationMax = 40 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
