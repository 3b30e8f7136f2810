package lighting

import (
	"reflect"
	"testing"

	"github.com/Faultbox/dappled/internal/plant"
	"github.com/Faultbox/dappled/pkg/math"
)

func TestSunPosition(t *testing.T) {
	tests := []struct {
		name  string
		angle float32
		want  math.Vec3
	}{
		{"east", 0, math.Vec3{X: 20, Y: 12}},
		{"zenith", 0.5, math.Vec3{X: 0, Y: 40}},
		{"west", 1, math.Vec3{X: -20, Y: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunPosition(tt.angle)
			if d := got.Sub(tt.want).Length(); d > 1e-5 {
				t.Errorf("SunPosition(%v): got %v, want %v", tt.angle, got, tt.want)
			}
			if got.Z != 0 {
				t.Errorf("SunPosition(%v).Z: got %v, want 0", tt.angle, got.Z)
			}
		})
	}
}

func TestLightLooksAtTarget(t *testing.T) {
	for _, a := range []float32{0, 0.2, 0.5, 0.9, 1} {
		l := Compute(Day, a)
		want := Target.Sub(l.Sun.Position).Normalize()
		if d := l.Sun.Direction.Sub(want).Length(); d > 1e-6 {
			t.Errorf("angle %v: direction %v, want %v", a, l.Sun.Direction, want)
		}
		if l.Sun.Target != Target {
			t.Errorf("angle %v: target %v, want %v", a, l.Sun.Target, Target)
		}
	}
}

func TestModePalettes(t *testing.T) {
	day, night := Compute(Day, 0.5), Compute(Night, 0.5)

	if day.Sun.Intensity != 2.2 || day.Ambient.Intensity != 0.65 {
		t.Errorf("day intensities: got %v/%v, want 2.2/0.65", day.Sun.Intensity, day.Ambient.Intensity)
	}
	if night.Sun.Intensity != 1.2 || night.Ambient.Intensity != 0.2 {
		t.Errorf("night intensities: got %v/%v, want 1.2/0.2", night.Sun.Intensity, night.Ambient.Intensity)
	}
	if day.Background != Hex(0xfcfbf9) || night.Background != Hex(0x0a0b1e) {
		t.Errorf("backgrounds: got %v/%v", day.Background, night.Background)
	}
	if night.Sun.Color != Hex(0xaaccff) {
		t.Errorf("moon color: got %v", night.Sun.Color)
	}
	if day.Celestial != "Sun" || night.Celestial != "Moon" {
		t.Errorf("celestial labels: got %q/%q", day.Celestial, night.Celestial)
	}
	// Position depends on the angle only.
	if day.Sun.Position != night.Sun.Position {
		t.Errorf("mode changed light position: %v vs %v", day.Sun.Position, night.Sun.Position)
	}
}

func TestModeToggleLeavesPlantUntouched(t *testing.T) {
	store := plant.NewGenerator(plant.NewSource(9)).Generate()
	leaves, bracts, centers, skeleton := store.Leaves(), store.Bracts(), store.Centers(), store.Skeleton()

	mode := Day
	for i := 0; i < 4; i++ {
		mode = mode.Toggle()
		Compute(mode, 0.3)
	}

	if !reflect.DeepEqual(leaves, store.Leaves()) ||
		!reflect.DeepEqual(bracts, store.Bracts()) ||
		!reflect.DeepEqual(centers, store.Centers()) ||
		!reflect.DeepEqual(skeleton, store.Skeleton()) {
		t.Error("toggling the mode changed plant data")
	}
}

func TestToggleAndString(t *testing.T) {
	if Day.Toggle() != Night || Night.Toggle() != Day {
		t.Error("Toggle should swap Day and Night")
	}
	if Day.String() != "day" || Night.String() != "night" {
		t.Errorf("String: got %q/%q", Day.String(), Night.String())
	}
	if PaletteFor(Mode(7)) != PaletteFor(Day) {
		t.Error("unknown mode should fall back to Day")
	}
}

func TestCompassHeading(t *testing.T) {
	tests := []struct {
		angle, want float32
	}{
		{0, 90},
		{0.5, 180},
		{1, 270},
	}
	for _, tt := range tests {
		if got := CompassHeading(tt.angle); got != tt.want {
			t.Errorf("CompassHeading(%v): got %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(0xff0080); got != (Color{1, 0, float32(0x80) / 255}) {
		t.Errorf("Hex: got %v", got)
	}
}
