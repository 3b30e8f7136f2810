package controls

import (
	gomath "math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Faultbox/dappled/internal/engine/lighting"
)

func TestControls(t *testing.T) {
	Convey("Given default controls", t, func() {
		s := New(Options{Wind: WindMedium, SunAngle: 0.5, Panel: true})

		So(s.Wind(), ShouldEqual, WindMedium)
		So(s.WindStrength(), ShouldEqual, float32(1.5))
		So(s.SunAngle(), ShouldEqual, float32(0.5))
		So(s.Mode(), ShouldEqual, lighting.Day)
		So(s.PanelAlpha(), ShouldEqual, float32(1))

		Convey("Selecting a preset sets its strength", func() {
			s.SetWind(WindSlow)
			So(s.WindStrength(), ShouldEqual, float32(0.5))
			s.SetWind(WindFast)
			So(s.WindStrength(), ShouldEqual, float32(3.5))
		})

		Convey("Negative wind is clamped to calm", func() {
			s.SetWindStrength(-2)
			So(s.WindStrength(), ShouldEqual, float32(0))
			So(s.Wind(), ShouldEqual, WindSlow)
		})

		Convey("NaN wind is clamped to calm", func() {
			s.SetWindStrength(float32(gomath.NaN()))
			So(s.WindStrength(), ShouldEqual, float32(0))
		})

		Convey("Sun angle is clamped to [0, 1]", func() {
			s.SetSunAngle(1.7)
			So(s.SunAngle(), ShouldEqual, float32(1))
			s.SetSunAngle(-0.3)
			So(s.SunAngle(), ShouldEqual, float32(0))
			s.NudgeSunAngle(-SunStep)
			So(s.SunAngle(), ShouldEqual, float32(0))
		})

		Convey("Toggling the mode flips between day and night", func() {
			s.ToggleMode()
			So(s.Mode(), ShouldEqual, lighting.Night)
			s.ToggleMode()
			So(s.Mode(), ShouldEqual, lighting.Day)
		})

		Convey("Hiding the panel fades it out over the fade duration", func() {
			s.TogglePanel()
			So(s.PanelVisible(), ShouldBeFalse)
			So(s.Fading(), ShouldBeTrue)

			s.Update(FadeDuration / 2)
			So(s.PanelAlpha(), ShouldBeBetween, float32(0), float32(1))

			s.Update(FadeDuration)
			So(s.Fading(), ShouldBeFalse)
			So(s.PanelAlpha(), ShouldEqual, float32(0))

			Convey("and showing it again fades back in", func() {
				s.TogglePanel()
				s.Update(FadeDuration + 0.1)
				So(s.PanelVisible(), ShouldBeTrue)
				So(s.PanelAlpha(), ShouldEqual, float32(1))
			})
		})

		Convey("Setting the same visibility does not start a fade", func() {
			s.SetPanelVisible(true)
			So(s.Fading(), ShouldBeFalse)
		})

		Convey("The snapshot mirrors the state", func() {
			s.SetWind(WindFast)
			s.SetMode(lighting.Night)
			p := s.Params()
			So(p.Wind, ShouldEqual, WindFast)
			So(p.WindStrength, ShouldEqual, float32(3.5))
			So(p.Mode, ShouldEqual, lighting.Night)
			So(p.PanelVisible, ShouldBeTrue)
		})
	})

	Convey("Out-of-range options are normalized", t, func() {
		s := New(Options{Wind: Wind(9), SunAngle: 4, Night: true})
		So(s.Wind(), ShouldEqual, WindMedium)
		So(s.SunAngle(), ShouldEqual, float32(1))
		So(s.Mode(), ShouldEqual, lighting.Night)
		So(s.PanelAlpha(), ShouldEqual, float32(0))
	})
}

func TestParseWind(t *testing.T) {
	tests := []struct {
		in      string
		want    Wind
		wantErr bool
	}{
		{"slow", WindSlow, false},
		{"Med", WindMedium, false},
		{"medium", WindMedium, false},
		{" FAST ", WindFast, false},
		{"gale", WindMedium, true},
	}
	for _, tt := range tests {
		got, err := ParseWind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseWind(%q) error: got %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseWind(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWindLabels(t *testing.T) {
	want := []string{"Slow", "Med", "Fast"}
	for i, w := range Winds {
		if w.String() != want[i] {
			t.Errorf("Winds[%d]: got %q, want %q", i, w.String(), want[i])
		}
	}
}
