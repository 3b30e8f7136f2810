package telemetry

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/dappled/internal/plant"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClockedCollector(window int) (*Collector, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	c := NewCollector(window)
	c.now = clk.now
	return c, clk
}

func frame(c *Collector, clk *fakeClock, phases map[string]time.Duration) {
	c.StartFrame()
	for _, p := range Phases {
		d, ok := phases[p]
		if !ok {
			continue
		}
		c.StartPhase(p)
		clk.advance(d)
	}
	c.EndFrame()
}

func TestCollectorAverages(t *testing.T) {
	c, clk := newClockedCollector(10)
	for i := 0; i < 4; i++ {
		frame(c, clk, map[string]time.Duration{
			PhaseAnimate: 2 * time.Millisecond,
			PhaseDraw:    8 * time.Millisecond,
		})
	}

	s := c.Stats()
	if s.AvgFrame != 10*time.Millisecond {
		t.Errorf("AvgFrame got %v, want 10ms", s.AvgFrame)
	}
	if s.PhaseAvg[PhaseAnimate] != 2*time.Millisecond {
		t.Errorf("animate avg got %v, want 2ms", s.PhaseAvg[PhaseAnimate])
	}
	if got := s.PhasePct[PhaseDraw]; got < 79.99 || got > 80.01 {
		t.Errorf("draw pct got %v, want 80", got)
	}
	if got := s.FPS; got < 99.99 || got > 100.01 {
		t.Errorf("FPS got %v, want 100", got)
	}
	if got := s.AnimateBudgetPct; got < 11.99 || got > 12.01 {
		t.Errorf("AnimateBudgetPct got %v, want 12", got)
	}
	if _, ok := s.PhaseAvg[PhaseShadow]; ok {
		t.Error("untimed phase should not appear")
	}
}

func TestCollectorMinMax(t *testing.T) {
	c, clk := newClockedCollector(10)
	frame(c, clk, map[string]time.Duration{PhaseDraw: 5 * time.Millisecond})
	frame(c, clk, map[string]time.Duration{PhaseDraw: 15 * time.Millisecond})

	s := c.Stats()
	if s.MinFrame != 5*time.Millisecond || s.MaxFrame != 15*time.Millisecond {
		t.Errorf("min/max got %v/%v, want 5ms/15ms", s.MinFrame, s.MaxFrame)
	}
}

func TestCollectorRollingWindow(t *testing.T) {
	c, clk := newClockedCollector(3)
	for i := 0; i < 3; i++ {
		frame(c, clk, map[string]time.Duration{PhaseDraw: 30 * time.Millisecond})
	}
	for i := 0; i < 3; i++ {
		frame(c, clk, map[string]time.Duration{PhaseDraw: 10 * time.Millisecond})
	}

	if c.Frames() != 3 {
		t.Errorf("Frames got %d, want 3", c.Frames())
	}
	if s := c.Stats(); s.AvgFrame != 10*time.Millisecond {
		t.Errorf("old samples should be evicted, avg got %v", s.AvgFrame)
	}
}

func TestCollectorEmpty(t *testing.T) {
	s := NewCollector(0).Stats()
	if s.FPS != 0 || s.AvgFrame != 0 {
		t.Errorf("empty stats got %+v", s)
	}
	if s.PhaseAvg == nil || s.PhasePct == nil {
		t.Error("maps should be non-nil")
	}
}

func TestStatsFieldsAndCSV(t *testing.T) {
	c, clk := newClockedCollector(5)
	frame(c, clk, map[string]time.Duration{
		PhaseAnimate: time.Millisecond,
		PhaseUpload:  time.Millisecond,
		PhaseUI:      2 * time.Millisecond,
	})
	s := c.Stats()

	if len(s.Fields()) != 5+3 {
		t.Errorf("Fields got %d entries, want 8", len(s.Fields()))
	}
	s.Log(zap.NewNop())

	rec := s.ToCSV(2*time.Second, c.Frames())
	if rec.Elapsed != 2 || rec.Frames != 1 {
		t.Errorf("csv header fields got %+v", rec)
	}
	if rec.AnimateUS != 1000 || rec.UIUS != 2000 || rec.DrawUS != 0 {
		t.Errorf("csv phase fields got %+v", rec)
	}
}

func TestOutputDisabled(t *testing.T) {
	o, err := NewOutput("")
	if err != nil || o != nil {
		t.Fatalf("NewOutput(\"\") got %v, %v", o, err)
	}
	if err := o.WritePerf(StatsCSV{}); err != nil {
		t.Errorf("nil WritePerf: %v", err)
	}
	if err := o.WritePlant(PlantRecord{}); err != nil {
		t.Errorf("nil WritePlant: %v", err)
	}
	if o.Dir() != "" || o.Close() != nil {
		t.Error("nil output should be inert")
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestOutputWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	o, err := NewOutput(dir)
	if err != nil {
		t.Fatalf("NewOutput: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := o.WritePerf(StatsCSV{Frames: i + 1, FPS: 60}); err != nil {
			t.Fatalf("WritePerf: %v", err)
		}
	}

	store := plant.NewGenerator(plant.NewSource(9)).Generate()
	if err := o.WritePlant(NewPlantRecord(9, store)); err != nil {
		t.Fatalf("WritePlant: %v", err)
	}
	if err := o.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	perf := readCSV(t, filepath.Join(dir, "perf.csv"))
	if len(perf) != 4 {
		t.Fatalf("perf.csv got %d rows, want header + 3", len(perf))
	}
	if perf[0][0] != "elapsed_s" || perf[3][1] != "3" {
		t.Errorf("perf.csv content got %v", perf)
	}

	rows := readCSV(t, filepath.Join(dir, "plant.csv"))
	if len(rows) != 2 {
		t.Fatalf("plant.csv got %d rows, want 2", len(rows))
	}
	want := []string{"9", "624", "3360", "2480", "7440", "2480"}
	for i, w := range want {
		if rows[1][i] != w {
			t.Errorf("plant.csv column %s got %s, want %s", rows[0][i], rows[1][i], w)
		}
	}
}
