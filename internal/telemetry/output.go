package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/Faultbox/dappled/internal/plant"
)

// PlantRecord summarizes one generated plant.
type PlantRecord struct {
	Seed     uint64  `csv:"seed"`
	Segments int     `csv:"segments"`
	Leaves   int     `csv:"leaves"`
	Clusters int     `csv:"clusters"`
	Bracts   int     `csv:"bracts"`
	Centers  int     `csv:"centers"`
	Width    float64 `csv:"width"`
	Height   float64 `csv:"height"`
	Depth    float64 `csv:"depth"`
}

// NewPlantRecord builds the summary row for store.
func NewPlantRecord(seed uint64, store *plant.Store) PlantRecord {
	size := store.Bounds().Size()
	return PlantRecord{
		Seed:     seed,
		Segments: store.SegmentCount(),
		Leaves:   store.LeafCount(),
		Clusters: store.ClusterCount(),
		Bracts:   store.BractCount(),
		Centers:  store.CenterCount(),
		Width:    float64(size.X),
		Height:   float64(size.Y),
		Depth:    float64(size.Z),
	}
}

// Output writes perf.csv and plant.csv into a directory.
type Output struct {
	dir      string
	perfFile *os.File

	perfHeaderWritten bool
}

// NewOutput creates the output directory and opens perf.csv.
// Returns nil if dir is empty (output disabled); all methods accept a nil
// receiver.
func NewOutput(dir string) (*Output, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	return &Output{dir: dir, perfFile: f}, nil
}

// WritePerf appends one stats window to perf.csv.
func (o *Output) WritePerf(rec StatsCSV) error {
	if o == nil {
		return nil
	}

	records := []StatsCSV{rec}
	if !o.perfHeaderWritten {
		if err := gocsv.Marshal(records, o.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		o.perfHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, o.perfFile); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// WritePlant writes plant.csv with a single summary row.
func (o *Output) WritePlant(rec PlantRecord) error {
	if o == nil {
		return nil
	}

	f, err := os.Create(filepath.Join(o.dir, "plant.csv"))
	if err != nil {
		return fmt.Errorf("creating plant.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile([]PlantRecord{rec}, f); err != nil {
		return fmt.Errorf("writing plant: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (o *Output) Dir() string {
	if o == nil {
		return ""
	}
	return o.dir
}

// Close closes open files.
func (o *Output) Close() error {
	if o == nil || o.perfFile == nil {
		return nil
	}
	err := o.perfFile.Close()
	o.perfFile = nil
	return err
}
