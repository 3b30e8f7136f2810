// vinestat generates plants without opening a window and reports their
// structure.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/Faultbox/dappled/internal/logger"
	"github.com/Faultbox/dappled/internal/plant"
	"github.com/Faultbox/dappled/internal/telemetry"
)

func main() {
	logger.InitNop()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "csv":
		cmdCSV(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`vinestat - Dappled Light plant statistics

Usage:
  vinestat <command> [options]

Commands:
  info [-seed N]                     Show counts per depth and bounds
  csv  [-seed N] [-count N] [-o F]   Write one summary row per seed

Examples:
  vinestat info -seed 42
  vinestat csv -seed 1 -count 100 -o plants.csv`)
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	seed := fs.Uint64("seed", 0, "Plant seed (0 picks one from the clock)")
	fs.Parse(args)

	s := plant.ResolveSeed(*seed)
	store := plant.NewGenerator(plant.NewSource(s)).Generate()
	stats := store.Stats()

	fmt.Printf("Seed: %d\n\n", s)
	fmt.Printf("%-6s %9s %7s %9s %6s\n", "Depth", "Segments", "Leaves", "Clusters", "Fan")
	fmt.Println(strings.Repeat("-", 41))
	for depth := plant.Iterations; depth >= 0; depth-- {
		fmt.Printf("%-6d %9d %7d %9d %6d\n",
			depth, stats.Segments[depth], stats.Leaves[depth], stats.Clusters[depth], plant.ChildrenAt(depth))
	}
	fmt.Println(strings.Repeat("-", 41))
	fmt.Printf("%-6s %9d %7d %9d\n\n", "Total",
		store.SegmentCount(), store.LeafCount(), store.ClusterCount())

	fmt.Printf("Bracts:  %d\n", store.BractCount())
	fmt.Printf("Centers: %d\n", store.CenterCount())

	b := store.Bounds()
	size := b.Size()
	fmt.Printf("Bounds:  (%.2f, %.2f, %.2f) to (%.2f, %.2f, %.2f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	fmt.Printf("Size:    %.2f x %.2f x %.2f\n", size.X, size.Y, size.Z)
}

func cmdCSV(args []string) {
	fs := flag.NewFlagSet("csv", flag.ExitOnError)
	seed := fs.Uint64("seed", 1, "First seed")
	count := fs.Int("count", 10, "Number of consecutive seeds")
	out := fs.String("o", "", "Output file (default stdout)")
	fs.Parse(args)

	if *seed == 0 {
		fmt.Fprintln(os.Stderr, "Error: -seed must be non-zero")
		os.Exit(1)
	}
	if *count < 1 {
		fmt.Fprintln(os.Stderr, "Error: -count must be positive")
		os.Exit(1)
	}

	records := make([]telemetry.PlantRecord, 0, *count)
	for i := 0; i < *count; i++ {
		s := *seed + uint64(i)
		store := plant.NewGenerator(plant.NewSource(s)).Generate()
		records = append(records, telemetry.NewPlantRecord(s, store))
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := gocsv.Marshal(records, w); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *out != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d rows to %s\n", len(records), *out)
	}
}
