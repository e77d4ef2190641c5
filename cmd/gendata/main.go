// Command gendata writes a synthetic player tracking CSV: a 1 Hz random
// walk clamped to the pitch, in the schema cmd/analyze ingests. Useful
// for exercising the pipeline without real tracking data.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/matchlens/pitchtrack/internal/config"
	"github.com/matchlens/pitchtrack/internal/pitch"
)

func main() {
	out := flag.String("out", "tracking.csv", "output CSV path")
	samples := flag.Int("samples", 2700, "number of rows, one per second")
	seed := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	maxSpeed := flag.Float64("max-speed", 8, "speed cap in m/s")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg := config.Load()
	w := walker{
		pitch:    cfg.AnalysisConfig().Pitch,
		maxSpeed: *maxSpeed,
		rng:      rand.New(rand.NewSource(*seed)),
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", *out, err)
		os.Exit(1)
	}

	if err := w.generate(f, *samples); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *out, err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d samples to %s (seed %d)\n", *samples, *out, *seed)
}

// walker produces a smooth random walk: speed and heading drift each step
// and the position is clamped to the pitch extents.
type walker struct {
	pitch    pitch.Pitch
	maxSpeed float64
	rng      *rand.Rand
}

func (w *walker) generate(out io.Writer, samples int) error {
	cw := csv.NewWriter(out)
	if err := cw.Write([]string{"time", "x", "y"}); err != nil {
		return err
	}

	var x, y float64
	heading := w.rng.Float64() * 2 * math.Pi
	speed := w.maxSpeed / 2

	for t := 0; t < samples; t++ {
		if err := cw.Write([]string{
			strconv.Itoa(t),
			strconv.FormatFloat(x, 'f', 2, 64),
			strconv.FormatFloat(y, 'f', 2, 64),
		}); err != nil {
			return err
		}

		heading += (w.rng.Float64() - 0.5) * math.Pi / 2
		speed += (w.rng.Float64() - 0.5) * 2
		speed = clamp(speed, 0, w.maxSpeed)

		x = clamp(x+speed*math.Cos(heading), w.pitch.MinX(), w.pitch.MaxX())
		y = clamp(y+speed*math.Sin(heading), w.pitch.MinY(), w.pitch.MaxY())
	}

	cw.Flush()
	return cw.Error()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
