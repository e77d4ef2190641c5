// Command analyze runs the one-shot batch pipeline: it reads a player
// tracking CSV, prints the movement metrics and writes the heatmap, vector
// map and speed chart PNGs next to the input (or into -out).
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/matchlens/pitchtrack/internal/analysis"
	"github.com/matchlens/pitchtrack/internal/config"
	"github.com/matchlens/pitchtrack/internal/ingest"
	"github.com/matchlens/pitchtrack/internal/render"
)

func main() {
	outDir := flag.String("out", "", "output directory for rendered images (default: $OUTPUT_DIR, else beside the input file)")
	player := flag.String("player", "", "player label for the report header")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <tracking.csv>\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	csvPath := flag.Arg(0)

	if err := run(csvPath, *outDir, *player); err != nil {
		var formatErr *ingest.InputFormatError
		var trajErr *analysis.InvalidTrajectoryError
		var renderErr *render.RenderError
		switch {
		case errors.As(err, &formatErr), errors.As(err, &trajErr), errors.As(err, &renderErr):
			fmt.Fprintln(os.Stderr, err)
		default:
			fmt.Fprintf(os.Stderr, "analysis failed: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(csvPath, outDir, player string) error {
	cfg := config.Load()
	analyzer := analysis.NewTrajectoryAnalyzer(cfg.AnalysisConfig())

	renderCfg := render.DefaultConfig()
	renderCfg.Pitch = cfg.AnalysisConfig().Pitch
	renderer := render.New(renderCfg)

	tr, err := ingest.LoadCSV(csvPath)
	if err != nil {
		return err
	}

	metrics, err := analyzer.Analyze(tr)
	if err != nil {
		return err
	}

	if player == "" {
		player = "player"
	}
	fmt.Printf("Movement report for %s (%d samples, %.0f s)\n", player, metrics.SampleCount, metrics.DurationS)
	fmt.Printf("Total distance ran: %.2f m\n", metrics.TotalDistanceM)
	fmt.Println("Time spent in each third:")
	fmt.Printf("  defensive: %s\n", minSec(metrics.ZoneTimes.DefensiveS))
	fmt.Printf("  middle:    %s\n", minSec(metrics.ZoneTimes.MiddleS))
	fmt.Printf("  attacking: %s\n", minSec(metrics.ZoneTimes.AttackingS))
	fmt.Printf("Time spent sprinting (>%.1f m/s): %s\n", cfg.SprintSpeedMS, minSec(metrics.SprintTimeS))
	fmt.Printf("Quick turns (>%.0f deg after a sprint): %d\n", cfg.TurnAngleDeg, metrics.QuickTurns)
	fmt.Printf("Speed: avg %.2f m/s, max %.2f m/s, p50/p90/p95 %.2f/%.2f/%.2f m/s\n",
		metrics.AvgSpeedMS, metrics.MaxSpeedMS, metrics.SpeedP50, metrics.SpeedP90, metrics.SpeedP95)
	fmt.Printf("Positioning: centroid (%.1f, %.1f) m, dispersion %.1f m, mean heading %.0f deg\n",
		metrics.CentroidX, metrics.CentroidY, metrics.RadiusGyrationM, metrics.MeanHeadingDeg)

	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if outDir == "" {
		outDir = filepath.Dir(csvPath)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	heatmapPath := filepath.Join(outDir, "heatmap.png")
	if err := render.SavePNG(renderer.Heatmap(tr), heatmapPath); err != nil {
		return err
	}
	fmt.Printf("Heatmap saved to %s\n", heatmapPath)

	velocities, err := analyzer.Velocities(tr)
	if err != nil {
		return err
	}

	vectorPath := filepath.Join(outDir, "vectormap.png")
	if err := render.SavePNG(renderer.VectorMap(tr, velocities), vectorPath); err != nil {
		return err
	}
	fmt.Printf("Vector map saved to %s\n", vectorPath)

	if len(velocities) >= 2 {
		chartPath := filepath.Join(outDir, "speedchart.png")
		f, err := os.Create(chartPath)
		if err != nil {
			return &render.RenderError{Path: chartPath, Err: err}
		}
		if err := render.SpeedChart(velocities, cfg.SprintSpeedMS, f); err != nil {
			f.Close()
			return &render.RenderError{Path: chartPath, Err: err}
		}
		if err := f.Close(); err != nil {
			return &render.RenderError{Path: chartPath, Err: err}
		}
		fmt.Printf("Speed chart saved to %s\n", chartPath)
	} else {
		log.Printf("Skipping speed chart: trajectory too short")
	}

	return nil
}

// minSec formats seconds as "Xm Ys"
func minSec(seconds float64) string {
	s := int(seconds + 0.5)
	return fmt.Sprintf("%dm %02ds", s/60, s%60)
}
