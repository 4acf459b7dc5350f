// Command pica-bench runs the engine's searcher over fixed fixture
// suites and reports accuracy/throughput, exercising the parts of the
// teacher's dependency stack that the engine proper (cmd/pica) has no
// use for: a terminal progress bar, an optional live TUI dashboard, an
// optional HTML chart export, and optional PGN-derived fixtures.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"
	pgn "gopkg.in/freeeve/pgn.v1"

	"github.com/pica-engine/pica/internal/bench"
)

func main() {
	depth := flag.Int("depth", 5, "search depth for every fixture")
	watch := flag.Bool("watch", false, "show a live terminal dashboard while the suite runs")
	chartPath := flag.String("chart", "", "write a per-fixture nodes-searched HTML chart to this path")
	pgnPath := flag.String("pgn", "", "extract additional ad hoc fixtures from a PGN file")
	flag.Parse()

	suite := bench.BratkoKopec()
	suite.Fixtures = append(suite.Fixtures, bench.Endgames().Fixtures...)

	if *pgnPath != "" {
		extra, err := loadPGNFixtures(*pgnPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "pica-bench:", err)
			os.Exit(1)
		}
		suite.Fixtures = append(suite.Fixtures, extra...)
	}

	if *watch {
		runWithDashboard(suite, *depth, *chartPath)
		return
	}
	runWithProgressBar(suite, *depth, *chartPath)
}

// runWithProgressBar is the default, non-interactive mode: a text
// progress bar, grounded on the teacher's tuner.go use of
// schollz/progressbar.
func runWithProgressBar(suite bench.Suite, depth int, chartPath string) {
	bar := progressbar.NewOptions(
		len(suite.Fixtures),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("fixture"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	results := bench.Run(suite, depth, func(bench.Result) {
		_ = bar.Add(1)
	})
	_ = bar.Close()

	report(results)
	if chartPath != "" {
		writeChart(chartPath, results)
	}
}

// runWithDashboard renders a live progress gauge (percent of fixtures
// done) and a running correct-vs-total bar chart via gizak/termui,
// updated as each fixture completes.
func runWithDashboard(suite bench.Suite, depth int, chartPath string) {
	if err := ui.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "pica-bench: termui init:", err)
		os.Exit(1)
	}
	defer ui.Close()

	gauge := widgets.NewGauge()
	gauge.Title = "Progress"
	gauge.SetRect(0, 0, 60, 3)

	histogram := widgets.NewBarChart()
	histogram.Title = "Correct vs Total"
	histogram.SetRect(0, 3, 60, 13)
	histogram.Labels = []string{"correct", "total"}
	histogram.Data = []float64{0, 0}

	ui.Render(gauge, histogram)

	total := len(suite.Fixtures)
	done, correct := 0, 0

	results := bench.Run(suite, depth, func(r bench.Result) {
		done++
		if r.Correct {
			correct++
		}
		gauge.Percent = done * 100 / total
		histogram.Data = []float64{float64(correct), float64(done)}
		ui.Render(gauge, histogram)
	})

	report(results)
	if chartPath != "" {
		writeChart(chartPath, results)
	}
}

func report(results []bench.Result) {
	correct, known := 0, 0
	var totalNodes uint64

	for _, r := range results {
		totalNodes += r.Nodes
		if r.Fixture.BestMove != "" {
			known++
			if r.Correct {
				correct++
			}
		}
	}

	fmt.Printf("pica-bench: %d/%d fixtures with a known best move matched (%d total nodes)\n", correct, known, totalNodes)
}

// writeChart renders per-fixture node counts as an HTML bar chart,
// grounded on the teacher's tuner.go use of go-echarts to plot tuning
// error curves. The move-index histogram is not part of the chart.
func writeChart(path string, results []bench.Result) {
	names := make([]string, len(results))
	nodes := make([]opts.BarData, len(results))

	for i, r := range results {
		names[i] = r.Fixture.Name
		nodes[i] = opts.BarData{Value: r.Nodes}
	}

	bar := charts.NewBar()
	bar.SetXAxis(names).AddSeries("nodes searched", nodes)

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pica-bench: chart:", err)
		return
	}
	defer f.Close()

	_ = bar.Render(f)
}

// loadPGNFixtures scans a PGN file and turns each game's final position
// into a bench fixture with no known best move, mirroring the teacher's
// tuner/datagen PGN scanning but repurposed from eval-weight datagen to
// bench-fixture extraction (see SPEC_FULL.md §11).
func loadPGNFixtures(path string) ([]bench.Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := pgn.NewScanner(bufio.NewReader(f))

	var fixtures []bench.Fixture
	for i := 0; scanner.Next(); i++ {
		game, err := scanner.Scan()
		if err != nil {
			continue
		}

		board := game.Board()
		for _, mv := range game.Moves {
			board.MakeMove(mv)
		}

		fixtures = append(fixtures, bench.Fixture{
			Name: fmt.Sprintf("pgn-%d", i),
			FEN:  board.String(),
		})
	}

	return fixtures, nil
}
