package bench

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sqlitekit/sqlitekit/internal/util/numutil"
	"github.com/sqlitekit/sqlitekit/internal/version"
)

// benchmarkResult stores the outcome of a benchmark.
type benchmarkResult struct {
	Name        string
	Duration    time.Duration
	TotalReads  uint64
	TotalWrites uint64
}

// Run executes the same workloads against the sqlitekit wrapper and
// mattn/go-sqlite3 through database/sql, and prints the results.
func Run(ctx context.Context) error {
	fmt.Println(version.BenchVersion())

	tmpDir, err := os.MkdirTemp("", "litebench_*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	mattn, err := newMattnRunner(tmpDir)
	if err != nil {
		return fmt.Errorf("error opening mattn/go-sqlite3 db: %w", err)
	}
	defer mattn.Close()

	kit, err := newKitRunner(tmpDir, 10)
	if err != nil {
		return fmt.Errorf("error opening sqlitekit db: %w", err)
	}
	defer kit.Close()

	fmt.Println("\n--- Benchmarks for mattn/go-sqlite3 ---")
	mattnResults, err := runBenchmark(mattn, getMattnConfig())
	if err != nil {
		return fmt.Errorf("error benchmarking mattn/go-sqlite3: %w", err)
	}
	printResults(mattnResults)

	fmt.Println("\n--- Benchmarks for sqlitekit ---")
	kitResults, err := runBenchmark(kit, getKitConfig())
	if err != nil {
		return fmt.Errorf("error benchmarking sqlitekit: %w", err)
	}
	printResults(kitResults)

	return nil
}

func printResults(results []benchmarkResult) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Color.Header = text.Colors{text.FgCyan, text.Bold}
	tw.AppendHeader(table.Row{"Name", "Reads", "Writes", "Duration"})

	for _, r := range results {
		tw.AppendRow(table.Row{
			r.Name,
			numutil.IntWithCommas(int(r.TotalReads)),
			numutil.IntWithCommas(int(r.TotalWrites)),
			r.Duration,
		})
	}

	fmt.Println(tw.Render())
}

// runBenchmark executes all benchmarks and returns results.
//
// It recreates the schema before each benchmark.
func runBenchmark(r runner, cfg benchmarksConfig) ([]benchmarkResult, error) {
	benchs := []func(runner, benchmarksConfig) (benchmarkResult, error){
		runBenchmarkSimple,
		runBenchmarkComplex,
		runBenchmarkMany,
		runBenchmarkLarge,
	}

	var results []benchmarkResult

	for _, bench := range benchs {
		if err := recreateSchema(r); err != nil {
			return nil, err
		}

		res, err := bench(r, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}
