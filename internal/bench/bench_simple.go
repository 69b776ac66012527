package bench

import (
	"fmt"
	"time"
)

type benchmarkSimpleConfig struct {
	insertXUsers     int
	insertGoroutines int
}

// runBenchmarkSimple inserts X users and then queries all of them in a
// single query.
func runBenchmarkSimple(
	r runner, fullConfig benchmarksConfig,
) (benchmarkResult, error) {
	conf := fullConfig.benchmarkSimpleConfig
	start := time.Now()

	totalWrites, err := insertConcurrently(
		r,
		fmt.Sprintf("Inserting %d users", conf.insertXUsers),
		conf.insertGoroutines,
		conf.insertXUsers,
		func(idx int) insertStmt {
			return insertStmt{
				sqlText: "INSERT INTO users (created, email, active) VALUES (?, ?, ?)",
				args:    []any{time.Now().Unix(), fmt.Sprintf("user%d@example.com", idx), 1},
			}
		},
	)
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error when inserting: %w", err)
	}

	bar := newStepBar("Reading users", 1)
	totalReads, err := r.QueryCount(
		"SELECT id, created, email, active FROM users ORDER BY id",
	)
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error when querying: %w", err)
	}
	bar.Done()

	return benchmarkResult{
		Name:        "Simple",
		Duration:    time.Since(start),
		TotalReads:  totalReads,
		TotalWrites: totalWrites,
	}, nil
}
