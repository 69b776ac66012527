package bench

import (
	"fmt"
	"strings"
	"time"
)

type benchmarkLargeConfig struct {
	insertXUsers     int
	insertYBytes     int
	insertGoroutines int
}

// runBenchmarkLarge inserts X users with Y bytes of content and then
// queries all of them in a single query.
func runBenchmarkLarge(
	r runner, fullConfig benchmarksConfig,
) (benchmarkResult, error) {
	conf := fullConfig.benchmarkLargeConfig
	start := time.Now()

	email := strings.Repeat("Y", conf.insertYBytes)
	totalWrites, err := insertConcurrently(
		r,
		fmt.Sprintf("Inserting %d large users", conf.insertXUsers),
		conf.insertGoroutines,
		conf.insertXUsers,
		func(idx int) insertStmt {
			return insertStmt{
				sqlText: "INSERT INTO users (created, email, active) VALUES (?, ?, ?)",
				args:    []any{time.Now().Unix(), email, 1},
			}
		},
	)
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error when inserting: %w", err)
	}

	totalReads, err := r.QueryCount(
		"SELECT id, created, email, active FROM users ORDER BY id",
	)
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error when querying: %w", err)
	}

	return benchmarkResult{
		Name:        "Large",
		Duration:    time.Since(start),
		TotalReads:  totalReads,
		TotalWrites: totalWrites,
	}, nil
}
