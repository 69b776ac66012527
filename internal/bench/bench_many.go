package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

type benchmarkManyConfig struct {
	insertXUsers     int
	queryUsersYTimes int
	insertGoroutines int
	queryGoroutines  int
}

// runBenchmarkMany inserts X users and then queries all users Y times.
// This simulates a read-heavy workload.
func runBenchmarkMany(
	r runner, fullConfig benchmarksConfig,
) (benchmarkResult, error) {
	conf := fullConfig.benchmarkManyConfig
	start := time.Now()
	var totalReads uint64

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

	wgQuery := sync.WaitGroup{}
	chQuery := make(chan bool, conf.queryGoroutines)
	errQuery := make(chan error, conf.queryUsersYTimes)
	bar := newStepBar(
		fmt.Sprintf("Querying all users %d times", conf.queryUsersYTimes),
		conf.queryUsersYTimes,
	)

	for i := 0; i < conf.queryUsersYTimes; i++ {
		wgQuery.Add(1)
		chQuery <- true
		go func() {
			defer func() {
				wgQuery.Done()
				<-chQuery
			}()
			reads, err := r.QueryCount(
				"SELECT id, created, email, active FROM users ORDER BY id",
			)
			if err != nil {
				errQuery <- err
				return
			}
			atomic.AddUint64(&totalReads, reads)
			bar.Inc()
		}()
	}

	wgQuery.Wait()
	close(chQuery)
	close(errQuery)

	for e := range errQuery {
		if e != nil {
			return benchmarkResult{}, fmt.Errorf("error when querying: %w", e)
		}
	}
	bar.Done()

	return benchmarkResult{
		Name:        "Many",
		Duration:    time.Since(start),
		TotalReads:  totalReads,
		TotalWrites: totalWrites,
	}, nil
}
