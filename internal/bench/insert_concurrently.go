package bench

import (
	"sync"
	"sync/atomic"
)

// insertStmt is one statement produced by a workload generator.
type insertStmt struct {
	sqlText string
	args    []any
}

// insertConcurrently runs total generated statements over the given
// number of goroutines and returns the summed rows affected.
func insertConcurrently(
	r runner,
	description string,
	goroutines int,
	total int,
	gen func(idx int) insertStmt,
) (uint64, error) {
	var totalWrites uint64

	wg := sync.WaitGroup{}
	wgch := make(chan bool, goroutines)
	errChan := make(chan error, total)
	bar := newStepBar(description, total)

	for idx := 0; idx < total; idx++ {
		idx := idx
		wg.Add(1)
		wgch <- true

		go func() {
			defer func() {
				wg.Done()
				<-wgch
			}()

			stmt := gen(idx)
			affected, err := r.Exec(stmt.sqlText, stmt.args...)
			if err != nil {
				errChan <- err
				return
			}

			bar.Inc()
			atomic.AddUint64(&totalWrites, uint64(affected))
		}()
	}

	wg.Wait()
	close(wgch)
	close(errChan)

	for e := range errChan {
		if e != nil {
			return 0, e
		}
	}

	bar.Done()
	return totalWrites, nil
}
