package cmd

import (
	"bufio"
	"devcalc/calc"
	"devcalc/logging"
	"devcalc/result"
	"fmt"
	"io"
	"strings"
	"sync"
)

// runBatch evaluates every expression in r, one per line, and displays the
// outcomes in input order.  Blank lines and lines starting with `#` are
// skipped.  The expressions are evaluated concurrently by the configured
// number of workers.  It returns the number of expressions that failed.
func (s *session) runBatch(r io.Reader) (int, error) {
	var entries []logging.BatchEntry

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		entries = append(entries, logging.BatchEntry{Line: line, Input: text})
	}

	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("error reading batch input: %w", err)
	}

	// each worker writes only to the entries it was handed so the entries need
	// no further synchronization
	rangeLost := make([]bool, len(entries))
	jobs := make(chan int)
	wg := &sync.WaitGroup{}
	for w := 0; w < s.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range jobs {
				v, err := calc.EvaluateValue(entries[i].Input)
				if err != nil {
					entries[i].Err = err
					continue
				}

				res := result.Format(v)
				entries[i].Result = &res
				rangeLost[i] = outOfRange(v, res)
			}
		}()
	}

	for i := range entries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	failures := 0
	for i, entry := range entries {
		if rangeLost[i] {
			logging.LogCalcWarning(entry.Input, "Range", rangeWarning)
		}

		if entry.Err != nil {
			failures++
			s.trace.Debug().Int("line", entry.Line).Str("input", entry.Input).Err(entry.Err).Msg("batch line failed")
		}
	}

	s.trace.Debug().Int("lines", len(entries)).Int("failures", failures).Msg("batch finished")

	if logging.ShouldDisplay() {
		if err := logging.RenderBatch(s.out, entries, s.opts); err != nil {
			return failures, err
		}
	}

	return failures, nil
}
