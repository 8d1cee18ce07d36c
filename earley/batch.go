package earley

import (
	"context"
	"runtime"
	"sync"

	"github.com/dhamidi/earley/grammar"
)

// RecognizeAll recognizes every word with r, spreading words over up to
// workers goroutines (runtime.NumCPU() when workers <= 0). Each word gets
// its own chart; only the grammar is shared. results[i] belongs to words[i].
// If ctx is cancelled before all words are done, RecognizeAll returns
// ctx.Err() and the results computed so far.
func (r *Recognizer) RecognizeAll(ctx context.Context, words [][]grammar.Symbol, workers int) ([]bool, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, len(words))

	results := make([]bool, len(words))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.Recognize(words[i])
			}
		}()
	}

	var err error
feed:
	for i := range words {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results, err
}

// RecognizeAll is a shorthand for New(g).RecognizeAll.
func RecognizeAll(ctx context.Context, g *grammar.Grammar, words [][]grammar.Symbol, workers int) ([]bool, error) {
	return New(g).RecognizeAll(ctx, words, workers)
}
