package kwengine

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// SamplerConfig configures a Collect run: a seed layout shuffled
// independently by each worker, the analyzer/evaluator pair to score it
// with, how many random layouts to sample in total, and how many workers
// share that work. Workers defaults to DefaultSamplerWorkers when zero or
// negative, and is capped at four times runtime.NumCPU().
type SamplerConfig struct {
	Seed      Layout
	Analyzer  *Analyzer
	Evaluator *Evaluator
	Pin       int
	Samples   int
	Workers   int
	Writer    io.Writer
}

// DefaultSamplerWorkers mirrors the reference implementation's Collect
// mode, which defaults to a fixed worker count rather than scaling with
// the host purely off NumCPU.
const DefaultSamplerWorkers = 64

// Collect draws cfg.Samples random layouts (reachable from cfg.Seed by
// shuffling the free positions), scores each one, and writes one
// tab-separated line per sample — score followed by the full stats
// vector — to cfg.Writer. Samples are drawn by cfg.Workers goroutines
// running concurrently, each with its own RNG and scratch buffers;
// output lines are serialized through a mutex so they never interleave.
// Collect returns promptly with ctx.Err() if ctx is canceled, and
// propagates the first worker error (e.g. a write failure) to every
// other worker via errgroup's shared context.
func Collect(ctx context.Context, cfg SamplerConfig) error {
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultSamplerWorkers
	}
	if workers > runtime.NumCPU()*4 {
		workers = runtime.NumCPU() * 4
	}

	share := cfg.Samples / workers
	remainder := cfg.Samples % workers

	var writeMu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		n := share
		if w < remainder {
			n++
		}
		g.Go(func() error {
			rng := newWorkerRand()
			stats := make([]float64, len(cfg.Analyzer.Data.Metrics))
			for i := 0; i < n; i++ {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				layout := cfg.Seed.Clone()
				layout.ShufflePinned(cfg.Pin, rng)
				clearFloats(stats)
				cfg.Analyzer.RecalcStats(stats, layout)
				score := cfg.Evaluator.Eval(stats)

				line := formatSample(score, stats)
				writeMu.Lock()
				_, err := io.WriteString(cfg.Writer, line)
				writeMu.Unlock()
				if err != nil {
					return fmt.Errorf("collect: write sample: %w", err)
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// formatSample renders one sample as a tab-separated line: the scalar
// score followed by every per-metric stat, terminated with a newline.
func formatSample(score float64, stats []float64) string {
	line := fmt.Sprintf("%g", score)
	for _, s := range stats {
		line += fmt.Sprintf("\t%g", s)
	}
	return line + "\n"
}

// newWorkerRand seeds a *rand.Rand from crypto/rand entropy so concurrent
// workers never share (or accidentally correlate) a seed derived from,
// say, the wall clock at goroutine-launch time.
func newWorkerRand() *rand.Rand {
	var seed [8]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		// crypto/rand failing is a platform-level problem, not one
		// Collect can sensibly recover from; unrecoverable sample bias
		// would be a worse outcome than panicking here.
		panic(fmt.Errorf("collect: seeding worker RNG: %w", err))
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:]))))
}
