package workload

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
)

type (
	// BenchConfig describes a randomized workload: Size insertions of keys
	// drawn from [0, Size), then Erase erasures of keys drawn the same way.
	BenchConfig struct {
		Container string
		Size      int
		Erase     int
		Seed      uint64
	}

	BenchResult struct {
		Inserted int
		Erased   int
		Len      int
		Height   int
		Elapsed  time.Duration
	}
)

// Bench runs the workload described by cfg and verifies the tree at the end.
// The same configuration always produces the same tree.
func Bench(ctx context.Context, log zerolog.Logger, cfg BenchConfig) (*BenchResult, error) {
	if cfg.Size < 0 || cfg.Erase < 0 {
		return nil, fmt.Errorf("invalid bench size %d or erase count %d", cfg.Size, cfg.Erase)
	}
	c, err := newContainer(cfg.Container)
	if err != nil {
		return nil, err
	}
	r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	n := max(cfg.Size, 1)
	res := &BenchResult{}

	start := time.Now()
	for i := range cfg.Size {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if c.insert(r.IntN(n), "") {
			res.Inserted++
		}
	}
	log.Debug().Int("inserted", res.Inserted).Dur("elapsed", time.Since(start)).Msg("insert phase done")
	for i := range cfg.Erase {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if c.erase(r.IntN(n)) {
			res.Erased++
		}
	}
	res.Elapsed = time.Since(start)

	if err := c.verify(); err != nil {
		return nil, fmt.Errorf("bench %s: %w", cfg.Container, err)
	}
	res.Len = c.len()
	res.Height = c.height()
	log.Info().
		Str("container", cfg.Container).
		Int("size", cfg.Size).
		Int("erase", cfg.Erase).
		Uint64("seed", cfg.Seed).
		Int("len", res.Len).
		Int("height", res.Height).
		Dur("elapsed", res.Elapsed).
		Msg("bench done")
	return res, nil
}
