package workload

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

type (
	// Runner replays scripts.
	Runner struct {
		log    zerolog.Logger
		verify bool
	}

	// Result is the outcome of a replayed script.
	Result struct {
		// Lines holds one line per query operation and key, in order.
		Lines  []string
		Len    int
		Height int
		// Dump is the final tree rendered as nested (key left right) lists.
		Dump string
	}
)

// NewRunner returns a Runner logging to log. If verify is set, the tree
// invariants are checked after every mutating operation.
func NewRunner(log zerolog.Logger, verify bool) *Runner {
	return &Runner{log: log, verify: verify}
}

// Run applies the operations of s to a new container of the kind s names.
// It stops at the first invariant violation or when ctx is done.
func (r *Runner) Run(ctx context.Context, s *Script) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	c, err := newContainer(s.Container)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	for i, op := range s.Ops {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines, mutated := r.apply(c, op)
		res.Lines = append(res.Lines, lines...)
		if mutated && r.verify {
			if err := c.verify(); err != nil {
				r.log.Error().Int("op", i).Str("name", op.Op).Err(err).Msg("invariant violated")
				return nil, fmt.Errorf("op %d (%s): %w", i, op.Op, err)
			}
		}
	}
	res.Len = c.len()
	res.Height = c.height()
	res.Dump = c.dump()
	r.log.Info().
		Str("container", s.Container).
		Int("ops", len(s.Ops)).
		Int("len", res.Len).
		Int("height", res.Height).
		Msg("script done")
	return res, nil
}

// apply performs op on c and reports the result lines and whether c may
// have changed.
func (r *Runner) apply(c container, op Op) (lines []string, mutated bool) {
	line := func(key int, text any) {
		lines = append(lines, fmt.Sprintf("%s %d: %v", op.Op, key, text))
	}
	switch op.Op {
	case OpInsert, OpSet:
		for _, k := range op.Keys {
			var added bool
			if op.Op == OpInsert {
				added = c.insert(k, op.Value)
			} else {
				added = c.set(k, op.Value)
			}
			r.log.Debug().Str("op", op.Op).Int("key", k).Bool("added", added).Send()
		}
		return nil, len(op.Keys) > 0
	case OpErase:
		for _, k := range op.Keys {
			removed := c.erase(k)
			r.log.Debug().Str("op", op.Op).Int("key", k).Bool("removed", removed).Send()
		}
		return nil, len(op.Keys) > 0
	case OpClear:
		c.clear()
		r.log.Debug().Str("op", op.Op).Send()
		return nil, true
	case OpFind:
		for _, k := range op.Keys {
			line(k, c.find(k))
		}
	case OpAt:
		for _, k := range op.Keys {
			line(k, c.at(k))
		}
	case OpCount:
		for _, k := range op.Keys {
			line(k, c.count(k))
		}
	case OpLowerBound:
		for _, k := range op.Keys {
			line(k, c.lowerBound(k))
		}
	case OpUpperBound:
		for _, k := range op.Keys {
			line(k, c.upperBound(k))
		}
	case OpEqualRange:
		for _, k := range op.Keys {
			line(k, c.equalRange(k))
		}
	case OpLen:
		lines = append(lines, fmt.Sprintf("len: %d", c.len()))
	case OpList:
		lines = append(lines, "list: "+c.list())
	}
	return lines, false
}
