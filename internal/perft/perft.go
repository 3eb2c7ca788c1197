// Package perft counts the leaf nodes of the legal move tree, the standard
// check for move generation.
package perft

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/hailam/bitmove/internal/board"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidDepth is returned for negative depths, and for depth 0 where a
// per-move breakdown is requested.
var ErrInvalidDepth = errors.New("invalid perft depth")

// Cache stores subtree node counts keyed by position hash and depth.
// Implementations must be safe for concurrent use.
type Cache interface {
	Lookup(hash uint64, depth int) (uint64, bool, error)
	Store(hash uint64, depth int, nodes uint64) error
}

// Options controls Parallel.
type Options struct {
	Workers int   // concurrent root moves, defaults to GOMAXPROCS
	Cache   Cache // optional
}

// Count returns the number of leaf nodes at depth. pos is not modified.
func Count(pos *board.Position, depth int) (uint64, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	return count(context.Background(), pos.Copy(), depth, nil)
}

// Cached is Count with subtree results read from and written to cache.
func Cached(pos *board.Position, depth int, cache Cache) (uint64, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	return count(context.Background(), pos.Copy(), depth, cache)
}

// count walks the tree below pos. Interior nodes above the frontier check
// ctx so a cancelled run unwinds without finishing its subtree.
func count(ctx context.Context, pos *board.Position, depth int, cache Cache) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	if depth > 1 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
	}

	var hash uint64
	if cache != nil && depth > 1 {
		hash = pos.Hash()
		nodes, ok, err := cache.Lookup(hash, depth)
		if err != nil {
			return 0, err
		}
		if ok {
			return nodes, nil
		}
	}

	moves, err := pos.GenerateLegalMoves()
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(moves.Len()), nil
	}

	var nodes uint64
	for _, m := range moves.Slice() {
		undo, err := pos.DoMove(m)
		if err != nil {
			return 0, err
		}
		n, err := count(ctx, pos, depth-1, cache)
		pos.UndoMove(m, undo)
		if err != nil {
			return 0, err
		}
		nodes += n
	}

	if cache != nil {
		if err := cache.Store(hash, depth, nodes); err != nil {
			return 0, err
		}
	}
	return nodes, nil
}

// Divide returns the leaf count below each legal root move, keyed by the
// move in UCI form.
func Divide(pos *board.Position, depth int) (map[string]uint64, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: divide needs depth >= 1, got %d", ErrInvalidDepth, depth)
	}

	root := pos.Copy()
	moves, err := root.GenerateLegalMoves()
	if err != nil {
		return nil, err
	}

	div := make(map[string]uint64, moves.Len())
	for _, m := range moves.Slice() {
		undo, err := root.DoMove(m)
		if err != nil {
			return nil, err
		}
		n, err := count(context.Background(), root, depth-1, nil)
		root.UndoMove(m, undo)
		if err != nil {
			return nil, err
		}
		div[m.String()] = n
	}
	return div, nil
}

// Parallel is Divide with root moves spread over workers. Each worker owns
// its own copy of the position. Cancelling ctx stops the workers mid-tree
// and returns ctx.Err().
func Parallel(ctx context.Context, pos *board.Position, depth int, opts Options) (map[string]uint64, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: divide needs depth >= 1, got %d", ErrInvalidDepth, depth)
	}

	moves, err := pos.GenerateLegalMoves()
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	div := make(map[string]uint64, moves.Len())
	for _, m := range moves.Slice() {
		m := m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child := pos.Copy()
			if _, err := child.DoMove(m); err != nil {
				return err
			}
			n, err := count(ctx, child, depth-1, opts.Cache)
			if err != nil {
				return err
			}
			mu.Lock()
			div[m.String()] = n
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return div, nil
}

// Total sums a divide result.
func Total(div map[string]uint64) uint64 {
	var total uint64
	for _, n := range div {
		total += n
	}
	return total
}

// Sorted returns the moves of a divide result in lexical order.
func Sorted(div map[string]uint64) []string {
	keys := maps.Keys(div)
	sort.Strings(keys)
	return keys
}
