package solver

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"svw.info/megakolmio/internal/board"
	"svw.info/megakolmio/internal/catalog"
	"svw.info/megakolmio/internal/ports"
)

// ErrStop can be returned by an emit callback to end the search early without error.
var ErrStop = errors.New("stop search")

// BacktrackingSolver walks every placement and rotation depth first,
// copying the board on each branch.
type BacktrackingSolver struct {
	cat *catalog.Catalog
}

func NewBacktrackingSolver(cat *catalog.Catalog) *BacktrackingSolver {
	if cat == nil {
		cat = catalog.Standard()
	}
	return &BacktrackingSolver{cat: cat}
}

// EmitFunc receives each complete, fully matching board in discovery order.
type EmitFunc func(board.State) error

type walk struct {
	ctx   context.Context
	emit  EmitFunc
	stats ports.Stats
}

// Enumerate runs the search from an empty board.
func (s *BacktrackingSolver) Enumerate(ctx context.Context, emit EmitFunc) (ports.Stats, error) {
	return s.EnumerateFrom(ctx, board.New(s.cat), emit)
}

// EnumerateFrom runs the search below root. Solutions come out depth first,
// lowest position, rotation and catalog index first.
func (s *BacktrackingSolver) EnumerateFrom(ctx context.Context, root board.State, emit EmitFunc) (ports.Stats, error) {
	start := time.Now()
	w := &walk{ctx: ctx, emit: emit}
	err := w.solve(root)
	w.stats.Duration = time.Since(start)
	observe(w.stats)
	if errors.Is(err, ErrStop) {
		err = nil
	}
	return w.stats, err
}

func (w *walk) solve(b board.State) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	w.stats.Nodes++
	if !b.Consistent(true) {
		w.stats.Pruned++
		return nil
	}
	if b.Complete() && b.Consistent(false) {
		w.stats.Solutions++
		if err := w.emit(b); err != nil {
			return err
		}
	}
	for next, ok := b.First(); ok; next, ok = next.Next() {
		if err := w.solve(next); err != nil {
			return err
		}
	}
	return nil
}
