package worker

import (
	"github.com/artem-kuzishchin/chessrules/internal/chess"
	"github.com/artem-kuzishchin/chessrules/internal/engine"
)

// CountNodes applies the item's move to its private position copy and
// counts the leaf nodes Depth-1 plies below it.
func CountNodes(item WorkItem) ProcessResult {
	res := ProcessResult{Index: item.Index, Move: item.Move}
	next, err := item.Move.Apply(item.Position)
	if err != nil {
		res.Err = err
		return res
	}
	res.Nodes, res.Err = engine.Perft(&next, item.Depth-1)
	return res
}

// Divide is engine.Divide spread over workers goroutines. Entries come
// back in root move order. The first error stops the remaining work.
func Divide(pos *chess.Position, depth, workers int) ([]engine.DivideEntry, error) {
	moves, err := engine.GenerateMoves(pos)
	if err != nil {
		return nil, err
	}
	if depth < 1 {
		depth = 1
	}

	pool := NewPool(CountNodes, WithWorkers(workers), WithBufferSize(len(moves)+1))
	pool.Start()

	go func() {
		for i, m := range moves {
			pool.Submit(WorkItem{Position: *pos, Move: m, Depth: depth, Index: i})
		}
		pool.Close()
	}()

	entries := make([]engine.DivideEntry, len(moves))
	var firstErr error
	for res := range pool.Results() {
		if res.Err != nil {
			if firstErr == nil {
				firstErr = res.Err
			}
			pool.Stop()
			continue
		}
		entries[res.Index] = engine.DivideEntry{Move: res.Move, Nodes: res.Nodes}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return entries, nil
}

// Total sums the node counts of a divide.
func Total(entries []engine.DivideEntry) uint64 {
	var n uint64
	for _, e := range entries {
		n += e.Nodes
	}
	return n
}
