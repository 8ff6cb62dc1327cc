// Package hashing tracks position repetitions for the threefold rule.
package hashing

import "github.com/artem-kuzishchin/chessrules/internal/chess"

// square is the identity-free content of a board square.
type square struct {
	Kind   chess.Kind
	Colour chess.Colour
}

// Key is the equivalence key of a position for repetition purposes: two
// positions repeat when their keys are equal. Move counters and piece
// identities are excluded.
type Key struct {
	Squares   [chess.BoardSize][chess.BoardSize]square
	ToMove    chess.Colour
	Castling  chess.CastlingRights
	EnPassant chess.EnPassantTarget
}

// KeyOf builds the equivalence key of pos.
func KeyOf(pos *chess.Position) Key {
	k := Key{
		ToMove:    pos.ToMove,
		Castling:  pos.Castling,
		EnPassant: pos.EnPassant,
	}
	for file := range pos.Board.Squares {
		for rank, p := range pos.Board.Squares[file] {
			if !p.IsEmpty() {
				k.Squares[file][rank] = square{Kind: p.Kind, Colour: p.Colour}
			}
		}
	}
	return k
}

// Entry is one distinct position seen in a game.
type Entry struct {
	Hash  uint64
	Key   Key
	Count int
}

// History records every position reached in one game, in the order each
// was first seen. Entries are bucketed by Zobrist hash and confirmed by
// comparing full keys, so hash collisions never merge distinct positions.
// A History is not safe for concurrent use.
type History struct {
	entries []Entry
	buckets map[uint64][]int
	plies   int
}

// NewHistory creates a history whose first entry is the starting
// position.
func NewHistory(start *chess.Position) *History {
	h := &History{buckets: make(map[uint64][]int)}
	h.Record(start)
	return h
}

// Record adds pos to the history and returns how often it has now
// occurred.
func (h *History) Record(pos *chess.Position) int {
	h.plies++
	hash := Hash(pos)
	key := KeyOf(pos)
	if i, ok := h.find(hash, key); ok {
		h.entries[i].Count++
		return h.entries[i].Count
	}
	h.entries = append(h.entries, Entry{Hash: hash, Key: key, Count: 1})
	h.buckets[hash] = append(h.buckets[hash], len(h.entries)-1)
	return 1
}

// Count returns how often pos has occurred.
func (h *History) Count(pos *chess.Position) int {
	if i, ok := h.find(Hash(pos), KeyOf(pos)); ok {
		return h.entries[i].Count
	}
	return 0
}

func (h *History) find(hash uint64, key Key) (int, bool) {
	for _, i := range h.buckets[hash] {
		if h.entries[i].Key == key {
			return i, true
		}
	}
	return 0, false
}

// Len returns the number of distinct positions seen.
func (h *History) Len() int {
	return len(h.entries)
}

// Plies returns the number of positions recorded, repeats included.
func (h *History) Plies() int {
	return h.plies
}

// Entries returns a copy of the distinct positions in first-seen order.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// MaxCount returns the highest occurrence count of any position.
func (h *History) MaxCount() int {
	best := 0
	for _, e := range h.entries {
		if e.Count > best {
			best = e.Count
		}
	}
	return best
}
