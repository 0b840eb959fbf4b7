// Package scoring decides whether a proposed tile placement is a legal
// play and how many points it is worth. Policies are pluggable so a host
// can swap in anything from a scripted test verdict to a full
// dictionary-backed validator; the engine only cares about the verdict
// and the point total.
package scoring

import (
	"github.com/paramo/comala/board"
	"github.com/paramo/comala/move"
	"github.com/paramo/comala/tilemapping"
)

// Policy turns a placement into a verdict. Evaluate must treat the board
// as read-only; consuming bonus squares is the game's job, after it has
// decided to apply the move. A non-nil error is a rejection and its text
// is the reason shown to the player.
type Policy interface {
	Evaluate(b *board.GameBoard, placement move.Placement,
		ld *tilemapping.LetterDistribution) (int, error)
}

// PolicyFunc adapts a plain function to the Policy interface.
type PolicyFunc func(b *board.GameBoard, placement move.Placement,
	ld *tilemapping.LetterDistribution) (int, error)

func (f PolicyFunc) Evaluate(b *board.GameBoard, placement move.Placement,
	ld *tilemapping.LetterDistribution) (int, error) {
	return f(b, placement, ld)
}
