package game

import (
	"github.com/paramo/comala/board"
	"github.com/paramo/comala/tilemapping"
)

// Position is a read-only snapshot of a game at one point in time. Mutating
// the game after taking one does not change it.
type Position struct {
	Board   *board.GameBoard
	Racks   []tilemapping.MachineWord
	Scores  []int
	InBag   int
	OnTurn  int
	Turn    int
	Playing PlayState
}

// Position snapshots the current game state.
func (g *Game) Position() *Position {
	racks := make([]tilemapping.MachineWord, len(g.players))
	scores := make([]int, len(g.players))
	for i, p := range g.players {
		racks[i] = p.rack.TilesOn()
		scores[i] = p.points
	}
	return &Position{
		Board:   g.board.Copy(),
		Racks:   racks,
		Scores:  scores,
		InBag:   g.bag.TilesRemaining(),
		OnTurn:  g.onturn,
		Turn:    g.turnnum,
		Playing: g.playing,
	}
}
