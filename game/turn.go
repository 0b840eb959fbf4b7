package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paramo/comala/board"
	"github.com/paramo/comala/move"
	"github.com/paramo/comala/tilemapping"
	"github.com/rs/zerolog/log"
)

func (g *Game) curPlayer() *playerState {
	return g.players[g.onturn]
}

// PlacementFromTextMove turns coordinates and a word, as a player would type
// them, into the placement that play asks for on the current board. A letter
// written on a square that already holds a tile must match what is there and
// drops out of the placement as play-through; lowercase letters designate
// blanks.
func (g *Game) PlacementFromTextMove(coords, word string) (move.Placement, error) {
	row, col, vertical := move.FromBoardGameCoords(strings.ToUpper(coords))
	if row < 0 {
		return nil, fmt.Errorf("cannot parse coordinates %v", coords)
	}
	tiles, err := tilemapping.ToMachineWord(word, g.alph)
	if err != nil {
		return nil, err
	}
	if err := modifyForPlaythrough(tiles, g.board, vertical, row, col); err != nil {
		return nil, err
	}
	placement := move.Placement{}
	for idx, t := range tiles {
		if t == 0 {
			continue
		}
		r, c := row, col
		if vertical {
			r += idx
		} else {
			c += idx
		}
		placement = append(placement, move.PlacedTile{Row: r, Col: c, Tile: t})
	}
	if len(placement) == 0 {
		return nil, errors.New("your play must place a new tile")
	}
	return placement, nil
}

// PlayTextMove is a convenience wrapper for shells and bots; it builds the
// placement for the given coordinates and word and submits it.
func (g *Game) PlayTextMove(coords, word string) MoveResult {
	placement, err := g.PlacementFromTextMove(coords, word)
	if err != nil {
		return MoveResult{Message: err.Error()}
	}
	return g.SubmitMove(placement)
}

// moveFromPlacement rebuilds the word the placement spans, with play-through
// markers for any board tiles inside the span, so the event log can show the
// play the way a score sheet would.
func (g *Game) moveFromPlacement(placement move.Placement,
	leave tilemapping.MachineWord) *move.Move {

	pl := placement.Copy()
	pl.Sort()
	first, last := pl[0], pl[len(pl)-1]
	vertical := first.Col == last.Col && first.Row != last.Row
	ri, ci := 0, 1
	if vertical {
		ri, ci = ci, ri
	}
	var tiles tilemapping.MachineWord
	pi := 0
	for r, c := first.Row, first.Col; r <= last.Row && c <= last.Col; r, c = r+ri, c+ci {
		if pi < len(pl) && pl[pi].Row == r && pl[pi].Col == c {
			tiles = append(tiles, pl[pi].Tile)
			pi++
		} else {
			tiles = append(tiles, 0)
		}
	}
	return move.NewPlacementMove(pl, tiles, leave, vertical, first.Row, first.Col, g.alph)
}

// modifyForPlaythrough rewrites, in place, any letter in tiles that sits on
// an occupied square into a play-through marker. The written letter has to
// match the one on the board, ignoring blank designations.
func modifyForPlaythrough(tiles tilemapping.MachineWord, b *board.GameBoard,
	vertical bool, row int, col int) error {

	currow := row
	curcol := col
	for idx := range tiles {
		if vertical {
			currow = row + idx
		} else {
			curcol = col + idx
		}
		if !b.PosExists(currow, curcol) {
			log.Error().Int("currow", currow).Int("curcol", curcol).
				Int("dim", b.Dim()).Msg("err-out-of-bounds")
			return errors.New("play out of bounds of board")
		}
		if tiles[idx] == 0 {
			// Written as play-through already.
			continue
		}
		if b.HasLetter(currow, curcol) {
			onboard := b.GetLetter(currow, curcol)
			if onboard != tiles[idx] && onboard.Unblank() != tiles[idx].Unblank() {
				return fmt.Errorf("the play-through tile is incorrect (board %v, specified %v)",
					int(onboard), int(tiles[idx]))
			}
			tiles[idx] = 0
		}
	}
	return nil
}
