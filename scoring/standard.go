package scoring

import (
	"errors"
	"fmt"

	"github.com/paramo/comala/board"
	"github.com/paramo/comala/move"
	"github.com/paramo/comala/tilemapping"
)

// Standard is the policy games use unless told otherwise. It checks that
// the placement is a legal crossword-game move geometrically; we are not
// checking the actual validity of any word, just the shape of the play.
// A play must sit in a single row or column with no gaps (letters already
// on the board may fill the middle of the span), must touch the center
// square when the board is empty, and must touch at least one existing
// tile after that.
//
// Scoring sums each placed tile's points times its square's letter bonus,
// then multiplies once by the largest word bonus among the covered
// squares. A bonus square only counts the first time a tile lands on it;
// afterwards it scores at face value.
var Standard Policy = PolicyFunc(standard)

func standard(b *board.GameBoard, placement move.Placement,
	ld *tilemapping.LetterDistribution) (int, error) {

	if len(placement) == 0 {
		return 0, errors.New("your play must place a new tile")
	}
	pl := placement.Copy()
	pl.Sort()

	for idx, pt := range pl {
		if !b.PosExists(pt.Row, pt.Col) {
			return 0, errors.New("play extends off of the board")
		}
		if idx > 0 && pt.Row == pl[idx-1].Row && pt.Col == pl[idx-1].Col {
			return 0, errors.New("the play places two tiles on the same square")
		}
		if b.HasLetter(pt.Row, pt.Col) {
			return 0, fmt.Errorf("row %d col %d: %w", pt.Row, pt.Col,
				board.ErrCellOccupied)
		}
		if pt.Tile == 0 {
			return 0, errors.New("a played blank must be designated as a letter")
		}
	}

	first, last := pl[0], pl[len(pl)-1]
	vertical := first.Col == last.Col && first.Row != last.Row
	ri, ci := 0, 1
	if vertical {
		ri, ci = ci, ri
	}
	for _, pt := range pl {
		if !vertical && pt.Row != first.Row || vertical && pt.Col != first.Col {
			return 0, errors.New("the play must be in a single row or column")
		}
	}

	boardEmpty := b.IsEmpty()
	touchesCenterSquare := false
	bordersATile := false

	pi := 0
	for r, c := first.Row, first.Col; r <= last.Row && c <= last.Col; r, c = r+ri, c+ci {
		if pi < len(pl) && pl[pi].Row == r && pl[pi].Col == c {
			if boardEmpty && r == b.CenterRow() && c == b.CenterCol() {
				touchesCenterSquare = true
			}
			// Only perpendicular hooks here; contact off the head and
			// tail of the span is checked below.
			for d := -1; d <= 1; d += 2 {
				checkrow, checkcol := r+ci*d, c+ri*d
				if b.PosExists(checkrow, checkcol) && b.HasLetter(checkrow, checkcol) {
					bordersATile = true
				}
			}
			pi++
		} else if b.HasLetter(r, c) {
			// Reading through a tile already on the board.
			bordersATile = true
		} else {
			return 0, errors.New("the play may not leave a gap between its tiles")
		}
	}
	if hr, hc := first.Row-ri, first.Col-ci; b.PosExists(hr, hc) && b.HasLetter(hr, hc) {
		bordersATile = true
	}
	if tr, tc := last.Row+ri, last.Col+ci; b.PosExists(tr, tc) && b.HasLetter(tr, tc) {
		bordersATile = true
	}

	if boardEmpty && !touchesCenterSquare {
		return 0, errors.New("the first play must touch the center square")
	}
	if boardEmpty && len(pl) < 2 {
		return 0, errors.New("your play must include at least two letters")
	}
	if !boardEmpty && !bordersATile {
		return 0, errors.New("your play must border a tile already on the board")
	}

	score := 0
	wordMultiplier := 1
	for _, pt := range pl {
		tileScore := ld.Score(pt.Tile)
		if !b.BonusConsumed(pt.Row, pt.Col) {
			bonus := b.GetBonus(pt.Row, pt.Col)
			tileScore *= bonus.LetterMultiplier()
			if wm := bonus.WordMultiplier(); wm > wordMultiplier {
				wordMultiplier = wm
			}
		}
		score += tileScore
	}
	return score * wordMultiplier, nil
}
