package board

import (
	"errors"
	"fmt"
	"os"

	"github.com/paramo/comala/tilemapping"
)

var (
	ColorSupport = os.Getenv("COMALA_DISABLE_COLOR") != "on"
)

// ErrCellOccupied is returned when a tile placement targets a cell that
// already holds a tile. The board is not modified.
var ErrCellOccupied = errors.New("that square already has a tile on it")

type BonusSquare byte

const (
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''

	NoBonus BonusSquare = ' '
)

// WordMultiplier returns the word multiplier this square grants, 1 if none.
func (b BonusSquare) WordMultiplier() int {
	switch b {
	case Bonus3WS:
		return 3
	case Bonus2WS:
		return 2
	}
	return 1
}

// LetterMultiplier returns the letter multiplier this square grants, 1 if
// none.
func (b BonusSquare) LetterMultiplier() int {
	switch b {
	case Bonus3LS:
		return 3
	case Bonus2LS:
		return 2
	}
	return 1
}

func (b BonusSquare) displayString() string {
	repr := string(rune(b))
	if !ColorSupport {
		return repr
	}
	switch b {
	case Bonus3WS:
		return fmt.Sprintf("\033[31m%s\033[0m", repr)
	case Bonus2WS:
		return fmt.Sprintf("\033[35m%s\033[0m", repr)
	case Bonus3LS:
		return fmt.Sprintf("\033[34m%s\033[0m", repr)
	case Bonus2LS:
		return fmt.Sprintf("\033[36m%s\033[0m", repr)
	default:
		return repr
	}
}

// GameBoard stores the letters played, the bonus squares, and which bonus
// squares have already been consumed, all as one-dimensional arrays.
type GameBoard struct {
	squares     []tilemapping.MachineLetter
	bonuses     []BonusSquare
	consumed    []bool
	tilesPlayed int
	dim         int
	lastCopy    *GameBoard
}

// MakeBoard turns an array of layout strings into a GameBoard. All strings
// are assumed to be the same length, and the board square.
func MakeBoard(desc []string) *GameBoard {
	totalLen := 0
	for _, s := range desc {
		totalLen += len(s)
	}
	sqs := make([]tilemapping.MachineLetter, totalLen)
	bs := make([]BonusSquare, totalLen)
	sqi := 0
	for _, s := range desc {
		for _, c := range s {
			bs[sqi] = BonusSquare(byte(c))
			sqi++
		}
	}
	return &GameBoard{
		squares:  sqs,
		bonuses:  bs,
		consumed: make([]bool, totalLen),
		dim:      len(desc),
	}
}

func (g *GameBoard) TilesPlayed() int {
	return g.tilesPlayed
}

// Dim is the dimension of the board. It assumes the board is square.
func (g *GameBoard) Dim() int {
	return g.dim
}

func (g *GameBoard) GetBonus(row int, col int) BonusSquare {
	return g.bonuses[row*g.dim+col]
}

// BonusConsumed returns whether the bonus on this square has already been
// spent by an earlier placement.
func (g *GameBoard) BonusConsumed(row int, col int) bool {
	return g.consumed[row*g.dim+col]
}

func (g *GameBoard) GetLetter(row int, col int) tilemapping.MachineLetter {
	return g.squares[row*g.dim+col]
}

func (g *GameBoard) HasLetter(row int, col int) bool {
	return g.GetLetter(row, col) != 0
}

// PlaceTile puts a tile on an empty square and consumes the square's bonus.
// Placing on an occupied square returns ErrCellOccupied and changes
// nothing. The consumed flag flips false to true exactly once; nothing
// ever resets it for the life of a game.
func (g *GameBoard) PlaceTile(row, col int, ml tilemapping.MachineLetter) error {
	if !g.PosExists(row, col) {
		return fmt.Errorf("row %v col %v is off the board", row, col)
	}
	pos := row*g.dim + col
	if g.squares[pos] != 0 {
		return ErrCellOccupied
	}
	g.squares[pos] = ml
	g.consumed[pos] = true
	g.tilesPlayed++
	return nil
}

// RemoveTile takes a tile off the board, for position setup. The square's
// bonus stays consumed; multipliers are spent, not loaned.
func (g *GameBoard) RemoveTile(row, col int) tilemapping.MachineLetter {
	pos := row*g.dim + col
	ml := g.squares[pos]
	if ml != 0 {
		g.squares[pos] = 0
		g.tilesPlayed--
	}
	return ml
}

// SetLetter writes a letter without touching the consumed flags or the
// tile count. Position-setup code only; gameplay goes through PlaceTile.
func (g *GameBoard) SetLetter(row int, col int, letter tilemapping.MachineLetter) {
	g.squares[row*g.dim+col] = letter
}

// Clear clears the board and restores every bonus square for a new game.
func (g *GameBoard) Clear() {
	for i := 0; i < len(g.squares); i++ {
		g.squares[i] = 0
		g.consumed[i] = false
	}
	g.tilesPlayed = 0
}

// IsEmpty returns if the board is empty.
func (g *GameBoard) IsEmpty() bool {
	return g.tilesPlayed == 0
}

func (g *GameBoard) PosExists(row int, col int) bool {
	d := g.dim
	return row >= 0 && row < d && col >= 0 && col < d
}

// CenterRow and CenterCol locate the starting square.
func (g *GameBoard) CenterRow() int {
	return g.dim >> 1
}

func (g *GameBoard) CenterCol() int {
	return g.dim >> 1
}

func (g *GameBoard) SquareDisplayString(row, col int, alph *tilemapping.TileMapping) string {
	disp := " "
	pos := row*g.dim + col
	letter := g.squares[pos]
	bonus := g.bonuses[pos]
	if letter != 0 {
		disp = string(letter.UserVisible(alph, false))
	} else if bonus != NoBonus {
		disp = bonus.displayString()
	}
	return disp
}

// Copy returns a deep copy of this board.
func (g *GameBoard) Copy() *GameBoard {
	newg := &GameBoard{}
	newg.squares = make([]tilemapping.MachineLetter, len(g.squares))
	newg.bonuses = make([]BonusSquare, len(g.bonuses))
	newg.consumed = make([]bool, len(g.consumed))
	copy(newg.squares, g.squares)
	copy(newg.bonuses, g.bonuses)
	copy(newg.consumed, g.consumed)
	newg.tilesPlayed = g.tilesPlayed
	newg.dim = g.dim
	return newg
}

func (g *GameBoard) SaveCopy() {
	g.lastCopy = g.Copy()
}

func (g *GameBoard) RestoreFromCopy() {
	g.CopyFrom(g.lastCopy)
	g.lastCopy = nil
}

// CopyFrom copies the squares and other info from b back into g.
func (g *GameBoard) CopyFrom(b *GameBoard) {
	copy(g.squares, b.squares)
	copy(g.bonuses, b.bonuses)
	copy(g.consumed, b.consumed)
	g.tilesPlayed = b.tilesPlayed
	g.dim = b.dim
}
