package board

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/paramo/comala/tilemapping"
)

// ToDisplayText returns an ASCII picture of the board with coordinate
// headers, suitable for the shell.
func (g *GameBoard) ToDisplayText(alph *tilemapping.TileMapping) string {
	var str string
	n := g.Dim()
	row := "   "
	for i := 0; i < n; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	for i := 0; i < n; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < n; j++ {
			row = row + g.SquareDisplayString(i, j, alph) + " "
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	return "\n" + str
}

// SetRow sets a whole row from a string, for test setup. Spaces are empty
// squares. It returns the letters placed so the caller can reconcile the
// bag. Bonuses under the letters are consumed, matching real play.
func (g *GameBoard) SetRow(rowNum int, letters string, alph *tilemapping.TileMapping) []tilemapping.MachineLetter {
	for idx := 0; idx < g.Dim(); idx++ {
		if g.HasLetter(rowNum, idx) {
			g.RemoveTile(rowNum, idx)
		}
	}
	lettersPlayed := []tilemapping.MachineLetter{}
	for idx, r := range letters {
		if r != ' ' {
			letter, err := alph.Val(r)
			if err != nil {
				log.Fatal().Err(err).Msg("cannot set row")
			}
			if err = g.PlaceTile(rowNum, idx, letter); err != nil {
				log.Fatal().Err(err).Msg("cannot set row")
			}
			lettersPlayed = append(lettersPlayed, letter)
		}
	}
	return lettersPlayed
}

// Equals checks the boards for equality. Two boards are equal if all the
// squares, consumed flags and tile counts are equal.
func (g *GameBoard) Equals(g2 *GameBoard) bool {
	if g.Dim() != g2.Dim() || g.tilesPlayed != g2.tilesPlayed {
		return false
	}
	for i := range g.squares {
		if g.squares[i] != g2.squares[i] || g.bonuses[i] != g2.bonuses[i] ||
			g.consumed[i] != g2.consumed[i] {
			return false
		}
	}
	return true
}
