package game

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/paramo/comala/move"
)

func TestPlacementFromTextMove(t *testing.T) {
	is := is.New(t)
	g := testGame(t, nil)

	pl, err := g.PlacementFromTextMove("8G", "BOX")
	is.NoErr(err)
	is.Equal(pl, move.Placement{
		{Row: 7, Col: 6, Tile: 2},
		{Row: 7, Col: 7, Tile: 15},
		{Row: 7, Col: 8, Tile: 24},
	})
}

func TestPlayTextMove(t *testing.T) {
	is := is.New(t)
	g := testGame(t, nil)
	setRacks(t, g, "BOXAEIN", "SEAINRT")

	res := g.PlayTextMove("8G", "BOX")
	is.True(res.Valid)
	is.Equal(res.Score, 24)

	// Hook ES onto the X.
	res = g.PlayTextMove("8J", "ES")
	is.True(res.Valid)
	is.Equal(res.Score, 2)
	is.Equal(g.LastEvent().Position, "8J")
	is.Equal(g.LastEvent().PlayedTiles, "ES")
}

func TestPlayTextMovePlaythrough(t *testing.T) {
	is := is.New(t)
	g := testGame(t, nil)
	setRacks(t, g, "BOXAEIN", "TONBEST")

	is.True(g.PlayTextMove("8G", "BOX").Valid)

	// Write the word out in full; the O is already on the board.
	res := g.PlayTextMove("H7", "TON")
	is.True(res.Valid)
	is.Equal(res.Score, 2)
	is.Equal(g.LastEvent().Position, "H7")
	is.Equal(g.LastEvent().PlayedTiles, "T.N")
}

func TestPlayTextMoveWrongPlaythrough(t *testing.T) {
	is := is.New(t)
	g := testGame(t, nil)
	setRacks(t, g, "BOXAEIN", "TENBEST")

	is.True(g.PlayTextMove("8G", "BOX").Valid)

	res := g.PlayTextMove("H7", "TEN")
	is.True(!res.Valid)
	is.True(strings.Contains(res.Message, "play-through tile is incorrect"))
	is.Equal(g.Board().TilesPlayed(), 3)
}

func TestPlayTextMoveBadInput(t *testing.T) {
	is := is.New(t)
	g := testGame(t, nil)
	setRacks(t, g, "BOXAEIN", "")

	res := g.PlayTextMove("ZZ", "BOX")
	is.True(!res.Valid)
	is.True(strings.Contains(res.Message, "cannot parse coordinates"))

	res = g.PlayTextMove("N15", "BOX")
	is.True(!res.Valid)
	is.True(strings.Contains(res.Message, "out of bounds"))

	res = g.PlayTextMove("8G", "...")
	is.True(!res.Valid)
	is.True(strings.Contains(res.Message, "must place a new tile"))

	res = g.PlayTextMove("8G", "B2X")
	is.True(!res.Valid)
	is.True(strings.Contains(res.Message, "not found in alphabet"))

	is.Equal(g.Turn(), 0)
	is.Equal(totalTiles(g), 100)
}

func TestPlayTextMoveLowercaseCoords(t *testing.T) {
	is := is.New(t)
	g := testGame(t, nil)
	setRacks(t, g, "BOXAEIN", "")

	res := g.PlayTextMove("8g", "BOX")
	is.True(res.Valid)
	is.Equal(res.Score, 24)
}

func TestPlayTextMoveDesignatesBlank(t *testing.T) {
	is := is.New(t)
	g := testGame(t, nil)
	setRacks(t, g, "BO?AEIN", "")

	res := g.PlayTextMove("8G", "BOx")
	is.True(res.Valid)
	is.Equal(res.Score, 8)
	is.Equal(g.LastEvent().PlayedTiles, "BOx")
	is.Equal(g.LastEvent().Rack, "?ABEINO")
}
