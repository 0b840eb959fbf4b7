package scoring

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/paramo/comala/board"
	"github.com/paramo/comala/config"
	"github.com/paramo/comala/move"
	"github.com/paramo/comala/tilemapping"
)

var DefaultConfig = config.DefaultConfig()

func setup(t *testing.T) (*board.GameBoard, *tilemapping.LetterDistribution) {
	t.Helper()
	ld, err := tilemapping.EnglishLetterDistribution(DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}
	return board.MakeBoard(board.CrosswordGameBoard), ld
}

func placement(t *testing.T, ld *tilemapping.LetterDistribution,
	coords, word string) move.Placement {
	t.Helper()
	m := move.NewPlacementMoveSimple(coords, word, "", ld.TileMapping())
	if m == nil {
		t.Fatalf("could not parse %v %v", coords, word)
	}
	return m.Placement()
}

func TestFirstMoveBox(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)

	// B(3) + O(1) + X(8) = 12, doubled once by the center square.
	score, err := Standard.Evaluate(b, placement(t, ld, "8G", "BOX"), ld)
	is.NoErr(err)
	is.Equal(score, 24)
}

func TestFirstMoveMissesCenter(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)

	_, err := Standard.Evaluate(b, placement(t, ld, "1A", "BOX"), ld)
	is.True(err != nil)
	is.Equal(err.Error(), "the first play must touch the center square")
	is.True(b.IsEmpty())
}

func TestFirstMoveSingleTile(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)

	_, err := Standard.Evaluate(b, move.Placement{{Row: 7, Col: 7, Tile: 1}}, ld)
	is.True(err != nil)
	is.Equal(err.Error(), "your play must include at least two letters")
}

func TestEmptyPlacement(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)

	_, err := Standard.Evaluate(b, move.Placement{}, ld)
	is.True(err != nil)
	is.Equal(err.Error(), "your play must place a new tile")
}

func TestGapRejected(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)

	pl := move.Placement{
		{Row: 7, Col: 6, Tile: 2},
		{Row: 7, Col: 8, Tile: 24},
	}
	_, err := Standard.Evaluate(b, pl, ld)
	is.True(err != nil)
	is.Equal(err.Error(), "the play may not leave a gap between its tiles")
}

func TestNotSingleLine(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)

	pl := move.Placement{
		{Row: 7, Col: 7, Tile: 1},
		{Row: 8, Col: 8, Tile: 2},
	}
	_, err := Standard.Evaluate(b, pl, ld)
	is.True(err != nil)
	is.Equal(err.Error(), "the play must be in a single row or column")
}

func TestDuplicateSquare(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)

	pl := move.Placement{
		{Row: 7, Col: 7, Tile: 1},
		{Row: 7, Col: 7, Tile: 2},
	}
	_, err := Standard.Evaluate(b, pl, ld)
	is.True(err != nil)
	is.Equal(err.Error(), "the play places two tiles on the same square")
}

func TestOffBoard(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)

	pl := move.Placement{
		{Row: 7, Col: 14, Tile: 1},
		{Row: 7, Col: 15, Tile: 2},
	}
	_, err := Standard.Evaluate(b, pl, ld)
	is.True(err != nil)
	is.Equal(err.Error(), "play extends off of the board")
}

func TestOccupiedCell(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)
	b.SetRow(7, "      BOX", ld.TileMapping())

	pl := move.Placement{
		{Row: 7, Col: 7, Tile: 1},
		{Row: 8, Col: 7, Tile: 2},
	}
	_, err := Standard.Evaluate(b, pl, ld)
	is.True(errors.Is(err, board.ErrCellOccupied))
	// The O that was there stays there.
	is.Equal(b.GetLetter(7, 7), tilemapping.MachineLetter(15))
}

func TestUndesignatedBlank(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)

	pl := move.Placement{
		{Row: 7, Col: 7, Tile: 0},
		{Row: 7, Col: 8, Tile: 24},
	}
	_, err := Standard.Evaluate(b, pl, ld)
	is.True(err != nil)
	is.Equal(err.Error(), "a played blank must be designated as a letter")
}

func TestMustBorder(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)
	b.SetRow(7, "      BOX", ld.TileMapping())

	_, err := Standard.Evaluate(b, placement(t, ld, "1A", "AT"), ld)
	is.True(err != nil)
	is.Equal(err.Error(), "your play must border a tile already on the board")
}

func TestPlayThrough(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)
	b.SetRow(7, "      BOX", ld.TileMapping())

	// TON down column H, reading through the O.
	pl := move.Placement{
		{Row: 6, Col: 7, Tile: 20},
		{Row: 8, Col: 7, Tile: 14},
	}
	score, err := Standard.Evaluate(b, pl, ld)
	is.NoErr(err)
	is.Equal(score, 2)
}

func TestHookOffTheTail(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)
	b.SetRow(7, "      BOX", ld.TileMapping())

	// ES tacked on right after the X.
	score, err := Standard.Evaluate(b, placement(t, ld, "8J", "ES"), ld)
	is.NoErr(err)
	is.Equal(score, 2)
}

func TestTripleLetterSquare(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)
	b.SetRow(7, "      BOX", ld.TileMapping())

	// ZAP down column F, ending beside the B. The Z sits on a triple
	// letter square.
	score, err := Standard.Evaluate(b, placement(t, ld, "F6", "ZAP"), ld)
	is.NoErr(err)
	is.Equal(score, 34)
}

func TestDoubleLetterSquare(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)

	// F(4) doubled on 8D, plus A(1) B(3) L(1) E(1), all doubled once by
	// the center square.
	score, err := Standard.Evaluate(b, placement(t, ld, "8D", "FABLE"), ld)
	is.NoErr(err)
	is.Equal(score, 28)
}

func TestHighestWordMultiplierAppliesOnce(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)
	alph := ld.TileMapping()
	for i, r := range "TULIP" {
		ml, err := alph.Val(r)
		is.NoErr(err)
		is.NoErr(b.PlaceTile(3+i, 7, ml))
	}

	// Row 5 covers the double word squares at both 5E and 5K. The higher
	// word bonus applies a single time, not once per square.
	score, err := Standard.Evaluate(b, placement(t, ld, "5E", "CAT.DOG"), ld)
	is.NoErr(err)
	is.Equal(score, 20)
}

func TestConsumedMultiplierScoresFaceValue(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)
	is.NoErr(b.PlaceTile(7, 7, 1))
	b.RemoveTile(7, 7)

	// The center square's word bonus was spent by the earlier placement,
	// so the same play now scores at face value.
	score, err := Standard.Evaluate(b, placement(t, ld, "8G", "BOX"), ld)
	is.NoErr(err)
	is.Equal(score, 12)
}

func TestBlankScoresZero(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)

	// The blank plays as an X but scores nothing; the word bonus still
	// applies to the rest.
	score, err := Standard.Evaluate(b, placement(t, ld, "8G", "BOx"), ld)
	is.NoErr(err)
	is.Equal(score, 8)
}

func TestEvaluateIsPure(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)
	before := b.Copy()

	pl := move.Placement{
		{Row: 7, Col: 8, Tile: 24},
		{Row: 7, Col: 6, Tile: 2},
		{Row: 7, Col: 7, Tile: 15},
	}
	score, err := Standard.Evaluate(b, pl, ld)
	is.NoErr(err)
	is.Equal(score, 24)
	is.True(b.Equals(before))
	// The caller's slice is not reordered either.
	is.Equal(pl[0].Col, 8)
	is.Equal(pl[2].Col, 7)
}

func TestPolicyFunc(t *testing.T) {
	is := is.New(t)
	b, ld := setup(t)

	scripted := PolicyFunc(func(b *board.GameBoard, pl move.Placement,
		ld *tilemapping.LetterDistribution) (int, error) {
		return 42, nil
	})
	score, err := scripted.Evaluate(b, nil, ld)
	is.NoErr(err)
	is.Equal(score, 42)
}
