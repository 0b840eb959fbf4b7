package tilemapping

import (
	"testing"

	"github.com/matryer/is"
)

func TestToMachineLetters(t *testing.T) {
	is := is.New(t)
	ld, err := EnglishLetterDistribution(DefaultConfig)
	is.NoErr(err)

	mls, err := ToMachineLetters("MACHINE", ld.TileMapping())
	is.NoErr(err)
	is.Equal(mls, []MachineLetter{13, 1, 3, 8, 9, 14, 5})

	// Lowercase letters are designated blanks.
	mls, err = ToMachineLetters("MAcHInE", ld.TileMapping())
	is.NoErr(err)
	is.Equal(mls, []MachineLetter{13, 1, 3 | 0x80, 8, 9, 14 | 0x80, 5})

	// The blank token and the played-through marker both map to zero.
	mls, err = ToMachineLetters("?A.Z", ld.TileMapping())
	is.NoErr(err)
	is.Equal(mls, []MachineLetter{0, 1, 0, 26})

	_, err = ToMachineLetters("A1C", ld.TileMapping())
	is.True(err != nil)
}

func TestUserVisible(t *testing.T) {
	is := is.New(t)
	ld, err := EnglishLetterDistribution(DefaultConfig)
	is.NoErr(err)

	uv := MachineWord([]MachineLetter{13, 1, 3, 8, 9, 14, 5}).
		UserVisible(ld.TileMapping())
	is.Equal(uv, "MACHINE")

	uv = MachineWord([]MachineLetter{13, 1, 3 | 0x80, 8, 9, 14 | 0x80, 5}).
		UserVisible(ld.TileMapping())
	is.Equal(uv, "MAcHInE")

	uv = MachineWord([]MachineLetter{0, 26}).UserVisible(ld.TileMapping())
	is.Equal(uv, "?Z")

	uv = MachineWord([]MachineLetter{16, 0, 5}).
		UserVisiblePlayedTiles(ld.TileMapping())
	is.Equal(uv, "P.E")
}

func TestBlankMask(t *testing.T) {
	is := is.New(t)
	e := MachineLetter(5)
	is.True(!e.IsBlanked())
	is.True(e.Blank().IsBlanked())
	is.Equal(e.Blank().Unblank(), e)
	is.True(e.Blank().IsPlayedTile())
	is.True(!MachineLetter(0).IsPlayedTile())
}

func TestIsVowel(t *testing.T) {
	is := is.New(t)
	ld, err := EnglishLetterDistribution(DefaultConfig)
	is.NoErr(err)

	vowels := ""
	for ml := MachineLetter(1); ml <= 26; ml++ {
		if ml.IsVowel(ld) {
			vowels += string(ld.TileMapping().Letter(ml))
		}
	}
	is.Equal(vowels, "AEIOU")
	// A designated blank counts as the letter it spells.
	is.True(MachineLetter(5 | 0x80).IsVowel(ld))
}
