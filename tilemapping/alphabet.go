package tilemapping

import (
	"fmt"
	"unicode"
)

// A "letter" or tile is internally represented by a byte.
// The 0 value is used to represent various things:
// - an empty square on the board
// - a blank on your rack
// - a "played-through" letter in the text description of a play.
// The letter A is represented by 1, B by 2, ... all the way to 26, for the
// English alphabet. A designated blank is the letter it stands for with the
// high bit set (0x80 | ml); it scores zero no matter what it spells.
const (
	// ASCIIPlayedThrough is the text representation of a letter that was
	// already on the board and is being played through.
	ASCIIPlayedThrough = '.'
	// BlankToken is the user-friendly representation of a blank.
	BlankToken = '?'
)

const (
	BlankMask   = 0x80
	UnblankMask = (0x80 - 1)
)

// MachineLetter is a machine-only representation of a letter.
type MachineLetter byte

type MachineWord []MachineLetter

// A TileMapping contains the structures needed to map a user-visible "rune",
// like the letter B, into its "MachineLetter" counterpart (for example,
// MachineLetter(2) in the english alphabet), and vice-versa.
type TileMapping struct {
	// vals is a map of the actual physical letter rune (like 'A') to the
	// number representing it.
	vals map[rune]MachineLetter
	// letters is a map of the number back to the rune.
	letters map[MachineLetter]rune
}

// Init initializes the mapping data structures.
func (rm *TileMapping) Init() {
	rm.vals = make(map[rune]MachineLetter)
	rm.letters = make(map[MachineLetter]rune)
}

// Reconcile assigns machine letter values in the order the letters were
// listed in the distribution file. The blank token must be row 0 so that
// the letters proper start at 1.
func (rm *TileMapping) Reconcile(letters []string) error {
	for idx, letter := range letters {
		runes := []rune(letter)
		if len(runes) != 1 {
			return fmt.Errorf("letter %v must be a single rune", letter)
		}
		r := runes[0]
		if r == BlankToken {
			if idx != 0 {
				return fmt.Errorf("blank must be the first letter in the distribution")
			}
			continue
		}
		rm.vals[r] = MachineLetter(idx)
		rm.letters[MachineLetter(idx)] = r
	}
	return nil
}

// Letter returns the rune that this machine letter corresponds to.
func (rm *TileMapping) Letter(b MachineLetter) rune {
	if b == 0 {
		return BlankToken
	}
	if b.IsBlanked() {
		return unicode.ToLower(rm.letters[b.Unblank()])
	}
	return rm.letters[b]
}

// Val returns the 'value' of this rune in the mapping. Lowercase letters
// are designated blanks.
func (rm *TileMapping) Val(r rune) (MachineLetter, error) {
	if r == BlankToken {
		return 0, nil
	}
	val, ok := rm.vals[r]
	if ok {
		return val, nil
	}
	if r == unicode.ToLower(r) {
		val, ok = rm.vals[unicode.ToUpper(r)]
		if ok {
			return val.Blank(), nil
		}
	}
	if r == ASCIIPlayedThrough {
		return 0, nil
	}
	return 0, fmt.Errorf("letter `%c` not found in alphabet", r)
}

// UserVisible turns the passed-in machine letter into a user-visible rune.
func (ml MachineLetter) UserVisible(rm *TileMapping, zeroForPlayedThrough bool) rune {
	if ml == 0 {
		if zeroForPlayedThrough {
			return ASCIIPlayedThrough
		}
		return BlankToken
	}
	return rm.Letter(ml)
}

// Blank turns the machine letter into its blank version.
func (ml MachineLetter) Blank() MachineLetter {
	return ml | BlankMask
}

// Unblank turns the machine letter into its non-blank version (if it's a
// designated blank).
func (ml MachineLetter) Unblank() MachineLetter {
	return ml & UnblankMask
}

// IsBlanked returns true if the machine letter is a designated blank letter.
func (ml MachineLetter) IsBlanked() bool {
	return ml&BlankMask > 0
}

// UserVisible turns the passed-in machine word into a user-visible string.
func (mw MachineWord) UserVisible(rm *TileMapping) string {
	runes := make([]rune, len(mw))
	for i, l := range mw {
		runes[i] = l.UserVisible(rm, false)
	}
	return string(runes)
}

// UserVisiblePlayedTiles turns the passed-in machine word into a user-visible
// string. It assumes the MachineWord represents played tiles and not just
// tiles on a rack, so it uses the PlayedThrough character for 0.
func (mw MachineWord) UserVisiblePlayedTiles(rm *TileMapping) string {
	runes := make([]rune, len(mw))
	for i, l := range mw {
		runes[i] = l.UserVisible(rm, true)
	}
	return string(runes)
}

// NumLetters returns the number of letters in this mapping, not counting
// the blank.
func (rm *TileMapping) NumLetters() uint8 {
	return uint8(len(rm.letters))
}

func (rm *TileMapping) Vals() map[rune]MachineLetter {
	return rm.vals
}

// Score returns the score of this word given the ld. Designated blanks
// score zero.
func (mw MachineWord) Score(ld *LetterDistribution) int {
	score := 0
	for _, c := range mw {
		score += ld.Score(c)
	}
	return score
}

// IsPlayedTile returns true if this represents a tile that was actually
// played on the board. It has to be an assigned blank or a letter, not
// a played-through marker.
func (ml MachineLetter) IsPlayedTile() bool {
	if ml.IsBlanked() {
		return true
	} else if ml == 0 {
		return false
	}
	return true
}

func (ml MachineLetter) IsVowel(ld *LetterDistribution) bool {
	ml = ml.Unblank()
	for _, v := range ld.Vowels {
		if ml == v {
			return true
		}
	}
	return false
}

func ToMachineWord(word string, tm *TileMapping) (MachineWord, error) {
	mls, err := ToMachineLetters(word, tm)
	if err != nil {
		return nil, err
	}
	return MachineWord(mls), nil
}

// ToMachineLetters creates an array of MachineLetters from the given string.
// Lowercase letters become designated blanks.
func ToMachineLetters(word string, rm *TileMapping) ([]MachineLetter, error) {
	letters := make([]MachineLetter, len([]rune(word)))
	runeIdx := 0
	for _, ch := range word {
		ml, err := rm.Val(ch)
		if err != nil {
			return nil, err
		}
		letters[runeIdx] = ml
		runeIdx++
	}
	return letters, nil
}

// EnglishAlphabet returns a TileMapping that corresponds to the English
// alphabet. This function should only be used for testing; in production
// the mapping comes from the letter distribution file.
func EnglishAlphabet() *TileMapping {
	rm := &TileMapping{}
	rm.Init()
	for i, r := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		rm.vals[r] = MachineLetter(i + 1)
		rm.letters[MachineLetter(i+1)] = r
	}
	return rm
}
