package tilemapping

import (
	"fmt"

	"lukechampine.com/frand"
)

// A Bag is the bag o' tiles. The tiles are simply machine letters. Draws
// come off the end of the slice; a random draw first swaps random tiles
// into the tail, so the bag never needs reshuffling mid-game.
type Bag struct {
	tiles      []MachineLetter
	fixedOrder bool

	alph               *TileMapping
	letterDistribution *LetterDistribution
}

// NewBag creates a bag with the distribution's full complement of tiles,
// in distribution order. Shuffle it before drawing for real play.
func NewBag(ld *LetterDistribution, alph *TileMapping) *Bag {
	tiles := make([]MachineLetter, 0, ld.numLetters)
	for idx, qty := range ld.distribution {
		for i := uint8(0); i < qty; i++ {
			tiles = append(tiles, MachineLetter(idx))
		}
	}
	return &Bag{
		tiles:              tiles,
		alph:               alph,
		letterDistribution: ld,
	}
}

// Shuffle rearranges the entire bag uniformly at random.
func (b *Bag) Shuffle() {
	frand.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// SetFixedOrder makes draws come off the end of the bag exactly in slice
// order. Tests use this for determinism.
func (b *Bag) SetFixedOrder(f bool) {
	b.fixedOrder = f
}

// FixedOrder returns whether the bag draws in fixed order.
func (b *Bag) FixedOrder() bool {
	return b.fixedOrder
}

// Draw draws n tiles into the passed-in slice, which must have capacity for
// them. It is an error to draw more tiles than the bag has.
func (b *Bag) Draw(n int, ml []MachineLetter) error {
	if n > len(b.tiles) {
		return fmt.Errorf("tried to draw %v tiles, tile bag has %v",
			n, len(b.tiles))
	}
	l := len(b.tiles)
	k := l - n
	if !b.fixedOrder {
		for i := l; i > k; i-- {
			xi := frand.Intn(i)
			b.tiles[i-1], b.tiles[xi] = b.tiles[xi], b.tiles[i-1]
		}
	}
	copy(ml, b.tiles[k:l])
	b.tiles = b.tiles[:k]
	return nil
}

// DrawAtMost draws at most n tiles into the passed-in slice. It returns
// the number of tiles drawn; drawing from an empty bag draws zero tiles
// and is not an error.
func (b *Bag) DrawAtMost(n int, ml []MachineLetter) int {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	// Draw cannot fail after the clamp.
	b.Draw(n, ml)
	return n
}

// Exchange draws replacements for the given letters into ml, then returns
// the exchanged letters to the bag. Drawing first guarantees none of the
// returned letters come right back. The caller checks the bag is big
// enough.
func (b *Bag) Exchange(letters []MachineLetter, ml []MachineLetter) error {
	if err := b.Draw(len(letters), ml); err != nil {
		return err
	}
	b.PutBack(letters)
	return nil
}

// PutBack returns the given letters to the bag. Designated blanks go back
// as plain blanks.
func (b *Bag) PutBack(letters []MachineLetter) {
	for _, l := range letters {
		if l.IsBlanked() {
			l = 0
		}
		b.tiles = append(b.tiles, l)
	}
}

// Redraw is basically a do-over; it throws the current rack in the bag
// and draws a new rack, into ml. It returns the number of tiles drawn.
func (b *Bag) Redraw(currentRack []MachineLetter, ml []MachineLetter) int {
	b.PutBack(currentRack)
	return b.DrawAtMost(len(ml), ml)
}

// RemoveTiles removes the given tiles from the bag, for setting up
// positions. Designated blanks remove a blank.
func (b *Bag) RemoveTiles(tiles []MachineLetter) error {
	for _, t := range tiles {
		if t.IsBlanked() {
			t = 0
		}
		found := false
		for i, bt := range b.tiles {
			if bt == t {
				b.tiles[i] = b.tiles[len(b.tiles)-1]
				b.tiles = b.tiles[:len(b.tiles)-1]
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("tile %v not in bag", t)
		}
	}
	return nil
}

func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// Peek returns a copy of the tiles still in the bag.
func (b *Bag) Peek() []MachineLetter {
	ret := make([]MachineLetter, len(b.tiles))
	copy(ret, b.tiles)
	return ret
}

func (b *Bag) LetterDistribution() *LetterDistribution {
	return b.letterDistribution
}

// String returns a human-readable rendition of the bag contents, mostly
// for debug logs.
func (b *Bag) String() string {
	return fmt.Sprintf("[%d: %s]", len(b.tiles),
		MachineWord(b.tiles).UserVisible(b.alph))
}

// Copy returns a deep copy of the bag.
func (b *Bag) Copy() *Bag {
	tiles := make([]MachineLetter, len(b.tiles))
	copy(tiles, b.tiles)
	return &Bag{
		tiles:              tiles,
		fixedOrder:         b.fixedOrder,
		alph:               b.alph,
		letterDistribution: b.letterDistribution,
	}
}

// CopyFrom copies another bag's tiles into this one. The distribution is
// shared, not copied.
func (b *Bag) CopyFrom(other *Bag) {
	if cap(b.tiles) < len(other.tiles) {
		b.tiles = make([]MachineLetter, len(other.tiles))
	}
	b.tiles = b.tiles[:len(other.tiles)]
	copy(b.tiles, other.tiles)
	b.fixedOrder = other.fixedOrder
	b.letterDistribution = other.letterDistribution
	b.alph = other.alph
}
