package tilemapping

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/paramo/comala/cache"
	"github.com/paramo/comala/config"
)

//go:embed data/letterdistributions
var distributionsFS embed.FS

// LetterDistribution encodes the tile distribution for the relevant game.
type LetterDistribution struct {
	tilemapping      *TileMapping
	Vowels           []MachineLetter
	distribution     []uint8
	scores           []int
	numUniqueLetters uint
	numLetters       uint
	Name             string
}

// ScanLetterDistribution reads a letter distribution from a CSV stream.
// Columns are letter,quantity,value,vowel. The blank row must come first;
// row order determines the machine letter values.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	dist := []uint8{}
	ptValues := []int{}
	vowels := []MachineLetter{}
	alph := &TileMapping{}
	alph.Init()
	idx := 0
	letters := []string{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) != 4 {
			return nil, fmt.Errorf("malformed distribution row: %v", record)
		}
		letter := record[0]
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, err
		}
		if n < 0 || p < 0 {
			return nil, fmt.Errorf("letter %v has a negative quantity or value", letter)
		}
		if v == 1 {
			vowels = append(vowels, MachineLetter(idx))
		}
		dist = append(dist, uint8(n))
		ptValues = append(ptValues, p)
		letters = append(letters, letter)
		idx++
	}
	if len(letters) == 0 {
		return nil, errors.New("empty letter distribution")
	}
	if err := alph.Reconcile(letters); err != nil {
		return nil, err
	}
	return newLetterDistribution(alph, dist, ptValues, vowels), nil
}

func newLetterDistribution(alph *TileMapping, dist []uint8,
	ptValues []int, vowels []MachineLetter) *LetterDistribution {

	numTotalLetters := uint(0)
	numUniqueLetters := uint(len(dist))
	for _, v := range dist {
		numTotalLetters += uint(v)
	}
	// Note: numUniqueLetters/numTotalLetters includes the blank.

	return &LetterDistribution{
		tilemapping:      alph,
		distribution:     dist,
		scores:           ptValues,
		Vowels:           vowels,
		numUniqueLetters: numUniqueLetters,
		numLetters:       numTotalLetters,
	}
}

// NamedLetterDistribution loads the distribution with the given name. A CSV
// in the config's data path takes precedence; otherwise the distributions
// compiled into the binary are used. Parsed distributions are cached.
func NamedLetterDistribution(cfg *config.Config, name string) (*LetterDistribution, error) {
	name = strings.ToLower(name)
	obj, err := cache.Load(cfg, "letterdist:"+name,
		func(cfg *config.Config, key string) (interface{}, error) {
			return loadNamedDistribution(cfg, name)
		})
	if err != nil {
		return nil, err
	}
	ld, ok := obj.(*LetterDistribution)
	if !ok {
		return nil, errors.New("could not read letter distribution from cache")
	}
	return ld, nil
}

func loadNamedDistribution(cfg *config.Config, name string) (*LetterDistribution, error) {
	filename := name + ".csv"
	if cfg != nil {
		path := filepath.Join(cfg.GetString(config.ConfigDataPath),
			"letterdistributions", filename)
		if f, err := os.Open(path); err == nil {
			defer f.Close()
			ld, err := ScanLetterDistribution(f)
			if err != nil {
				return nil, err
			}
			ld.Name = name
			return ld, nil
		}
	}
	f, err := distributionsFS.Open("data/letterdistributions/" + filename)
	if err != nil {
		return nil, fmt.Errorf("letter distribution %v not found", name)
	}
	defer f.Close()
	ld, err := ScanLetterDistribution(f)
	if err != nil {
		return nil, err
	}
	ld.Name = name
	return ld, nil
}

// Score gives the score of the given machine letter. Designated blanks
// score what the blank does, which is to say nothing.
func (ld *LetterDistribution) Score(ml MachineLetter) int {
	if ml.IsBlanked() || int(ml) >= len(ld.scores) {
		return ld.scores[0] // the blank
	}
	return ld.scores[ml]
}

func (ld *LetterDistribution) TileMapping() *TileMapping {
	return ld.tilemapping
}

// WordScore returns the sum of tile scores for this word.
func (ld *LetterDistribution) WordScore(mw MachineWord) int {
	score := 0
	for _, c := range mw {
		score += ld.Score(c)
	}
	return score
}

func (ld *LetterDistribution) Distribution() []uint8 {
	return ld.distribution
}

// Quantity returns how many tiles of this letter a full bag holds.
func (ld *LetterDistribution) Quantity(ml MachineLetter) uint8 {
	if ml.IsBlanked() {
		ml = 0
	}
	if int(ml) >= len(ld.distribution) {
		return 0
	}
	return ld.distribution[ml]
}

// NumTotalLetters returns the size of a full bag, blanks included.
func (ld *LetterDistribution) NumTotalLetters() uint {
	return ld.numLetters
}

func (ld *LetterDistribution) NumUniqueLetters() uint {
	return ld.numUniqueLetters
}

// EnglishLetterDistribution returns the English letter distribution.
func EnglishLetterDistribution(cfg *config.Config) (*LetterDistribution, error) {
	return NamedLetterDistribution(cfg, "english")
}

// MakeBag returns a shuffled bag of this distribution's tiles.
func (ld *LetterDistribution) MakeBag() *Bag {
	b := NewBag(ld, ld.tilemapping)
	b.Shuffle()
	return b
}
