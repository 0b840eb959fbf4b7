package move

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/paramo/comala/tilemapping"
)

// MoveType is a type of move; a play, an exchange, pass, etc.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypeExchange
	MoveTypePass
)

// PlacedTile is a single tile destined for a single square. The Tile
// carries the blank designation bit if a blank is being played as a
// letter.
type PlacedTile struct {
	Row  int
	Col  int
	Tile tilemapping.MachineLetter
}

// Placement is the set of squares a play fills, in board order. It holds
// only the tiles coming off the rack; letters already on the board that
// the play reads through are never part of a placement.
type Placement []PlacedTile

// Sort orders the placement row-major. Scoring and display code rely on
// this ordering.
func (p Placement) Sort() {
	sort.Slice(p, func(i, j int) bool {
		if p[i].Row == p[j].Row {
			return p[i].Col < p[j].Col
		}
		return p[i].Row < p[j].Row
	})
}

// Tiles returns just the tiles of the placement, in placement order.
func (p Placement) Tiles() tilemapping.MachineWord {
	mw := make(tilemapping.MachineWord, len(p))
	for i, pt := range p {
		mw[i] = pt.Tile
	}
	return mw
}

func (p Placement) Copy() Placement {
	c := make(Placement, len(p))
	copy(c, p)
	return c
}

// Move is a move. It can be a tile placement, an exchange, or a pass.
type Move struct {
	action      MoveType
	score       int
	coords      string
	placement   Placement
	tiles       tilemapping.MachineWord
	leave       tilemapping.MachineWord
	rowStart    int
	colStart    int
	vertical    bool
	bingo       bool
	tilesPlayed int
	alph        *tilemapping.TileMapping
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf(
			"<%p action: play word: %v %v score: %v tp: %v leave: %v>",
			m, m.coords, m.TilesString(), m.score, m.tilesPlayed,
			m.LeaveString())
	case MoveTypePass:
		return fmt.Sprintf("<%p action: pass leave: %v>", m, m.LeaveString())
	case MoveTypeExchange:
		return fmt.Sprintf(
			"<%p action: exchange %v leave: %v>",
			m, m.TilesString(), m.LeaveString())
	}
	return fmt.Sprint("<unhandled move>")
}

func (m *Move) MoveTypeString() string {
	switch m.action {
	case MoveTypePlay:
		return "Play"
	case MoveTypePass:
		return "Pass"
	case MoveTypeExchange:
		return "Exchange"
	}
	return fmt.Sprint("UNHANDLED")
}

func (m *Move) TilesString() string {
	if m.action == MoveTypePlay {
		return m.tiles.UserVisiblePlayedTiles(m.alph)
	}
	return m.tiles.UserVisible(m.alph)
}

func (m *Move) LeaveString() string {
	return m.leave.UserVisible(m.alph)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf("%v %v", m.coords, m.TilesString())
	case MoveTypePass:
		return "(Pass)"
	case MoveTypeExchange:
		return fmt.Sprintf("(exch %v)", m.TilesString())
	}
	return fmt.Sprint("UNHANDLED")
}

// FullRack returns the entire rack that the move was made from. This
// can be calculated from the tiles it uses and the leave.
func (m *Move) FullRack() string {
	rack := []rune(m.LeaveString())
	for _, ml := range m.tiles {
		switch {
		case ml.IsBlanked():
			rack = append(rack, tilemapping.BlankToken)
		case ml == 0:
			if m.action == MoveTypeExchange {
				// An exchanged blank. In a play the zero is a
				// played-through marker and came off the board, not
				// the rack.
				rack = append(rack, tilemapping.BlankToken)
			}
		default:
			rack = append(rack, m.alph.Letter(ml))
		}
	}
	sort.Slice(rack, func(i, j int) bool {
		return rack[i] < rack[j]
	})
	return string(rack)
}

func (m *Move) Action() MoveType {
	return m.action
}

// TilesPlayed returns the number of tiles played by this move.
func (m *Move) TilesPlayed() int {
	return m.tilesPlayed
}

// BingoPlayed returns true if the move used a full rack of tiles.
func (m *Move) BingoPlayed() bool {
	return m.bingo
}

// NewPlacementMove creates a play from the squares it fills. tiles is the
// whole word being spelled out, with 0 for letters the play reads through;
// placement holds only the tiles coming off the rack. The score is not
// known at creation time; it gets set once a scoring policy has looked at
// the move.
func NewPlacementMove(placement Placement, tiles tilemapping.MachineWord,
	leave tilemapping.MachineWord, vertical bool, rowStart int, colStart int,
	alph *tilemapping.TileMapping) *Move {

	placement.Sort()
	move := &Move{
		action: MoveTypePlay, placement: placement, tiles: tiles, leave: leave,
		vertical: vertical, bingo: len(placement) == 7,
		tilesPlayed: len(placement), alph: alph,
		rowStart: rowStart, colStart: colStart,
		coords: ToBoardGameCoords(rowStart, colStart, vertical),
	}
	return move
}

// NewPlacementMoveSimple takes in user-visible strings. It is a little
// slower than NewPlacementMove, so it is mostly useful for tests. Letters
// the play reads through are given as the '.' marker; the placement is
// derived by walking the word from the starting square.
func NewPlacementMoveSimple(coords string, word string, leave string,
	alph *tilemapping.TileMapping) *Move {

	row, col, vertical := FromBoardGameCoords(coords)

	tiles, err := tilemapping.ToMachineWord(word, alph)
	if err != nil {
		log.Error().Err(err).Msg("")
		return nil
	}
	leaveMW, err := tilemapping.ToMachineWord(leave, alph)
	if err != nil {
		log.Error().Err(err).Msg("")
		return nil
	}
	placement := Placement{}
	for idx, t := range tiles {
		if !t.IsPlayedTile() {
			continue
		}
		r, c := row, col
		if vertical {
			r += idx
		} else {
			c += idx
		}
		placement = append(placement, PlacedTile{Row: r, Col: c, Tile: t})
	}

	return NewPlacementMove(placement, tiles, leaveMW, vertical, row, col, alph)
}

// NewExchangeMove creates an exchange.
func NewExchangeMove(tiles tilemapping.MachineWord, leave tilemapping.MachineWord,
	alph *tilemapping.TileMapping) *Move {
	move := &Move{
		action:      MoveTypeExchange,
		score:       0,
		tiles:       tiles,
		leave:       leave,
		tilesPlayed: len(tiles), // tiles exchanged, really..
		alph:        alph,
	}
	return move
}

// NewPassMove creates a pass with the given leave.
func NewPassMove(leave tilemapping.MachineWord, alph *tilemapping.TileMapping) *Move {
	return &Move{
		action: MoveTypePass,
		leave:  leave,
		alph:   alph,
	}
}

// Alphabet is the alphabet used by this move
func (m *Move) Alphabet() *tilemapping.TileMapping {
	return m.alph
}

func (m *Move) Score() int {
	return m.score
}

// SetScore sets the score of this move. It is calculated outside this
// package, by whatever scoring policy the game is using.
func (m *Move) SetScore(s int) {
	m.score = s
}

func (m *Move) Leave() tilemapping.MachineWord {
	return m.leave
}

func (m *Move) Tiles() tilemapping.MachineWord {
	return m.tiles
}

// Placement returns the squares this move fills. It is nil for passes
// and exchanges.
func (m *Move) Placement() Placement {
	return m.placement
}

func (m *Move) CoordsAndVertical() (int, int, bool) {
	return m.rowStart, m.colStart, m.vertical
}

func (m *Move) BoardCoords() string {
	return m.coords
}

// ToBoardGameCoords converts the row, col, and orientation of the play to
// a coordinate like 5F or G4.
func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(int(row + 1))
	var coords string
	if vertical {
		coords = colCoords + rowCoords
	} else {
		coords = rowCoords + colCoords
	}
	return coords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords
// above. A coordinate that matches neither pattern comes back as
// (-1, -1, false).
func FromBoardGameCoords(c string) (int, int, bool) {
	vMatches := reVertical.FindStringSubmatch(c)
	var row, col int
	var vertical bool
	if len(vMatches) == 3 {
		// It's vertical
		row, _ = strconv.Atoi(vMatches[2])
		col = int(vMatches[1][0] - 'A')
		vertical = true
		return row - 1, col, vertical
	}
	hMatches := reHorizontal.FindStringSubmatch(c)
	if len(hMatches) == 3 {
		row, _ = strconv.Atoi(hMatches[1])
		col = int(hMatches[2][0] - 'A')
		vertical = false
		return row - 1, col, vertical
	}

	return -1, -1, false
}
