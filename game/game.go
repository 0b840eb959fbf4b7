// Package game encapsulates the main mechanics for a crossword board game;
// drawing, placing tiles, keeping score, and deciding when the game is over.
// Note: a Game doesn't care how it is played. AI players, human players,
// etc will play a game outside of the scope of this package.
package game

import (
	"errors"
	"fmt"

	"github.com/lithammer/shortuuid"
	"github.com/paramo/comala/board"
	"github.com/paramo/comala/move"
	"github.com/paramo/comala/scoring"
	"github.com/paramo/comala/tilemapping"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"
)

const (
	// RackTileLimit is the number of tiles a full rack holds.
	RackTileLimit = 7

	MinPlayers = 2
	MaxPlayers = 4
)

// PlayState tracks whether a game still accepts moves. Once a game reaches
// StateGameOver it never goes back; StartGame begins a fresh game instead.
type PlayState int

const (
	StatePlaying PlayState = iota
	StateGameOver
)

var (
	ErrGameOver         = errors.New("cannot play a move on a game that is over")
	ErrIllegalFirstMove = errors.New("the first play must touch the center square")
)

// MoveResult is what every game command returns. A rejected command leaves
// the game exactly as it was and explains itself in Message; an accepted
// placement also reports the points it scored.
type MoveResult struct {
	Valid   bool
	Score   int
	Message string
}

// Game is the actual internal game structure that controls the entire
// business logic of the game; drawing, placing tiles, etc.
type Game struct {
	alph *tilemapping.TileMapping
	// board and bag will contain the latest (current) versions of these.
	board              *board.GameBoard
	letterDistribution *tilemapping.LetterDistribution
	bag                *tilemapping.Bag
	policy             scoring.Policy

	playing PlayState

	uid               string
	wentfirst         int
	consecutivePasses int
	onturn            int
	turnnum           int
	players           playerStates

	// history records every accepted command, in order. Rejected commands
	// leave no trace here.
	history []*Event
}

// NewGame is how one instantiates a brand new game.
func NewGame(rules *GameRules, playerinfo []*PlayerInfo) (*Game, error) {
	if len(playerinfo) < MinPlayers || len(playerinfo) > MaxPlayers {
		return nil, fmt.Errorf("a game takes %d to %d players; got %d",
			MinPlayers, MaxPlayers, len(playerinfo))
	}
	game := &Game{}
	game.letterDistribution = rules.LetterDistribution()
	game.alph = game.letterDistribution.TileMapping()
	game.policy = rules.Policy()
	game.board = rules.Board().Copy()

	game.players = make(playerStates, len(playerinfo))
	for idx, p := range playerinfo {
		game.players[idx] = newPlayerState(p.Nickname, p.RealName)
	}
	return game, nil
}

// StartGame starts a game, dealing out tiles to all players and picking who
// goes first at random. Calling it on a game in progress abandons that game
// and starts over.
func (g *Game) StartGame() {
	g.board.Clear()
	g.bag = g.letterDistribution.MakeBag()
	g.uid = shortuuid.New()

	goesfirst := frand.Intn(len(g.players))
	for i := range g.players {
		tiles := make([]tilemapping.MachineLetter, RackTileLimit)
		if err := g.bag.Draw(RackTileLimit, tiles); err != nil {
			// A fresh bag always has enough tiles for every seat.
			panic(err)
		}
		g.players[i].rack = tilemapping.NewRack(g.alph)
		g.players[i].setRackTiles(tiles)
		g.players[i].resetScore()
	}
	g.history = nil
	g.playing = StatePlaying
	g.turnnum = 0
	g.onturn = goesfirst
	g.wentfirst = goesfirst
	g.consecutivePasses = 0
	log.Debug().Str("gameID", g.uid).Str("first", g.NickOnTurn()).
		Msg("started game")
}

// SubmitMove proposes a tile placement for the player on turn. The engine
// checks the placement structurally, then asks the game's scoring policy to
// judge it; only after both agree does anything change. On acceptance the
// tiles go on the board, the score is credited, the rack refills from the
// bag, and the turn advances.
func (g *Game) SubmitMove(placement move.Placement) MoveResult {
	if g.playing != StatePlaying {
		return MoveResult{Message: ErrGameOver.Error()}
	}
	leave, err := g.validatePlacement(placement)
	if err != nil {
		return MoveResult{Message: err.Error()}
	}
	score, err := g.policy.Evaluate(g.board, placement, g.letterDistribution)
	if err != nil {
		return MoveResult{Message: err.Error()}
	}

	// The placement passed every check; nothing below can fail.
	m := g.moveFromPlacement(placement, leave)
	m.SetScore(score)
	for _, pt := range m.Placement() {
		if err := g.board.PlaceTile(pt.Row, pt.Col, pt.Tile); err != nil {
			// validatePlacement vetted every square already.
			panic(err)
		}
	}
	g.players[g.onturn].points += score
	if m.TilesPlayed() == RackTileLimit {
		g.players[g.onturn].bingos++
	}
	g.players[g.onturn].turns++
	g.consecutivePasses = 0

	drew := make([]tilemapping.MachineLetter, m.TilesPlayed())
	n := g.bag.DrawAtMost(m.TilesPlayed(), drew)
	tiles := append(drew[:n], leave...)
	g.players[g.onturn].setRackTiles(tiles)

	g.addEvent(g.eventFromMove(m))

	if g.bag.TilesRemaining() == 0 && g.players[g.onturn].rack.NumTiles() == 0 {
		log.Debug().Str("gameID", g.uid).Str("player", g.NickOnTurn()).
			Msg("went out; game is over")
		g.playing = StateGameOver
		g.endOfGameCalcs(g.onturn)
	}
	g.nextTurn()
	return MoveResult{Valid: true, Score: score}
}

// validatePlacement enforces the structural rules that hold no matter what
// scoring policy the game was created with: every square must exist and be
// empty, no square may be named twice, blanks must be designated, the tiles
// must come from the rack, and the first play must touch the center. It
// returns the rack leave so the caller doesn't compute it twice.
func (g *Game) validatePlacement(placement move.Placement) (tilemapping.MachineWord, error) {
	if len(placement) == 0 {
		return nil, errors.New("your play must place a new tile")
	}
	if len(placement) > RackTileLimit {
		return nil, errors.New("your play contained too many tiles")
	}
	for idx, pt := range placement {
		if !g.board.PosExists(pt.Row, pt.Col) {
			return nil, fmt.Errorf("row %d col %d is outside the board", pt.Row, pt.Col)
		}
		if g.board.HasLetter(pt.Row, pt.Col) {
			return nil, fmt.Errorf("row %d col %d: %w", pt.Row, pt.Col, board.ErrCellOccupied)
		}
		if pt.Tile == 0 {
			return nil, errors.New("a played blank must be designated as a letter")
		}
		for j := idx + 1; j < len(placement); j++ {
			if placement[j].Row == pt.Row && placement[j].Col == pt.Col {
				return nil, errors.New("the play places two tiles on the same square")
			}
		}
	}
	leave, err := tilemapping.Leave(g.players[g.onturn].rack.TilesOn(),
		placement.Tiles(), false)
	if err != nil {
		return nil, err
	}
	if g.board.IsEmpty() && !coversCenter(g.board, placement) {
		return nil, ErrIllegalFirstMove
	}
	return leave, nil
}

func coversCenter(b *board.GameBoard, placement move.Placement) bool {
	for _, pt := range placement {
		if pt.Row == b.CenterRow() && pt.Col == b.CenterCol() {
			return true
		}
	}
	return false
}

// PassTurn gives up the turn. The board, the rack and all scores stay as
// they are. A full round of consecutive passes ends the game.
func (g *Game) PassTurn() MoveResult {
	if g.playing != StatePlaying {
		return MoveResult{Message: ErrGameOver.Error()}
	}
	m := move.NewPassMove(g.players[g.onturn].rack.TilesOn(), g.alph)
	g.players[g.onturn].turns++
	g.consecutivePasses++
	g.addEvent(g.eventFromMove(m))
	if g.consecutivePasses == len(g.players) {
		log.Debug().Str("gameID", g.uid).
			Msg("game ended with a full round of passes")
		g.playing = StateGameOver
	}
	g.nextTurn()
	return MoveResult{Valid: true}
}

// ExchangeTiles trades the named tiles for new ones from the bag. When the
// bag holds fewer tiles than the player gives up, the named tiles go back in
// first and the draw comes from the mixed bag; with an empty bag the
// exchange degrades to a pass.
func (g *Game) ExchangeTiles(letters tilemapping.MachineWord) MoveResult {
	if g.playing != StatePlaying {
		return MoveResult{Message: ErrGameOver.Error()}
	}
	if g.bag.TilesRemaining() == 0 {
		return g.PassTurn()
	}
	if len(letters) == 0 {
		return MoveResult{Message: "you must exchange at least one tile"}
	}
	leave, err := tilemapping.Leave(g.players[g.onturn].rack.TilesOn(), letters, true)
	if err != nil {
		return MoveResult{Message: err.Error()}
	}
	m := move.NewExchangeMove(letters, leave, g.alph)

	drawn := make([]tilemapping.MachineLetter, len(letters))
	if g.bag.TilesRemaining() >= len(letters) {
		if err := g.bag.Exchange(letters, drawn); err != nil {
			return MoveResult{Message: err.Error()}
		}
	} else {
		// Short bag: put ours back first, then draw. The bag goes back to
		// its old count and the rack stays whole.
		g.bag.PutBack(letters)
		n := g.bag.DrawAtMost(len(letters), drawn)
		drawn = drawn[:n]
	}
	tiles := append(drawn, leave...)
	g.players[g.onturn].setRackTiles(tiles)
	log.Debug().Str("newrack", g.players[g.onturn].rackLetters()).Msg("exchanged")

	g.players[g.onturn].turns++
	g.consecutivePasses = 0
	g.addEvent(g.eventFromMove(m))
	g.nextTurn()
	return MoveResult{Valid: true}
}

func (g *Game) nextTurn() {
	g.onturn = (g.onturn + 1) % len(g.players)
	g.turnnum++
}

// endOfGameCalcs credits the player who went out with twice the points left
// on every opponent's rack. Nobody ever loses points at the end of a game.
func (g *Game) endOfGameCalcs(onturn int) {
	unplayedPts := 0
	for i := range g.players {
		if i != onturn {
			unplayedPts += g.calculateRackPts(i)
		}
	}
	unplayedPts *= 2
	log.Debug().Int("onturn", onturn).Int("unplayedpts", unplayedPts).
		Msg("endOfGameCalcs")
	g.players[onturn].points += unplayedPts
	g.addEvent(g.endRackEvt(onturn, unplayedPts))
}

func (g *Game) calculateRackPts(onturn int) int {
	rack := g.players[onturn].rack
	return rack.ScoreOn(g.letterDistribution)
}

// SetRackFor sets the player's current rack. It throws an error if the rack
// is impossible to set from the current unseen tiles. It puts tiles back
// from all racks first, then sets the rack, and finally redraws for every
// other player.
func (g *Game) SetRackFor(playerIdx int, rack *tilemapping.Rack) error {
	g.ThrowRacksIn()
	log.Debug().Str("rack", rack.String()).Msg("removing from bag")
	err := g.bag.RemoveTiles(rack.TilesOn())
	if err != nil {
		log.Error().Msgf("unable to set rack: %v", err)
		return err
	}
	g.players[playerIdx].rack = rack
	log.Debug().Str("rack", rack.String()).Int("player", playerIdx).Msg("set rack")
	for i := range g.players {
		if i != playerIdx {
			g.SetRandomRack(i)
		}
	}
	return nil
}

// SetRacks sets every player's rack at once, pulling the named tiles out of
// the bag. A nil entry gets a random rack. Like SetRackFor, it fails when
// the unseen tiles can't cover a requested rack.
func (g *Game) SetRacks(racks []*tilemapping.Rack) error {
	g.ThrowRacksIn()
	for _, rack := range racks {
		if rack == nil {
			continue
		}
		if err := g.bag.RemoveTiles(rack.TilesOn()); err != nil {
			log.Error().Msgf("unable to set racks: %v", err)
			return err
		}
	}
	for idx, rack := range racks {
		if rack == nil {
			g.SetRandomRack(idx)
		} else {
			g.players[idx].rack = rack
		}
	}
	return nil
}

// ThrowRacksIn throws all players' racks back in the bag.
func (g *Game) ThrowRacksIn() {
	for i := range g.players {
		g.players[i].throwRackIn(g.bag)
	}
}

// SetRandomRack sets the player's rack to a random rack drawn from the bag.
// It tosses the current rack back in first. This is used for simulations.
func (g *Game) SetRandomRack(playerIdx int) {
	tiles := make([]tilemapping.MachineLetter, RackTileLimit)
	n := g.bag.Redraw(g.RackFor(playerIdx).TilesOn(), tiles)
	g.players[playerIdx].setRackTiles(tiles[:n])
}

// RackFor returns the rack for the player with the passed-in index.
func (g *Game) RackFor(playerIdx int) *tilemapping.Rack {
	return g.players[playerIdx].rack
}

// RackLettersFor returns a user-visible representation of the player's rack.
func (g *Game) RackLettersFor(playerIdx int) string {
	return g.RackFor(playerIdx).String()
}

// PointsFor returns the number of points for the given player.
func (g *Game) PointsFor(playerIdx int) int {
	return g.players[playerIdx].points
}

func (g *Game) PointsForNick(nick string) int {
	for i := range g.players {
		if g.players[i].Nickname == nick {
			return g.players[i].points
		}
	}
	return 0
}

func (g *Game) BingosForNick(nick string) int {
	for i := range g.players {
		if g.players[i].Nickname == nick {
			return g.players[i].bingos
		}
	}
	return 0
}

// SpreadFor returns the player's lead over the best-placed opponent. It is
// negative when the player is not in front.
func (g *Game) SpreadFor(playerIdx int) int {
	opp := make([]int, 0, len(g.players)-1)
	for i := range g.players {
		if i != playerIdx {
			opp = append(opp, g.players[i].points)
		}
	}
	return g.PointsFor(playerIdx) - lo.Max(opp)
}

func (g *Game) CurrentSpread() int {
	return g.SpreadFor(g.onturn)
}

func (g *Game) NumPlayers() int {
	return len(g.players)
}

// Bag returns the current bag.
func (g *Game) Bag() *tilemapping.Bag {
	return g.bag
}

// Board returns the current board state.
func (g *Game) Board() *board.GameBoard {
	return g.board
}

func (g *Game) Turn() int {
	return g.turnnum
}

func (g *Game) Uid() string {
	return g.uid
}

func (g *Game) Playing() PlayState {
	return g.playing
}

func (g *Game) PlayerOnTurn() int {
	return g.onturn
}

func (g *Game) NickOnTurn() string {
	return g.players[g.onturn].Nickname
}

func (g *Game) Alphabet() *tilemapping.TileMapping {
	return g.alph
}

func (g *Game) LetterDistribution() *tilemapping.LetterDistribution {
	return g.letterDistribution
}

// History returns every accepted command so far, oldest first.
func (g *Game) History() []*Event {
	return g.history
}

// LastEvent returns the most recent event, or nil for a game with no moves.
func (g *Game) LastEvent() *Event {
	if len(g.history) == 0 {
		return nil
	}
	return g.history[len(g.history)-1]
}

func (g *Game) FirstPlayer() PlayerInfo {
	return g.players[g.wentfirst].PlayerInfo
}

func (g *Game) PlayerInfoFor(playerIdx int) PlayerInfo {
	return g.players[playerIdx].PlayerInfo
}
