// Package automatic contains all the logic for playing games without
// anybody at the keyboard, for data collection and for soak-testing the
// rules engine. The movers are not smart; they put random tiles wherever
// the board geometry allows and keep going until the game ends.
package automatic

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/paramo/comala/board"
	"github.com/paramo/comala/config"
	"github.com/paramo/comala/game"
	"github.com/paramo/comala/move"
	"github.com/paramo/comala/scoring"
	"github.com/paramo/comala/tilemapping"
)

const (
	// placementTries caps how many candidates a mover looks at before
	// giving up and exchanging or passing instead.
	placementTries = 100
	// maxTurnsPerGame cuts off a game that random play cannot finish.
	maxTurnsPerGame = 250
)

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	game   *game.Game
	config *config.Config

	logchan  chan string
	gamechan chan []byte
}

// NewGameRunner instantiates and initializes a game runner. Turn-by-turn
// CSV rows go out on logchan if it is non-nil.
func NewGameRunner(logchan chan string, cfg *config.Config) (*GameRunner, error) {
	r := &GameRunner{logchan: logchan, config: cfg}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

// Init sets up a fresh game between two random movers.
func (r *GameRunner) Init() error {
	rules, err := game.NewBasicGameRules(r.config, "", "", scoring.Standard)
	if err != nil {
		return err
	}
	players := []*game.PlayerInfo{
		{Nickname: "JP", RealName: "Juan Preciado"},
		{Nickname: "PP", RealName: "Pedro Páramo"},
	}
	r.game, err = game.NewGame(rules, players)
	return err
}

func (r *GameRunner) StartGame() {
	r.game.StartGame()
}

// Game returns the underlying game, for the shell and for tests.
func (r *GameRunner) Game() *game.Game {
	return r.game
}

func (r *GameRunner) randomTiles(n int) tilemapping.MachineWord {
	rack := r.game.RackFor(r.game.PlayerOnTurn()).TilesOn()
	perm := frand.Perm(len(rack))
	tiles := make(tilemapping.MachineWord, 0, n)
	for _, pi := range perm[:n] {
		t := rack[pi]
		if t == 0 {
			// Designate the blank as a random letter.
			t = tilemapping.MachineLetter(frand.Intn(int(r.game.Alphabet().NumLetters())) + 1).Blank()
		}
		tiles = append(tiles, t)
	}
	return tiles
}

// randomPlacement builds one candidate placement for the player on turn.
// Candidates sit in a single line, read through whatever they run into,
// and always touch the center square (empty board) or an existing tile,
// so the standard policy accepts every one of them. ok is false when the
// walk ran off the board.
func (r *GameRunner) randomPlacement() (move.Placement, bool) {
	g := r.game
	b := g.Board()
	rackSize := int(g.RackFor(g.PlayerOnTurn()).NumTiles())
	if rackSize == 0 {
		return nil, false
	}

	n := frand.Intn(rackSize) + 1
	if b.IsEmpty() {
		// The opener reads through nothing and needs two tiles.
		if rackSize < 2 {
			return nil, false
		}
		if n < 2 {
			n = 2
		}
	}
	tiles := r.randomTiles(n)

	vertical := frand.Intn(2) == 1
	ri, ci := 0, 1
	if vertical {
		ri, ci = 1, 0
	}

	if b.IsEmpty() {
		row, col := b.CenterRow(), b.CenterCol()
		if vertical {
			row -= frand.Intn(n)
		} else {
			col -= frand.Intn(n)
		}
		placement := make(move.Placement, n)
		for i, t := range tiles {
			placement[i] = move.PlacedTile{Row: row + ri*i, Col: col + ci*i, Tile: t}
		}
		return placement, true
	}

	anchorRow, anchorCol, ok := r.randomAnchor()
	if !ok {
		return nil, false
	}
	// Some of the tiles land before the anchor, the rest on and after it.
	before := frand.Intn(n)
	placement := make(move.Placement, n)
	row, col := anchorRow, anchorCol
	for i := before; i < n; i++ {
		for b.PosExists(row, col) && b.HasLetter(row, col) {
			row, col = row+ri, col+ci
		}
		if !b.PosExists(row, col) {
			return nil, false
		}
		placement[i] = move.PlacedTile{Row: row, Col: col, Tile: tiles[i]}
		row, col = row+ri, col+ci
	}
	row, col = anchorRow-ri, anchorCol-ci
	for i := before - 1; i >= 0; i-- {
		for b.PosExists(row, col) && b.HasLetter(row, col) {
			row, col = row-ri, col-ci
		}
		if !b.PosExists(row, col) {
			return nil, false
		}
		placement[i] = move.PlacedTile{Row: row, Col: col, Tile: tiles[i]}
		row, col = row-ri, col-ci
	}
	return placement, true
}

// randomAnchor picks an empty square next to at least one tile.
func (r *GameRunner) randomAnchor() (int, int, bool) {
	b := r.game.Board()
	dim := b.Dim()
	anchors := [][2]int{}
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			if !b.HasLetter(row, col) && hasNeighboringTile(b, row, col) {
				anchors = append(anchors, [2]int{row, col})
			}
		}
	}
	if len(anchors) == 0 {
		return 0, 0, false
	}
	a := anchors[frand.Intn(len(anchors))]
	return a[0], a[1], true
}

func hasNeighboringTile(b *board.GameBoard, row, col int) bool {
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if b.PosExists(row+d[0], col+d[1]) && b.HasLetter(row+d[0], col+d[1]) {
			return true
		}
	}
	return false
}

func (r *GameRunner) exchangeOrPass(playerIdx int) game.MoveResult {
	g := r.game
	rack := g.RackFor(playerIdx).TilesOn()
	if g.Bag().TilesRemaining() > 0 && len(rack) > 0 {
		n := frand.Intn(len(rack)) + 1
		perm := frand.Perm(len(rack))
		letters := make(tilemapping.MachineWord, 0, n)
		for _, pi := range perm[:n] {
			letters = append(letters, rack[pi])
		}
		return g.ExchangeTiles(letters)
	}
	return g.PassTurn()
}

// lastPlayEvent is the event for the turn that just happened, skipping
// over any end-of-game bonus event tacked on after it.
func (r *GameRunner) lastPlayEvent() *game.Event {
	evts := r.game.History()
	for i := len(evts) - 1; i >= 0; i-- {
		if evts[i].Type != game.EventEndRackPoints {
			return evts[i]
		}
	}
	return nil
}

func playDescription(evt *game.Event) string {
	switch evt.Type {
	case game.EventTilePlacement:
		return fmt.Sprintf("%v %v", evt.Position, evt.PlayedTiles)
	case game.EventExchange:
		return fmt.Sprintf("(exch %v)", evt.Exchanged)
	default:
		return "(Pass)"
	}
}

// PlayRandomTurn makes a random but legal turn for the given player. It
// tries tile placements first, then an exchange, then a pass; one of the
// three always goes through.
func (r *GameRunner) PlayRandomTurn(playerIdx int) {
	g := r.game
	// save rackLetters for logging.
	rackLetters := g.RackLettersFor(playerIdx)
	tilesRemaining := g.Bag().TilesRemaining()
	nickOnTurn := g.NickOnTurn()

	var result game.MoveResult
	tilesPlayed := 0
	for try := 0; try < placementTries && !result.Valid; try++ {
		placement, ok := r.randomPlacement()
		if !ok {
			continue
		}
		result = g.SubmitMove(placement)
		if result.Valid {
			tilesPlayed = len(placement)
		} else {
			// The geometry walk is supposed to only build legal plays.
			log.Error().Str("rejection", result.Message).Msg("rejected-candidate")
		}
	}
	if !result.Valid {
		result = r.exchangeOrPass(playerIdx)
	}

	if r.logchan != nil {
		evt := r.lastPlayEvent()
		r.logchan <- fmt.Sprintf("%v,%v,%v,%v,%v,%v,%v,%v,%v,%v\n",
			nickOnTurn,
			g.Uid(),
			evt.Turn,
			rackLetters,
			playDescription(evt),
			result.Score,
			g.PointsFor(playerIdx),
			tilesPlayed,
			tilesRemaining,
			g.PointsFor((playerIdx+1)%g.NumPlayers()))
	}
}

// PlayFullGame plays out one game from the opening racks to the final
// score and reports it on the runner's channels.
func (r *GameRunner) PlayFullGame() {
	r.StartGame()
	for r.game.Playing() == game.StatePlaying && r.game.Turn() < maxTurnsPerGame {
		r.PlayRandomTurn(r.game.PlayerOnTurn())
	}
	log.Debug().Str("gameID", r.game.Uid()).
		Msgf("game over. Score: %v - %v", r.game.PointsFor(0), r.game.PointsFor(1))
	if r.gamechan != nil {
		out, err := yamlRecord(r.record())
		if err != nil {
			log.Err(err).Msg("marshalling game record")
			return
		}
		r.gamechan <- out
	}
}

// record snapshots the finished game for the YAML game log.
func (r *GameRunner) record() *GameRecord {
	g := r.game
	rec := &GameRecord{
		ID:    g.Uid(),
		First: g.FirstPlayer().Nickname,
		Turns: g.Turn(),
		Log: lo.Map(g.History(), func(evt *game.Event, _ int) string {
			return evt.Summary()
		}),
	}
	for pidx := 0; pidx < g.NumPlayers(); pidx++ {
		nick := g.PlayerInfoFor(pidx).Nickname
		rec.Final = append(rec.Final, PlayerFinal{
			Nickname: nick,
			Points:   g.PointsFor(pidx),
			Bingos:   g.BingosForNick(nick),
		})
	}
	return rec
}
