package automatic

import (
	"strings"
	"sync"
	"testing"

	"github.com/matryer/is"
	"gopkg.in/yaml.v3"

	"github.com/paramo/comala/config"
	"github.com/paramo/comala/game"
)

var DefaultConfig = config.DefaultConfig()

func totalTiles(g *game.Game) int {
	n := g.Bag().TilesRemaining() + g.Board().TilesPlayed()
	for pidx := 0; pidx < g.NumPlayers(); pidx++ {
		n += len(g.RackFor(pidx).TilesOn())
	}
	return n
}

func TestFirstRandomTurnIsAPlacement(t *testing.T) {
	is := is.New(t)
	r, err := NewGameRunner(nil, DefaultConfig)
	is.NoErr(err)
	r.StartGame()
	r.PlayRandomTurn(r.Game().PlayerOnTurn())

	evts := r.Game().History()
	is.Equal(len(evts), 1)
	is.Equal(evts[0].Type, game.EventTilePlacement)
	is.True(r.Game().Board().TilesPlayed() >= 2)
}

func TestRandomPlacementOpener(t *testing.T) {
	is := is.New(t)
	r, err := NewGameRunner(nil, DefaultConfig)
	is.NoErr(err)
	r.StartGame()
	b := r.Game().Board()

	for i := 0; i < 20; i++ {
		placement, ok := r.randomPlacement()
		is.True(ok)
		is.True(len(placement) >= 2)
		coversCenter := false
		for _, pt := range placement {
			if pt.Row == b.CenterRow() && pt.Col == b.CenterCol() {
				coversCenter = true
			}
			is.True(pt.Tile != 0)
		}
		is.True(coversCenter)
	}
}

func TestPlayFullGame(t *testing.T) {
	is := is.New(t)
	r, err := NewGameRunner(nil, DefaultConfig)
	is.NoErr(err)
	r.PlayFullGame()

	g := r.Game()
	is.True(g.Playing() == game.StateGameOver || g.Turn() >= maxTurnsPerGame)
	is.True(len(g.History()) > 0)
	is.Equal(totalTiles(g), int(g.LetterDistribution().NumTotalLetters()))
	is.True(g.PointsFor(0) >= 0)
	is.True(g.PointsFor(1) >= 0)
}

func TestPlayFullGameRecord(t *testing.T) {
	is := is.New(t)
	r, err := NewGameRunner(nil, DefaultConfig)
	is.NoErr(err)
	r.gamechan = make(chan []byte, 1)
	r.PlayFullGame()

	var recs []*GameRecord
	is.NoErr(yaml.Unmarshal(<-r.gamechan, &recs))
	is.Equal(len(recs), 1)

	rec := recs[0]
	g := r.Game()
	is.Equal(rec.ID, g.Uid())
	is.Equal(rec.First, g.FirstPlayer().Nickname)
	is.Equal(rec.Turns, g.Turn())
	is.Equal(len(rec.Final), 2)
	is.Equal(rec.Final[0].Points, g.PointsFor(0))
	is.Equal(rec.Final[1].Points, g.PointsFor(1))
	is.Equal(len(rec.Log), len(g.History()))
	is.Equal(rec.Log[0], g.History()[0].Summary())
}

func TestTurnLog(t *testing.T) {
	is := is.New(t)
	logchan := make(chan string)
	r, err := NewGameRunner(logchan, DefaultConfig)
	is.NoErr(err)

	rows := []string{}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for msg := range logchan {
			rows = append(rows, msg)
		}
	}()
	r.PlayFullGame()
	close(logchan)
	wg.Wait()

	g := r.Game()
	is.True(len(rows) > 0)
	fields := strings.Split(strings.TrimSuffix(rows[0], "\n"), ",")
	is.Equal(len(fields), 10)
	is.Equal(fields[0], g.FirstPlayer().Nickname)
	is.Equal(fields[1], g.Uid())
	is.Equal(fields[2], "0")
}
