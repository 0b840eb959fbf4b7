package game

import (
	"fmt"

	"github.com/paramo/comala/move"
	"github.com/rs/zerolog/log"
)

// EventType says what kind of command an event records.
type EventType int

const (
	EventTilePlacement EventType = iota
	EventPass
	EventExchange
	EventEndRackPoints
)

// Event is one entry in a game's history: an accepted command plus the
// score it left behind. Rack is the rack the player held before the command
// ran; Cumulative is the player's score right after it.
type Event struct {
	PlayerIndex   int
	Nickname      string
	Type          EventType
	Rack          string
	Position      string
	PlayedTiles   string
	Exchanged     string
	Score         int
	Cumulative    int
	IsBingo       bool
	EndRackPoints int
	Turn          int
}

// Summary is a one-line description of the event, the way a score sheet
// would read it.
func (e *Event) Summary() string {
	switch e.Type {
	case EventTilePlacement:
		return fmt.Sprintf("%s played %s %s for %d pts from a rack of %s",
			e.Nickname, e.Position, e.PlayedTiles, e.Score, e.Rack)

	case EventPass:
		return fmt.Sprintf("%s passed, holding a rack of %s",
			e.Nickname, e.Rack)

	case EventExchange:
		return fmt.Sprintf("%s exchanged %s from a rack of %s",
			e.Nickname, e.Exchanged, e.Rack)

	case EventEndRackPoints:
		return fmt.Sprintf(" (+%d from opponent racks)", e.EndRackPoints)
	}
	return ""
}

func (g *Game) eventFromMove(m *move.Move) *Event {
	curPlayer := g.curPlayer()

	evt := &Event{
		PlayerIndex: g.onturn,
		Nickname:    curPlayer.Nickname,
		Cumulative:  curPlayer.points,
		Rack:        m.FullRack(),
	}

	switch m.Action() {
	case move.MoveTypePlay:
		evt.Position = m.BoardCoords()
		evt.PlayedTiles = m.TilesString()
		evt.Score = m.Score()
		evt.Type = EventTilePlacement
		evt.IsBingo = m.BingoPlayed()

	case move.MoveTypePass:
		evt.Type = EventPass

	case move.MoveTypeExchange:
		evt.Exchanged = m.TilesString()
		evt.Type = EventExchange
	}
	log.Debug().
		Str("move", m.ShortDescription()).
		Interface("evt", evt).
		Msg("eventFromMove")

	return evt
}

func (g *Game) endRackEvt(pidx int, bonusPts int) *Event {
	return &Event{
		PlayerIndex:   pidx,
		Nickname:      g.players[pidx].Nickname,
		Cumulative:    g.players[pidx].points,
		EndRackPoints: bonusPts,
		Type:          EventEndRackPoints,
	}
}

func (g *Game) addEvent(evt *Event) {
	evt.Turn = g.turnnum
	g.history = append(g.history, evt)
}
