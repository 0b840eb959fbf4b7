package game

import (
	"fmt"

	"github.com/paramo/comala/tilemapping"
	"github.com/rs/zerolog/log"
)

// PlayerInfo identifies one seat at the table. The engine never inspects
// these fields; they exist for display and for the event log.
type PlayerInfo struct {
	Nickname string
	RealName string
}

type playerState struct {
	PlayerInfo

	rack   *tilemapping.Rack
	points int
	bingos int
	turns  int
}

func newPlayerState(nickname, realname string) *playerState {
	return &playerState{
		PlayerInfo: PlayerInfo{
			Nickname: nickname,
			RealName: realname,
		},
	}
}

func (p *playerState) resetScore() {
	p.points = 0
	p.bingos = 0
	p.turns = 0
}

func (p *playerState) throwRackIn(bag *tilemapping.Bag) {
	log.Debug().Str("rack", p.rack.String()).Str("player", p.Nickname).
		Msg("throwing rack in")
	bag.PutBack(p.rack.TilesOn())
	p.rack.Set([]tilemapping.MachineLetter{})
}

func (p *playerState) setRackTiles(tiles []tilemapping.MachineLetter) {
	p.rack.Set(tiles)
}

func (p *playerState) rackLetters() string {
	return p.rack.String()
}

func (p *playerState) stateString(myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	rackLetters := p.rackLetters()
	if !myturn {
		// Don't show rack letters.
		rackLetters = ""
	}
	return fmt.Sprintf("%4v%20v%9v %4v", onturn, p.Nickname, rackLetters, p.points)
}

type playerStates []*playerState

func (p playerStates) resetScore() {
	for idx := range p {
		p[idx].resetScore()
	}
}
