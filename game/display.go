package game

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

func splitSubN(s string, n int) []string {
	sub := ""
	subs := []string{}

	runes := bytes.Runes([]byte(s))
	l := len(runes)
	for i, r := range runes {
		sub = sub + string(r)
		if (i+1)%n == 0 {
			subs = append(subs, sub)
			sub = ""
		} else if (i + 1) == l {
			subs = append(subs, sub)
		}
	}

	return subs
}

func addText(lines []string, row int, hpad int, text string) {
	maxTextSize := 42
	sp := splitSubN(text, maxTextSize)

	for _, chunk := range sp {
		str := lines[row] + strings.Repeat(" ", hpad) + chunk
		lines[row] = str
		row++
	}
}

// ToDisplayText turns the current state of the game into a displayable
// string.
func (g *Game) ToDisplayText() string {
	bt := g.Board().ToDisplayText(g.Alphabet())
	// We need to insert rack, player, bag strings into the above string.
	bts := strings.Split(bt, "\n")
	hpadding := 3
	vpadding := 1
	bagColCount := 20

	log.Debug().Int("onturn", g.onturn).Msg("todisplaytext")
	for pi := range g.players {
		addText(bts, vpadding+pi, hpadding,
			g.players[pi].stateString(g.playing == StatePlaying && g.onturn == pi))
	}

	// Peek into the bag, and append the other players' tiles; from the
	// mover's seat those are equally unseen.
	unseen := g.bag.Peek()
	for i := range g.players {
		if i != g.onturn {
			unseen = append(unseen, g.players[i].rack.TilesOn()...)
		}
	}

	addText(bts, vpadding+len(g.players)+1, hpadding,
		fmt.Sprintf("Bag + unseen: (%d)", len(unseen)))

	vpadding = vpadding + len(g.players) + 3
	sort.Slice(unseen, func(i, j int) bool {
		return unseen[i] < unseen[j]
	})

	bagDisp := []string{}
	cCtr := 0
	bagStr := ""
	for i := 0; i < len(unseen); i++ {
		bagStr += string(unseen[i].UserVisible(g.alph, false)) + " "
		cCtr++
		if cCtr == bagColCount {
			bagDisp = append(bagDisp, bagStr)
			bagStr = ""
			cCtr = 0
		}
	}
	if bagStr != "" {
		bagDisp = append(bagDisp, bagStr)
	}

	for p := vpadding; p < vpadding+len(bagDisp); p++ {
		addText(bts, p, hpadding, bagDisp[p-vpadding])
	}

	turnRow := 12
	if vpadding+len(bagDisp) >= turnRow {
		turnRow = vpadding + len(bagDisp) + 1
	}
	addText(bts, turnRow, hpadding, fmt.Sprintf("Turn %d:", g.turnnum))

	// The last turn's events, on one line; the end-of-game bonus shares a
	// turn with the play that went out.
	if last := g.LastEvent(); last != nil {
		notes := ""
		for _, evt := range g.history {
			if evt.Turn == last.Turn {
				notes += evt.Summary()
			}
		}
		addText(bts, turnRow+1, hpadding, notes)
	}

	if g.playing == StateGameOver {
		addText(bts, 17, hpadding, "Game is over.")
	}

	return strings.Join(bts, "\n")
}
