package game

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	g := testGame(t, nil)
	setRacks(t, g, "BOXAEIN", "AEINRST")
	is.True(g.PlayTextMove("8G", "BOX").Valid)

	dt := g.ToDisplayText()
	is.True(strings.Contains(dt, "Bag + unseen: (90)"))
	is.True(strings.Contains(dt, "Turn 1:"))
	is.True(strings.Contains(dt, "JP played 8G BOX for 24 pts from a rack of ABEINOX"))
	is.True(strings.Contains(dt, "-> "))
	is.True(strings.Contains(dt, "AEINRST")) // the mover sees their own rack
	is.True(!strings.Contains(dt, "Game is over."))
}

func TestToDisplayTextGameOver(t *testing.T) {
	is := is.New(t)
	g := testGame(t, nil)
	g.PassTurn()
	g.PassTurn()

	dt := g.ToDisplayText()
	is.True(strings.Contains(dt, "Game is over."))
	is.True(strings.Contains(dt, "passed, holding a rack of"))
}
