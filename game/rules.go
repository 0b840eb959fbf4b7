package game

import (
	"github.com/paramo/comala/board"
	"github.com/paramo/comala/config"
	"github.com/paramo/comala/scoring"
	"github.com/paramo/comala/tilemapping"
)

// GameRules is a simple struct that encapsulates the instantiated objects
// needed to actually play a game.
type GameRules struct {
	cfg       *config.Config
	board     *board.GameBoard
	dist      *tilemapping.LetterDistribution
	policy    scoring.Policy
	boardname string
	distname  string
}

func (g GameRules) Config() *config.Config {
	return g.cfg
}

func (g GameRules) Board() *board.GameBoard {
	return g.board
}

func (g GameRules) LetterDistribution() *tilemapping.LetterDistribution {
	return g.dist
}

func (g GameRules) Policy() scoring.Policy {
	return g.policy
}

func (g GameRules) BoardName() string {
	return g.boardname
}

func (g GameRules) LetterDistributionName() string {
	return g.distname
}

// NewBasicGameRules instantiates the board, letter distribution and scoring
// policy a game is played under. Empty names fall back to the configured
// defaults, and a nil policy means scoring.Standard.
func NewBasicGameRules(cfg *config.Config, boardLayoutName, letterDistributionName string,
	policy scoring.Policy) (*GameRules, error) {

	if boardLayoutName == "" {
		boardLayoutName = cfg.GetString(config.ConfigDefaultBoardLayout)
	}
	if letterDistributionName == "" {
		letterDistributionName = cfg.GetString(config.ConfigDefaultLetterDistribution)
	}

	dist, err := tilemapping.NamedLetterDistribution(cfg, letterDistributionName)
	if err != nil {
		return nil, err
	}
	bd, err := board.NamedLayout(boardLayoutName)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		policy = scoring.Standard
	}

	rules := &GameRules{
		cfg:       cfg,
		dist:      dist,
		distname:  letterDistributionName,
		board:     board.MakeBoard(bd),
		boardname: boardLayoutName,
		policy:    policy,
	}
	return rules, nil
}
