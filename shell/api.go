package shell

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/paramo/comala/automatic"
	"github.com/paramo/comala/config"
	"github.com/paramo/comala/game"
	"github.com/paramo/comala/scoring"
	"github.com/paramo/comala/tilemapping"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func (c CmdOptions) StringArray(key string) []string {
	return c[key]
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	players := []*game.PlayerInfo{
		{Nickname: "JP", RealName: "Juan Preciado"},
		{Nickname: "SS", RealName: "Susana San Juan"},
	}
	if frand.Intn(2) == 1 {
		players[0], players[1] = players[1], players[0]
	}

	rules, err := game.NewBasicGameRules(sc.config, "", "", scoring.Standard)
	if err != nil {
		return nil, err
	}
	g, err := game.NewGame(rules, players)
	if err != nil {
		return nil, err
	}
	g.StartGame()
	sc.game = g
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) list(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	evts := sc.game.History()
	if len(evts) == 0 {
		return msg("no turns played yet"), nil
	}
	var ss strings.Builder
	for _, evt := range evts {
		fmt.Fprintf(&ss, "%d) %s\n", evt.Turn+1, evt.Summary())
	}
	return msg(strings.TrimRight(ss.String(), "\n")), nil
}

func (sc *ShellController) gid(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.Uid()), nil
}

// rack shows the rack of the player on turn, or overwrites it with the
// given letters, putting the old ones back in the bag.
func (sc *ShellController) rack(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	g := sc.game
	if len(cmd.args) == 0 {
		return msg(g.NickOnTurn() + ": " + g.RackLettersFor(g.PlayerOnTurn())), nil
	}
	letters := strings.ToUpper(cmd.args[0])
	err := g.SetRackFor(g.PlayerOnTurn(), tilemapping.RackFromString(letters, g.Alphabet()))
	if err != nil {
		return nil, err
	}
	return msg(g.ToDisplayText()), nil
}

func (sc *ShellController) scores(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	g := sc.game
	var ss strings.Builder
	for pidx := 0; pidx < g.NumPlayers(); pidx++ {
		info := g.PlayerInfoFor(pidx)
		fmt.Fprintf(&ss, "%s (%s): %d\n", info.Nickname, info.RealName, g.PointsFor(pidx))
	}
	fmt.Fprintf(&ss, "spread for %s: %+d", g.NickOnTurn(), g.CurrentSpread())
	return msg(ss.String()), nil
}

func (sc *ShellController) bag(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	tiles := sc.game.Bag().Peek()
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })
	return msg(fmt.Sprintf("%d tiles in the bag: %s", len(tiles),
		tilemapping.MachineWord(tiles).UserVisible(sc.game.Alphabet()))), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: play <coords> <word>, as in `play 8G BOX`")
	}
	// The word keeps its case; lowercase letters designate blanks.
	res := sc.game.PlayTextMove(cmd.args[0], cmd.args[1])
	if !res.Valid {
		return nil, errors.New(res.Message)
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) pass(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	res := sc.game.PassTurn()
	if !res.Valid {
		return nil, errors.New(res.Message)
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) exchange(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: exchange <tiles>, as in `exchange QXZ` or `exchange ?A`")
	}
	letters, err := tilemapping.ToMachineWord(strings.ToUpper(cmd.args[0]), sc.game.Alphabet())
	if err != nil {
		return nil, err
	}
	res := sc.game.ExchangeTiles(letters)
	if !res.Valid {
		return nil, errors.New(res.Message)
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	return sc.handleAutoplay(cmd.args, cmd.options)
}

func (sc *ShellController) handleAutoplay(args []string, options CmdOptions) (*Response, error) {
	if len(args) == 1 && args[0] == "stop" {
		if automatic.IsPlaying.Value() == 0 || sc.autoplayCancel == nil {
			return nil, errors.New("no autoplay games are running")
		}
		sc.autoplayCancel()
		return msg("stopping autoplay games..."), nil
	}
	numGames := 1000
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, err
		}
		numGames = n
	}
	threads, err := options.IntDefault("threads", runtime.NumCPU())
	if err != nil {
		return nil, err
	}
	logfile := options.String("file")
	if logfile == "" {
		logfile = sc.config.GetString(config.ConfigAutoplayTurnLog)
	}
	sc.autoplayCtx, sc.autoplayCancel = context.WithCancel(context.Background())
	err = automatic.StartAutoplayGames(sc.autoplayCtx, sc.config, numGames, threads, logfile)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf(
		"started %d autoplay games on %d threads; turn log is %v "+
			"(watch it grow, then `autoanalyze %v`)",
		numGames, threads, logfile, logfile)), nil
}

func (sc *ShellController) autoAnalyze(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("please provide a filename to analyze")
	}
	analysis, err := automatic.AnalyzeLogFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(analysis), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	settings := sc.config.AllSettings()
	if len(cmd.args) == 0 {
		keys := lo.Keys(settings)
		sort.Strings(keys)
		var ss strings.Builder
		for _, k := range keys {
			fmt.Fprintf(&ss, "%s: %v\n", k, settings[k])
		}
		return msg(strings.TrimRight(ss.String(), "\n")), nil
	}
	key := cmd.args[0]
	if len(cmd.args) == 1 {
		return msg(fmt.Sprintf("%s: %v", key, settings[key])), nil
	}
	value := strings.Join(cmd.args[1:], " ")
	sc.config.Set(key, value)
	return msg("set " + key + " to " + value), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return usage()
	}
	return usageTopic(cmd.args[0])
}
