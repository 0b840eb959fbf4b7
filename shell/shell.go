// Package shell is the interactive part of comala. It wraps the game
// engine in a readline loop so people can play, watch autoplay runs,
// and poke at settings from a terminal.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/paramo/comala/config"
	"github.com/paramo/comala/game"
)

var (
	errNoData            = errors.New("no data in command")
	errWrongOptionSyntax = errors.New("options need to come in pairs")
	errExiting           = errors.New("sending quit signal")
	errNoGame            = errors.New("please start a game first with the `new` command")
)

type ShellController struct {
	l      *readline.Instance
	config *config.Config

	game *game.Game

	autoplayCtx    context.Context
	autoplayCancel context.CancelFunc
}

// shellcmd is a single parsed command line: the command, its plain
// arguments, and its -key value options.
type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := strings.ToLower(fields[0])
	var args []string
	options := CmdOptions{}

	lastWasOption := false
	lastOption := ""
	for _, token := range fields[1:] {
		if lastWasOption {
			options[lastOption] = append(options[lastOption], token)
			lastWasOption = false
			continue
		}
		if strings.HasPrefix(token, "-") && len(token) > 1 {
			lastWasOption = true
			lastOption = token[1:]
			continue
		}
		args = append(args, token)
	}
	if lastWasOption {
		// an option without a value
		return nil, errWrongOptionSyntax
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	showMessage("Error: "+err.Error(), sc.l.Stderr())
}

func NewShellController(cfg *config.Config) *ShellController {
	sc := &ShellController{config: cfg}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mcomala>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		AutoComplete:        NewShellCompleter(sc),
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	return sc
}

func (sc *ShellController) dispatch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "new":
		return sc.newGame(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "list", "l":
		return sc.list(cmd)
	case "gid":
		return sc.gid(cmd)
	case "rack":
		return sc.rack(cmd)
	case "scores":
		return sc.scores(cmd)
	case "bag":
		return sc.bag(cmd)
	case "play", "add":
		return sc.play(cmd)
	case "pass":
		return sc.pass(cmd)
	case "exchange", "exch":
		return sc.exchange(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "autoanalyze":
		return sc.autoAnalyze(cmd)
	case "script":
		return sc.script(cmd)
	case "set", "settings":
		return sc.set(cmd)
	case "help":
		return sc.help(cmd)
	case "exit", "quit", "bye":
		return nil, errExiting
	default:
		return nil, fmt.Errorf("command %v not found", strconv.Quote(cmd.cmd))
	}
}

// Execute runs a single command line and returns whatever it printed.
// It is the scripted entry point to the shell; the Loop uses the same
// dispatch.
func (sc *ShellController) Execute(line string) (string, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return "", err
	}
	resp, err := sc.dispatch(cmd)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", nil
	}
	return resp.message, nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		cmd, err := extractFields(line)
		if err != nil {
			if err != errNoData {
				sc.showError(err)
			}
			continue
		}
		resp, err := sc.dispatch(cmd)
		if err == errExiting {
			sig <- syscall.SIGINT
			break
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup stops any background autoplay before the process exits.
func (sc *ShellController) Cleanup() {
	if sc.autoplayCancel != nil {
		sc.autoplayCancel()
	}
}
