package shell

import (
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string // Available options for this command (e.g., "-threads")
	Args    []string // Possible argument values (for non-option arguments)
}

// commandMetadata maps command names to their options and arguments.
// Every shell command appears here, even the ones with nothing to
// complete; the command-name completions come from the keys.
var commandMetadata = map[string]CommandMetadata{
	"new":      {},
	"show":     {},
	"list":     {},
	"gid":      {},
	"rack":     {},
	"scores":   {},
	"bag":      {},
	"play":     {},
	"add":      {},
	"pass":     {},
	"exchange": {},
	"exch":     {},
	"autoplay": {
		Options: []string{"-threads", "-file"},
		Args:    []string{"stop"},
	},
	"autoanalyze": {},
	"script":      {},
	"set": {
		Args: []string{
			"data-path", "board-layout", "letter-distribution",
			"autoplay-turn-log", "autoplay-game-log", "debug",
			"cpu-profile", "mem-profile",
		},
	},
	"settings": {},
	"help": {
		Args: []string{
			"new", "show", "list", "gid", "rack", "scores", "bag", "play",
			"pass", "exchange", "autoplay", "autoanalyze", "script", "set",
			"exit",
		},
	},
	"exit": {},
	"quit": {},
	"bye":  {},
}

var commandNames = func() []string {
	names := lo.Keys(commandMetadata)
	sort.Strings(names)
	return names
}()

var boolValues = []string{"true", "false"}

// Do implements the readline.AutoComplete interface. It provides
// context-aware autocomplete based on what's been typed.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Get the text up to the cursor position
	text := string(line[:pos])

	// Parse the line using shellquote to handle quoted strings properly
	fields, err := shellquote.Split(text)
	if err != nil {
		// If we can't parse, fall back to simple space splitting
		fields = strings.Fields(text)
	}

	// Check if we're in the middle of typing a word or just after a space
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		// Completing a command name
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		// We have a command, now complete its arguments/options
		cmdName := fields[0]

		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}

		// Get the last complete field to check context
		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		// A handful of options expect specific values
		if strings.HasPrefix(lastCompleteField, "-") {
			switch strings.TrimPrefix(lastCompleteField, "-") {
			case "debug":
				completions = boolValues
			}
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") {
					completions = metadata.Options
				} else if len(metadata.Args) > 0 {
					completions = metadata.Args
				} else {
					completions = metadata.Options
				}
			}
		}
	}

	// Filter completions based on prefix
	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			suffix := completion[len(prefix):]
			matches = append(matches, []rune(suffix))
		}
	}

	return matches, len(prefix)
}
