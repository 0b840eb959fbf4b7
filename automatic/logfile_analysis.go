package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"

	"github.com/paramo/comala/stats"
)

const scoreHistogramBins = 15

// scoreHistogram renders an ASCII histogram of final scores. Degenerate
// data (every score identical) has no range to bucket and gets skipped.
func scoreHistogram(header string, scores []float64) (string, error) {
	if len(scores) == 0 || lo.Min(scores) == lo.Max(scores) {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("\n" + header + "\n")
	hist := histogram.Hist(scoreHistogramBins, scores)
	if err := histogram.Fprint(&sb, hist, histogram.Linear(20)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// gameResult accumulates the rows of a single game as they stream by.
// Workers interleave rows from different games in the log, but rows
// within one game always arrive in turn order.
type gameResult struct {
	first  string
	turns  int
	finals map[string]int
}

// AnalyzeLogFile analyzes the given turn-by-turn autoplay CSV file and
// spits out a bunch of statistics.
func AnalyzeLogFile(filepath string) (string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	r := csv.NewReader(file)

	// Record looks like:
	// playerID,gameID,turn,rack,play,score,totalscore,tilesplayed,tilesremaining,oppscore

	games := map[string]*gameResult{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if record[0] == "playerID" {
			// this is the header line
			continue
		}
		nick := record[0]
		gameID := record[1]
		turn, err := strconv.Atoi(record[2])
		if err != nil {
			return "", err
		}
		totalscore, err := strconv.Atoi(record[6])
		if err != nil {
			return "", err
		}
		gr := games[gameID]
		if gr == nil {
			gr = &gameResult{first: nick, finals: map[string]int{}}
			games[gameID] = gr
		}
		if turn > gr.turns {
			gr.turns = turn
		}
		// Later rows overwrite earlier ones, so this ends up holding the
		// player's final score, end-of-game bonus included.
		gr.finals[nick] = totalscore
	}

	nicknames := lo.Uniq(lo.FlatMap(lo.Values(games), func(gr *gameResult, _ int) []string {
		return lo.Keys(gr.finals)
	}))
	sort.Strings(nicknames)
	if len(nicknames) != 2 {
		return "", fmt.Errorf("expected 2 players in log file, found %d", len(nicknames))
	}
	p1Name, p2Name := nicknames[0], nicknames[1]

	player1stats := &stats.Statistic{}
	player2stats := &stats.Statistic{}
	turnstats := &stats.Statistic{}
	p1scores := []float64{}
	p2scores := []float64{}

	p1wl := float64(0)
	p1first := float64(0)
	wentFirstWL := float64(0)
	gamesPlayed := 0
	for _, gr := range games {
		p1score, ok1 := gr.finals[p1Name]
		p2score, ok2 := gr.finals[p2Name]
		if !ok1 || !ok2 {
			// A game cut off before the second player ever moved.
			continue
		}
		player1stats.Push(float64(p1score))
		player2stats.Push(float64(p2score))
		turnstats.Push(float64(gr.turns + 1))
		p1scores = append(p1scores, float64(p1score))
		p2scores = append(p2scores, float64(p2score))
		if p1score > p2score {
			p1wl += 1.0
			if gr.first == p1Name {
				wentFirstWL += 1.0
			}
		} else if p1score == p2score {
			p1wl += 0.5
			wentFirstWL += 0.5
		} else if gr.first == p2Name {
			wentFirstWL += 1.0
		}
		if gr.first == p1Name {
			p1first++
		}
		gamesPlayed++
	}
	if gamesPlayed == 0 {
		return "", errors.New("no complete games in log file")
	}

	// build stats string
	statsStr := fmt.Sprintf("Games played: %d\n", gamesPlayed)
	statsStr += fmt.Sprintf("%v wins: %.1f (%.3f%%)\n", p1Name, p1wl,
		100.0*p1wl/float64(gamesPlayed))
	statsStr += fmt.Sprintf("%v went first: %.1f (%.3f%%)\n", p1Name, p1first,
		100.0*p1first/float64(gamesPlayed))
	statsStr += fmt.Sprintf("Player who went first wins: %.1f (%.3f%%)\n",
		wentFirstWL, 100.0*wentFirstWL/float64(gamesPlayed))
	statsStr += fmt.Sprintf("%v Mean Score: %.6f  Stdev: %.6f  95%%CI: ±%.6f\n",
		p1Name, player1stats.Mean(), player1stats.Stdev(), player1stats.MeanCI(95))
	statsStr += fmt.Sprintf("%v Mean Score: %.6f  Stdev: %.6f  95%%CI: ±%.6f\n",
		p2Name, player2stats.Mean(), player2stats.Stdev(), player2stats.MeanCI(95))
	statsStr += fmt.Sprintf("Mean turns: %.2f  Min: %.0f  Max: %.0f\n",
		turnstats.Mean(), turnstats.Min(), turnstats.Max())

	p1hist, err := scoreHistogram(p1Name+" final scores:", p1scores)
	if err != nil {
		return "", err
	}
	p2hist, err := scoreHistogram(p2Name+" final scores:", p2scores)
	if err != nil {
		return "", err
	}
	statsStr += p1hist + p2hist

	return statsStr, nil
}
