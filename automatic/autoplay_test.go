package automatic

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"gopkg.in/yaml.v3"

	"github.com/paramo/comala/config"
)

func TestStartAutoplayGames(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	turnlog := filepath.Join(dir, "turns.csv")
	gamelog := filepath.Join(dir, "games.yaml")
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigAutoplayGameLog, gamelog)

	err := StartAutoplayGames(context.Background(), cfg, 4, 2, turnlog)
	is.NoErr(err)

	// The games play out in the background; wait for the logs to land.
	var out string
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
		if IsPlaying.Value() != 0 || AutoplayCounter.Value() < 4 {
			continue
		}
		res, err := AnalyzeLogFile(turnlog)
		if err == nil && strings.Contains(res, "Games played: 4") {
			out = res
			break
		}
	}
	is.True(strings.Contains(out, "Games played: 4"))
	is.True(strings.Contains(out, "Mean turns:"))

	var recs []*GameRecord
	for time.Now().Before(deadline) {
		content, err := os.ReadFile(gamelog)
		if err == nil {
			recs = nil
			if yaml.Unmarshal(content, &recs) == nil && len(recs) == 4 {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	is.Equal(len(recs), 4)
	for _, rec := range recs {
		is.Equal(len(rec.Final), 2)
		is.True(rec.Turns > 0)
		is.True(rec.ID != "")
	}
}

func TestStartAutoplayGamesBusy(t *testing.T) {
	is := is.New(t)
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)

	err := StartAutoplayGames(context.Background(), config.DefaultConfig(), 1, 1,
		filepath.Join(t.TempDir(), "turns.csv"))
	is.True(err != nil)
}
