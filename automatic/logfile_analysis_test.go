package automatic

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func writeTestLog(t *testing.T, rows []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "turns.csv")
	content := "playerID,gameID,turn,rack,play,score,totalscore,tilesplayed,tilesremaining,oppscore\n" +
		strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAnalyzeLogFile(t *testing.T) {
	is := is.New(t)
	path := writeTestLog(t, []string{
		"JP,gamea,0,AEINRST,8G AIT,10,10,3,79,0",
		"PP,gamea,1,BDEOOUX,9G BO,20,20,2,74,10",
		"JP,gamea,2,ENRSQWZ,H10 EN,10,30,2,70,20",
		"PP,gamea,3,DEOUXYZ,(Pass),0,20,0,70,30",
		"PP,gameb,0,AAEIOUY,8F YEA,5,5,3,81,0",
		"JP,gameb,1,BCDFGHJ,(exch BCD),0,5,0,78,5",
	})
	out, err := AnalyzeLogFile(path)
	is.NoErr(err)
	is.True(strings.Contains(out, "Games played: 2"))
	is.True(strings.Contains(out, "JP wins: 1.5 (75.000%)"))
	is.True(strings.Contains(out, "JP went first: 1.0 (50.000%)"))
	is.True(strings.Contains(out, "Player who went first wins: 1.5 (75.000%)"))
	is.True(strings.Contains(out, "JP Mean Score: 17.500000  Stdev: 17.677670  95%CI: ±24.499550"))
	is.True(strings.Contains(out, "PP Mean Score: 12.500000  Stdev: 10.606602"))
	is.True(strings.Contains(out, "Mean turns: 3.00  Min: 2  Max: 4"))
	is.True(strings.Contains(out, "JP final scores:"))
	is.True(strings.Contains(out, "PP final scores:"))
}

func TestAnalyzeLogFileSkipsCutOffGames(t *testing.T) {
	is := is.New(t)
	path := writeTestLog(t, []string{
		"JP,gamea,0,AEINRST,8G AIT,10,10,3,79,0",
		"PP,gamea,1,ABCDEFG,(Pass),0,0,0,79,10",
		// gameb got cancelled after a single turn; PP never moved.
		"JP,gameb,0,AEIOUNR,8G AE,4,4,2,81,0",
	})
	out, err := AnalyzeLogFile(path)
	is.NoErr(err)
	is.True(strings.Contains(out, "Games played: 1"))
	is.True(strings.Contains(out, "JP wins: 1.0 (100.000%)"))
	// a single game has no score range to bucket
	is.True(!strings.Contains(out, "final scores:"))
}

func TestAnalyzeLogFileErrors(t *testing.T) {
	is := is.New(t)
	_, err := AnalyzeLogFile(filepath.Join(t.TempDir(), "nonexistent.csv"))
	is.True(err != nil)

	path := writeTestLog(t, nil)
	_, err = AnalyzeLogFile(path)
	is.True(err != nil)
}
