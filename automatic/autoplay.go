package automatic

// Data collection for automatic games. Allow computer vs computer games, etc.

import (
	"context"
	"errors"
	"expvar"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/paramo/comala/config"
)

var (
	AutoplayCounter *expvar.Int
	IsPlaying       *expvar.Int
)

func init() {
	AutoplayCounter = expvar.NewInt("autoplayCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

type Job struct{}

// StartAutoplayGames plays numGames games of random-mover self-play on
// the given number of threads, writing a turn-by-turn CSV to
// outputFilename and, if the autoplay-game-log config is set, a YAML
// record of every game to that file. It returns as soon as the workers
// are going; cancel the context to stop early.
func StartAutoplayGames(ctx context.Context, cfg *config.Config,
	numGames int, threads int, outputFilename string) error {

	if IsPlaying.Value() > 0 {
		return errors.New("games are already being played, please wait till complete")
	}

	logfile, err := os.Create(outputFilename)
	if err != nil {
		return err
	}
	var gamefile *os.File
	if fn := cfg.GetString(config.ConfigAutoplayGameLog); fn != "" {
		gamefile, err = os.Create(fn)
		if err != nil {
			logfile.Close()
			return err
		}
	}
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	AutoplayCounter.Set(0)
	jobs := make(chan Job, 100)
	logChan := make(chan string, 100)
	var gameChan chan []byte
	if gamefile != nil {
		gameChan = make(chan []byte, 100)
	}

	g := errgroup.Group{}
	for t := 0; t < threads; t++ {
		g.Go(func() error {
			r, err := NewGameRunner(logChan, cfg)
			if err != nil {
				return err
			}
			r.gamechan = gameChan
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			for range jobs {
				r.PlayFullGame()
				AutoplayCounter.Add(1)
			}
			return nil
		})
	}

	go func() {
	gameLoop:
		for i := 1; i < numGames+1; i++ {
			select {
			case jobs <- Job{}:
				if i%1000 == 0 {
					log.Info().Msgf("Queued %v jobs", i)
				}
			case <-ctx.Done():
				// exit early
				log.Info().Msg("Got stop signal, exiting soon...")
				break gameLoop
			}
		}
		close(jobs)
		log.Info().Msg("Finished queueing all jobs.")
		if err := g.Wait(); err != nil {
			log.Err(err).Msg("autoplay worker failed")
		}
		log.Info().Msg("All games finished.")
		close(logChan)
		if gameChan != nil {
			close(gameChan)
		}
	}()

	go func() {
		logfile.WriteString("playerID,gameID,turn,rack,play,score,totalscore,tilesplayed,tilesremaining,oppscore\n")
		for msg := range logChan {
			logfile.WriteString(msg)
		}
		logfile.Close()
		log.Info().Msg("Exiting turn logger goroutine!")
	}()

	if gamefile != nil {
		go func() {
			for rec := range gameChan {
				gamefile.Write(rec)
			}
			gamefile.Close()
			log.Info().Msg("Exiting game logger goroutine!")
		}()
	}

	return nil
}
