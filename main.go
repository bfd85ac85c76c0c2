package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/ncruces/zenity"
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/valentine/internal/audio"
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/game"
	"github.com/iburimskiy/valentine/internal/geom"
	"github.com/iburimskiy/valentine/internal/proposal"
	"github.com/iburimskiy/valentine/internal/report"
	"github.com/iburimskiy/valentine/internal/tui"
)

type flags struct {
	tui       bool
	pickMusic bool
	phrases   string
	seed      uint64
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("valentine", flag.ContinueOnError)
	fs.BoolVar(&f.tui, "tui", false, "Run in the terminal instead of a window")
	fs.BoolVar(&f.pickMusic, "pick-music", false, "Choose the background music with a file dialog")
	fs.StringVar(&f.phrases, "phrases", "", "YAML file with the negative button phrases")
	fs.Uint64Var(&f.seed, "seed", 0, "Random seed for button placement (0 picks one)")
	return f, fs.Parse(args)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code. Deferred cleanup always runs before main exits.
func run(args []string) int {
	opts, err := parseFlags(args)
	if err != nil {
		return 2
	}

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		return 1
	}
	if opts.phrases != "" {
		settings.PhrasesPath = opts.phrases
	}
	if opts.seed != 0 {
		settings.Seed = opts.seed
	}

	logger, logFile, err := setupLogging(settings, opts.tui)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log := logger.WithField("session", uuid.NewString())

	deck := proposal.DefaultDeck()
	if settings.PhrasesPath != "" {
		deck, err = proposal.LoadDeck(settings.PhrasesPath)
		if err != nil {
			log.WithError(err).Error("failed to load phrases")
			return 1
		}
	}

	if opts.pickMusic {
		if path, err := pickMusic(); err != nil {
			log.WithError(err).Warn("music picker failed, using configured track")
		} else if path != "" {
			settings.MusicPath = path
		}
	}

	seed := settings.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
	log.WithField("seed", seed).Debug("random source ready")

	player := audio.NewPlayer(audio.Options{
		Enabled: settings.AudioEnabled,
		Path:    settings.MusicPath,
		Volume:  settings.Volume,
	}, log)
	defer player.Close()

	latch := proposal.NewAudioLatch(player, log)
	session := proposal.NewSession(deck, geom.NewPlacer(rng), latch, log)

	if opts.tui {
		err = runTerminal(session, rng, settings, log)
	} else {
		err = game.Run(settings.Title, game.Options{
			Session:  session,
			Meter:    player,
			Rand:     rng,
			Question: settings.Question,
			Footer:   settings.Footer,
			Log:      log,
		})
	}
	latch.Wait()
	if err != nil {
		log.WithError(err).Error("frontend stopped")
		return 1
	}

	fmt.Println(report.Summary(session.State(), deck))
	return 0
}

func runTerminal(session *proposal.Session, rng *rand.Rand, settings *config.Settings, log *logrus.Entry) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	app := tui.New(screen, tui.Options{
		Session:  session,
		Rand:     rng,
		Question: settings.Question,
		Footer:   settings.Footer,
		Log:      log,
	})
	return app.Run()
}

// setupLogging writes to stderr for the window frontend. The terminal frontend owns the
// screen, so its logs go to the configured file instead.
func setupLogging(settings *config.Settings, toFile bool) (*logrus.Logger, *os.File, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(settings.Level())

	if !toFile {
		logger.SetOutput(os.Stderr)
		return logger, nil, nil
	}

	if settings.LogFile == "" {
		logger.SetOutput(io.Discard)
		return logger, nil, nil
	}

	f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f, nil
}

func pickMusic() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Choose background music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.SupportedPatterns,
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return path, err
}
