package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minerun/internal/config"
	"github.com/vancomm/minerun/internal/logging"
	"github.com/vancomm/minerun/internal/mines"
	"github.com/vancomm/minerun/internal/session"
)

var (
	log = logrus.New()

	configPath string
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	// The terminal belongs to the game: log to the file only.
	if err := logging.Setup(cfg, nil, log, session.Log, mines.Log); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	footprint, _ := cfg.FootprintMode()
	s, err := session.New(mines.DefaultParams(),
		session.WithRand(cfg.Rand()),
		session.WithFootprint(footprint),
	)
	if err != nil {
		log.Fatal("unable to create session: ", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal("unable to create screen: ", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal("unable to init screen: ", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	if err := run(mainCtx, screen, s, cfg); err != nil {
		log.Fatal("exit reason: ", err)
	}
	log.WithField("stats", s.Stats()).Info("bye")
}

// run owns screen until it returns. Terminal events are polled on one
// goroutine and applied to s between ticks on another.
func run(ctx context.Context, screen tcell.Screen, s *session.Session, cfg config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t := newTUI(screen, s, cfg.Terminal.KeyHold.Duration, cancel)
	cmds := make(chan session.Command, 64)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			cmd := t.command(ev)
			if cmd == nil {
				continue
			}
			select {
			case cmds <- cmd:
			case <-gCtx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		// Fini unblocks PollEvent.
		defer screen.Fini()
		err := session.Run(gCtx, s, cmds, t.frame)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	return g.Wait()
}
