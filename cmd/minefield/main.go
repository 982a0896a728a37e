package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

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
	if err := logging.Setup(cfg, os.Stderr, log, session.Log, mines.Log); err != nil {
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

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Minefield")
	ebiten.SetWindowResizable(true)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(int(time.Second / s.Params().Tick))

	if err := ebiten.RunGame(newGame(mainCtx, s)); err != nil {
		log.Fatal("exit reason: ", err)
	}
	log.WithField("stats", s.Stats()).Info("bye")
}
