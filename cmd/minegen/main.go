package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minerun/internal/config"
	"github.com/vancomm/minerun/internal/logging"
	"github.com/vancomm/minerun/internal/mines"
)

var (
	log = logrus.New()

	configPath string
	count      int
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.IntVar(&count, "n", 1, "number of boards to generate")
}

func main() {
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	if err := logging.Setup(cfg, os.Stderr, log, mines.Log); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	log.WithFields(cfg.Fields()).Debug("config")

	p := mines.DefaultParams()
	r := cfg.Rand()
	for i := range count {
		b, err := mines.Generate(p, r)
		if err != nil {
			log.Fatal("unable to generate board: ", err)
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s goal=%s\n", p, b.Goal())
		fmt.Print(b)
	}
}
