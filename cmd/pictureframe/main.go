package main

import (
	"flag"

	"github.com/dixieflatline76/PictureFrame/config"
	"github.com/dixieflatline76/PictureFrame/ui"
	"github.com/dixieflatline76/PictureFrame/util/log"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to the YAML start-up file")
	flag.Parse()

	acquired, err := acquireLock()
	if err != nil {
		log.Fatalf("Failed to acquire single instance lock: %v", err)
	}
	if !acquired {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}
	defer releaseLock()

	if err := run(*configPath); err != nil {
		releaseLock()
		log.Fatalf("%v", err)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log.Printf("Starting %s %s (photos %s, frames %s)", config.AppName, config.AppVersion, cfg.PhotoDir, cfg.FramesDir)

	fa, err := ui.GetInstance(cfg)
	if err != nil {
		return err
	}
	fa.Run()
	return nil
}
