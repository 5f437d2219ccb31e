// dictator is a small card game: play development cards to build a rocket
// before public unrest boils over. It exercises the whole vroom engine:
// layered entities, sprites, text, click handling and the post-update hook.
package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/phanxgames/vroom"
	"github.com/pkg/profile"
)

func main() {
	var (
		assetsDir  = flag.String("assets", "", "directory holding sprites/ and sounds/ (placeholder art when empty)")
		configPath = flag.String("config", "", "JSON engine config")
		scriptPath = flag.String("script", "", "JSON input script for automated runs")
		debug      = flag.Bool("debug", false, "print per-frame engine stats")
		fps        = flag.Bool("fps", false, "show the FPS counter")
		prof       = flag.String("profile", "", "write a cpu or mem profile to the working directory")
	)
	flag.Parse()

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown -profile %q (want cpu or mem)", *prof)
	}

	cfg := vroom.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("read config: %v", err)
		}
		if cfg, err = vroom.LoadConfig(data); err != nil {
			log.Fatal(err)
		}
	}
	cfg.Title = "Dictator"
	cfg.ShowFPS = cfg.ShowFPS || *fps

	engine := vroom.New(cfg)
	engine.SetDebugMode(*debug)

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		runner, err := vroom.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		engine.SetTestRunner(runner)
	}

	var assets fs.FS
	if *assetsDir != "" {
		assets = os.DirFS(*assetsDir)
	}
	newGame(engine, assets, uint64(time.Now().UnixNano()))

	if err := vroom.Run(engine); err != nil {
		log.Fatal(err)
	}
}
