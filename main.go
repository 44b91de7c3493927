package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gymroom/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "show the probe space, interaction radius and player state")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level file in prefabs/ (defaults to the one in game.yaml)")
	watch := flag.Bool("watch", false, "reload prefab tunables and condition scripts when they change on disk")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	if spec.TPS <= 0 {
		spec.TPS = ebiten.DefaultTPS
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		spec.Width, spec.Height = 1280, 720
	}

	level := *levelName
	if level == "" {
		level = spec.Level
	}
	if level == "" {
		level = prefabs.LevelFile
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(spec.Width, spec.Height)
	ebiten.SetWindowTitle(spec.Title)
	ebiten.SetTPS(spec.TPS)

	game, err := NewGame(spec, level, *debug, *watch || spec.Watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
