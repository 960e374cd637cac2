package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pylon-delta/internal/config"
	"pylon-delta/internal/game"
)

func main() {
	configFile := flag.String("config", "pylon.yaml", "Path to the dungeon parameters file")
	seed := flag.Int64("seed", 0, "Level generation seed (0 picks one from the clock)")
	flag.Parse()

	dir, name := filepath.Split(*configFile)
	if dir == "" {
		dir = "."
	}
	params, err := config.Load(os.DirFS(dir), name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g, err := game.New(params, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}
