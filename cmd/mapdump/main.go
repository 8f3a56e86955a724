// Command mapdump generates one level and prints it to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/dungeoncrawl/internal/dump"
	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func main() {
	_ = godotenv.Load()

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	levelName := flag.String("level", cfg.Level, "level preset name")
	seed := flag.Int64("seed", cfg.Seed, "random seed (0 picks one from the clock)")
	colorMode := flag.String("color", "auto", "colorize output: auto, always or never")
	list := flag.Bool("list", false, "list level presets and exit")
	flag.Parse()

	registry, err := gamedata.LoadLevelRegistry()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	if *list {
		for _, l := range registry.All() {
			fmt.Printf("%-10s %dx%d, %d rooms, %s corridors - %s\n",
				l.Name, l.Width, l.Height, l.NumRooms, l.Corridors, l.Description)
		}
		return
	}

	level, err := registry.Lookup(*levelName)
	if err != nil {
		log.Fatalf("%v (available: %v)", err, registry.Names())
	}
	params, err := level.Params()
	if err != nil {
		log.Fatalf("%v", err)
	}

	resolved := game.Config{Seed: *seed}.ResolveSeed()
	builder, err := world.NewMapBuilder(params, world.NewRand(resolved))
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := builder.Build(context.Background()); err != nil {
		log.Fatalf("Failed to build level %s with seed %d: %v", level.Name, resolved, err)
	}

	colorize, err := useColor(*colorMode)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("level: %s\nseed: %d\n", level.Name, resolved)
	opts := dump.Options{Color: colorize, WallHex: level.WallColor, FloorHex: level.FloorColor}
	if err := dump.Write(os.Stdout, builder, opts); err != nil {
		log.Fatalf("Failed to write level: %v", err)
	}
}

func useColor(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	default:
		return false, fmt.Errorf("invalid -color %q: want auto, always or never", mode)
	}
}
