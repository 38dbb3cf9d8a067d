package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nova-strike/audio"
	"github.com/lixenwraith/nova-strike/config"
	"github.com/lixenwraith/nova-strike/engine"
	"github.com/lixenwraith/nova-strike/parameter"
	"github.com/lixenwraith/nova-strike/save"
	"github.com/lixenwraith/nova-strike/system"
)

var (
	seedFlag       = flag.Uint64("seed", 0, "RNG seed, 0 derives one from the clock")
	archetypesFlag = flag.String("archetypes", "", "Path to an archetype catalog YAML, empty uses the embedded set")
	upgradesFlag   = flag.String("upgrades", "", "Path to an upgrade catalog YAML, empty uses the embedded set")
	muteFlag       = flag.Bool("mute", false, "Disable audio cues")
)

func main() {
	flag.Parse()

	archetypes, err := loadArchetypes(*archetypesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load archetype catalog: %v\n", err)
		os.Exit(1)
	}
	upgrades, err := loadUpgrades(*upgradesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load upgrade catalog: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace prints
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nNOVA-STRIKE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	cues := audio.NewPlayer(*muteFlag)
	defer cues.Close()

	manager, err := save.Open()
	if err != nil {
		// Degraded mode: records live in memory for this run only
		log.Printf("save: %v, high scores will not persist", err)
		manager = nil
	}
	store, err := save.NewStore(manager)
	if err != nil {
		log.Printf("save: %v, starting from an empty record", err)
	}

	res := engine.NewResources(seed)
	res.Cues = cues

	game := newGame(screen, res, store)
	res.Score = game

	game.world.AddSystem(system.NewWaveScheduler(game.world, archetypes))
	game.world.AddSystem(system.NewBehaviorSystem(game.world, archetypes))
	game.upgrades = system.NewUpgradeEngine(game.world, upgrades)
	game.world.AddSystem(game.upgrades)
	game.world.SetEventSink(game.handleEvent)

	game.run()
}

func loadArchetypes(path string) (*config.ArchetypeCatalog, error) {
	if path == "" {
		return config.DefaultArchetypes()
	}
	return config.LoadArchetypes(path)
}

func loadUpgrades(path string) (*config.UpgradeCatalog, error) {
	if path == "" {
		return config.DefaultUpgrades()
	}
	return config.LoadUpgrades(path)
}

// tickInterval is the fixed simulation step
const tickInterval = time.Second / parameter.TickRate
