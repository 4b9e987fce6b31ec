package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snaking/audio"
	"github.com/lixenwraith/snaking/config"
	"github.com/lixenwraith/snaking/constant"
	"github.com/lixenwraith/snaking/game"
	"github.com/lixenwraith/snaking/input"
	"github.com/lixenwraith/snaking/render"
	"github.com/lixenwraith/snaking/terminal"
)

var (
	configFlag  = flag.String("config", "", "YAML config file")
	backendFlag = flag.String("backend", "", "Display backend: ansi, tcell")
	tickFlag    = flag.Duration("tick", 0, "Tick interval (default 250ms)")
	lengthFlag  = flag.Int("length", 0, "Initial snake length (default 10)")
	muteFlag    = flag.Bool("mute", false, "Disable sound")
	debugFlag   = flag.Bool("debug", false, "Write a debug log under logs/")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Use \r\n in case raw mode survived the reset
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSNAKING CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)

	cfg, err := loadConfig(*configFlag, overrides{
		backend: *backendFlag,
		tick:    *tickFlag,
		length:  *lengthFlag,
		mute:    *muteFlag,
	})
	if err == nil {
		err = run(cfg)
	}

	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snaking: %v\n", err)
		os.Exit(1)
	}
}

// overrides are command-line values; zero values leave the config alone
type overrides struct {
	backend string
	tick    time.Duration
	length  int
	mute    bool
}

// loadConfig reads path (or the defaults when empty) and applies flag overrides
func loadConfig(path string, o overrides) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if o.backend != "" {
		cfg.Backend = o.backend
	}
	if o.tick != 0 {
		cfg.Tick = o.tick
	}
	if o.length != 0 {
		cfg.Length = o.length
	}
	if o.mute {
		cfg.Sound = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run opens the configured backend and plays until the player exits
func run(cfg *config.Config) error {
	sound, cleanup := newSound(cfg.Sound)
	defer cleanup()

	opts := []game.Option{game.WithSound(sound)}
	keys := input.DefaultKeyTable()

	if cfg.Backend == constant.BackendTcell {
		return runTcell(cfg, keys, opts)
	}

	term := terminal.New()
	if err := term.Init(); err != nil {
		log.Printf("ANSI backend unavailable: %v (falling back to tcell)", err)
		return runTcell(cfg, keys, opts)
	}
	defer term.Fini()
	term.SetTitle(constant.WindowTitle)

	log.Printf("Backend: %s", constant.BackendANSI)
	g := game.New(render.NewANSISurface(term), input.NewTerminalSource(term, keys), cfg, opts...)
	return g.Run()
}

func runTcell(cfg *config.Config, keys *input.KeyTable, opts []game.Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.SetTitle(constant.WindowTitle)
	screen.HideCursor()

	log.Printf("Backend: %s", constant.BackendTcell)
	g := game.New(render.NewTcellSurface(screen), input.NewTcellSource(screen, keys), cfg, opts...)
	return g.Run()
}

// newSound starts the speaker, or returns a silent sink when muted or when no
// audio device is available
func newSound(enabled bool) (game.Sound, func()) {
	if !enabled {
		return audio.Silent{}, func() {}
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		return audio.Silent{}, func() {}
	}
	return sm, sm.Cleanup
}
