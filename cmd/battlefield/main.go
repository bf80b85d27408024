package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"golang.org/x/term"

	"github.com/lixenwraith/battlefield/audio"
	"github.com/lixenwraith/battlefield/battlefield"
	"github.com/lixenwraith/battlefield/config"
	"github.com/lixenwraith/battlefield/core"
	"github.com/lixenwraith/battlefield/generator"
	"github.com/lixenwraith/battlefield/simulation"
	"github.com/lixenwraith/battlefield/watch"
)

var (
	configFlag   = flag.String("config", "", "YAML run configuration file")
	mapFlag      = flag.String("map", "", "Battlefield map: Tiled JSON or YAML layout")
	sourceFlag   = flag.String("source", "", "Battlefield source: file, random, maze, prompt")
	widthFlag    = flag.Int("width", 0, "Generated battlefield width")
	heightFlag   = flag.Int("height", 0, "Generated battlefield height")
	unitsFlag    = flag.Int("units", 0, "Generated unit count")
	terrainsFlag = flag.Int("terrains", 0, "Generated elevated terrain count")
	seedFlag     = flag.Int64("seed", 0, "Generator seed, 0 for time-based")
	displayFlag  = flag.String("display", "", "Display mode: terminal, text, none")
	soundFlag    = flag.Bool("sound", false, "Play audio cues")
	watchFlag    = flag.Bool("watch", false, "Re-run when the map file changes")
	delayFlag    = flag.Duration("delay", 0, "Pause between ticks")
	maxTicksFlag = flag.Int("max-ticks", 0, "Stop after this many ticks, 0 for no limit")
	logFlag      = flag.String("log", "", "Log file, stderr when empty and no terminal display")
)

func main() {
	// Panic Recovery: restore the terminal even if the simulation crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(cfg))
}

// loadConfig reads the optional file and overlays explicitly set flags
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	applyFlags(&cfg, set)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, set map[string]bool) {
	if set["map"] {
		cfg.Map = *mapFlag
		if !set["source"] {
			cfg.Source = config.SourceFile
		}
	}
	if set["source"] {
		cfg.Source = *sourceFlag
	}
	if set["width"] {
		cfg.Random.Width = *widthFlag
		cfg.Maze.Width = *widthFlag
	}
	if set["height"] {
		cfg.Random.Height = *heightFlag
		cfg.Maze.Height = *heightFlag
	}
	if set["units"] {
		cfg.Random.Units = *unitsFlag
		cfg.Maze.Units = *unitsFlag
	}
	if set["terrains"] {
		cfg.Random.Terrains = *terrainsFlag
	}
	if set["seed"] {
		cfg.Random.Seed = *seedFlag
		cfg.Maze.Seed = *seedFlag
	}
	if set["display"] {
		cfg.Display.Mode = *displayFlag
	}
	if set["sound"] {
		cfg.Audio.Enabled = *soundFlag
	}
	if set["delay"] {
		cfg.Simulation.TickDelay = *delayFlag
	}
	if set["max-ticks"] {
		cfg.Simulation.MaxTicks = *maxTicksFlag
	}
	if set["log"] {
		cfg.Log.File = *logFlag
	}
}

// run executes the configured session and returns the process exit code
func run(cfg config.Config) int {
	terminalMode := cfg.Display.Mode == config.DisplayTerminal

	logFile, err := setupLogging(cfg.Log.File, terminalMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// Creator prompts need the plain terminal, build before any screen takes over
	field, err := buildField(cfg, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create battlefield: %v\n", err)
		return 1
	}
	log.Printf("[Main] battlefield %dx%d, %d starts, %d targets",
		field.Width(), field.Height(), len(field.StartPositions()), len(field.TargetPositions()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var disp display
	switch cfg.Display.Mode {
	case config.DisplayTerminal:
		td, err := newTerminalDisplay()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
			return 1
		}
		core.SetCrashCleanup(td.close)
		core.Go(func() { td.pollQuit(cancel) })
		disp = td
	case config.DisplayText:
		disp = &textDisplay{w: os.Stdout}
	default:
		disp = &quietDisplay{w: os.Stdout}
	}
	defer disp.close()

	sm := audio.NewSoundManager()
	if cfg.Audio.Enabled {
		if err := sm.Initialize(); err != nil {
			// Non-fatal, simulation runs without sound
			log.Printf("[Audio] initialization failed: %v", err)
		}
	}
	defer sm.Cleanup()

	s := &session{cfg: cfg, disp: disp, sound: sm}

	if *watchFlag {
		err = s.watch(ctx, field)
	} else {
		err = s.runOnce(ctx, field)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		disp.close()
		fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
		return 1
	}

	// Keep the final frame on screen until the user quits
	if terminalMode && ctx.Err() == nil {
		<-ctx.Done()
	}
	return 0
}

// buildField resolves the configured source into a battlefield
func buildField(cfg config.Config, in io.Reader, out io.Writer) (*battlefield.Field, error) {
	switch cfg.Source {
	case config.SourcePrompt:
		return newCreator(in, out, cfg.Map, cfg.Random.Seed).create()
	case config.SourceRandom:
		return generator.Random(generator.RandomConfig{
			Width:    cfg.Random.Width,
			Height:   cfg.Random.Height,
			Units:    cfg.Random.Units,
			Terrains: cfg.Random.Terrains,
			Seed:     cfg.Random.Seed,
		})
	case config.SourceMaze:
		return generator.Maze(generator.MazeConfig{
			Width:    cfg.Maze.Width,
			Height:   cfg.Maze.Height,
			Units:    cfg.Maze.Units,
			Braiding: cfg.Maze.Braiding,
			Seed:     cfg.Maze.Seed,
		})
	default:
		// Missing map on an interactive terminal falls back to the creator
		if _, err := os.Stat(cfg.Map); err != nil && isTerminal(in) {
			return newCreator(in, out, cfg.Map, cfg.Random.Seed).create()
		}
		return battlefield.LoadFile(cfg.Map)
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// session runs simulations over one display and sound manager
type session struct {
	cfg   config.Config
	disp  display
	sound *audio.SoundManager
}

func (s *session) options() []simulation.Option {
	policy, _ := simulation.ParseTargetPolicy(s.cfg.Simulation.Target)
	return []simulation.Option{
		simulation.WithTargetPolicy(policy),
		simulation.WithTickDelay(s.cfg.Simulation.TickDelay),
		simulation.WithMaxTicks(s.cfg.Simulation.MaxTicks),
		simulation.WithParallelPlanning(s.cfg.Simulation.ParallelPlanning),
		simulation.WithLogger(log.Default()),
		simulation.WithObserver(s.disp.observe),
		simulation.WithObserver(audio.CueObserver(s.sound)),
	}
}

// runOnce simulates field to completion and reports the outcome
func (s *session) runOnce(ctx context.Context, field *battlefield.Field) error {
	sim, err := simulation.New(field, s.options()...)
	if err != nil {
		return err
	}

	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	s.sound.PlayFinished()
	s.disp.finish(outcome(stats))
	return nil
}

// watch re-runs the simulation whenever the map file changes, until ctx ends
func (s *session) watch(ctx context.Context, field *battlefield.Field) error {
	if s.cfg.Source != config.SourceFile {
		log.Printf("[Watch] source %q has no map file, running once", s.cfg.Source)
		return s.runOnce(ctx, field)
	}

	w, err := watch.ForFile(s.cfg.Map)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.cfg.Map, err)
	}
	defer w.Close()

	for {
		runCtx, cancel := context.WithCancel(ctx)
		finished := make(chan struct{})
		core.Go(func() {
			defer close(finished)
			if err := s.runOnce(runCtx, field); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("[Watch] run failed: %v", err)
				s.disp.finish(fmt.Sprintf("Run failed: %v", err))
			}
		})

		// Wait for a change that loads cleanly
		var next *battlefield.Field
		for next == nil {
			if !waitForChange(ctx, w, s.cfg.Map) {
				cancel()
				<-finished
				return ctx.Err()
			}
			loaded, err := battlefield.LoadFile(s.cfg.Map)
			if err != nil {
				log.Printf("[Watch] reload failed: %v", err)
				continue
			}
			next = loaded
		}

		cancel()
		<-finished
		log.Printf("[Watch] %s changed, restarting", s.cfg.Map)
		field = next
	}
}

// waitForChange blocks until mapFile changes (true) or ctx ends (false)
func waitForChange(ctx context.Context, w *watch.Watcher, mapFile string) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case path, ok := <-w.Events:
			if !ok {
				return false
			}
			if watch.SameFile(path, mapFile) {
				// Editors write in bursts, let the file settle
				time.Sleep(50 * time.Millisecond)
				return true
			}
		case err, ok := <-w.Errors:
			if !ok {
				return false
			}
			log.Printf("[Watch] %v", err)
		}
	}
}

// outcome summarizes a finished run in one line
func outcome(stats simulation.Stats) string {
	if stats.Arrived == stats.Units {
		return "All units reached their targets!"
	}
	return fmt.Sprintf("Finished after %d ticks: %d/%d units on target, %d stranded, %d blocked events",
		stats.Ticks, stats.Arrived, stats.Units, stats.Stranded, stats.Blocked)
}
