package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/frog/audio"
	"github.com/lixenwraith/frog/config"
	"github.com/lixenwraith/frog/game"
	"github.com/lixenwraith/frog/input"
	"github.com/lixenwraith/frog/parameter"
	"github.com/lixenwraith/frog/render"
	"github.com/lixenwraith/frog/terminal"
)

var (
	configFlag     = flag.String("config", config.DefaultPath, "Settings file (TOML)")
	envFlag        = flag.String("env", config.DefaultEnvFile, "Dotenv file with FROG_* overrides")
	debugFlag      = flag.Bool("debug", false, "Write debug log to logs/frog.log")
	muteFlag       = flag.Bool("mute", false, "Start with sound muted")
	colorModeFlag  = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	lengthFlag     = flag.Int("length", 0, "Override initial cycle length")
	tickFlag       = flag.Int("tick", 0, "Override tick interval in milliseconds")
	dumpConfigFlag = flag.Bool("dump-config", false, "Print the effective settings and exit")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "frog: %v\n", err)
		os.Exit(1)
	}

	if *dumpConfigFlag {
		data, err := cfg.Encode()
		if err != nil {
			fmt.Fprintf(os.Stderr, "frog: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	if !terminal.IsInteractive(os.Stdout) {
		fmt.Fprintln(os.Stderr, "frog: stdout is not a terminal")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "frog: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers flags over the settings file and environment
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		return config.Config{}, err
	}
	if *lengthFlag > 0 {
		cfg.Frog.CycleLength = *lengthFlag
	}
	if *tickFlag > 0 {
		cfg.Session.TickMS = *tickFlag
	}
	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFROG CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sound := audio.NewSoundManager()
	sound.SetMuted(*muteFlag)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	session, err := game.NewSession(cfg,
		game.WithLogger(log.Default()),
		game.WithObserver(sound.OnEvents),
	)
	if err != nil {
		return err
	}

	mode := terminal.ParseColorMode(*colorModeFlag)
	log.Printf("session %s: color mode %s, tick %v", session.ID(), mode, cfg.Session.TickInterval())
	renderer := render.NewRenderer(screen, mode)

	return loop(screen, session, renderer, sound, cfg.Session.TickInterval())
}

func loop(screen tcell.Screen, session *game.Session, renderer *render.Renderer, sound *audio.SoundManager, tick time.Duration) error {
	tickTicker := time.NewTicker(tick)
	defer tickTicker.Stop()
	frameTicker := time.NewTicker(parameter.FrameInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	renderer.Draw(session)
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd := input.Map(ev.Key(), ev.Rune())
				if cmd.Action == input.ActionMute {
					log.Printf("muted: %v", sound.ToggleMute())
					continue
				}
				running, err := input.Apply(session, cmd)
				if err != nil || !running {
					return err
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-tickTicker.C:
			session.Step()

		case <-frameTicker.C:
			renderer.Draw(session)
		}
	}
}
