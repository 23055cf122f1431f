package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/vi-recall/accessibility"
	"github.com/lixenwraith/vi-recall/audio"
	"github.com/lixenwraith/vi-recall/clock"
	"github.com/lixenwraith/vi-recall/constants"
	"github.com/lixenwraith/vi-recall/controller"
	"github.com/lixenwraith/vi-recall/event"
	"github.com/lixenwraith/vi-recall/gameplay"
	"github.com/lixenwraith/vi-recall/score"
	"github.com/lixenwraith/vi-recall/service"
	"github.com/lixenwraith/vi-recall/status"
	"github.com/lixenwraith/vi-recall/terminal"
)

var (
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/vi-recall.log and show metrics in the HUD")
	extremeFlag   = flag.Bool("extreme", false, "Start in extreme mode (fresh sequence every round)")
	seedFlag      = flag.Int64("seed", 0, "Sequence seed for reproducible play (0 = random)")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	muteFlag      = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	sessionID := uuid.NewString()
	setLogSession(sessionID)

	if err := run(sessionID); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "vi-recall: %v\n", err)
		os.Exit(1)
	}
}

func run(sessionID string) error {
	settings, err := accessibility.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("accessibility settings: %w", err)
	}
	audioConfig, err := audio.LoadConfig()
	if err != nil {
		return fmt.Errorf("audio config: %w", err)
	}

	store := accessibility.NewStore(settings)
	router := event.NewRouter()
	registry := status.NewRegistry()
	router.Register(status.NewCollector(registry))

	player := audio.NewPlayer(audioConfig)
	term := terminal.NewService()

	hub := service.NewHub()
	for _, svc := range []service.Service{term, player} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}

	colorMode := terminal.ParseColorMode(*colorModeFlag)
	if err := hub.InitAll(map[string][]any{
		term.Name():   {colorMode},
		player.Name(): {*muteFlag},
	}); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer hub.StopAll()

	board := terminal.NewBoard(term.Screen(), terminal.NewPalette(term.ColorMode()), terminal.WithTones(player))

	opts := []gameplay.Option{
		gameplay.WithID(sessionID),
		gameplay.WithRouter(router),
		gameplay.WithExtremeMode(*extremeFlag),
	}
	if *seedFlag != 0 {
		opts = append(opts, gameplay.WithGenerator(gameplay.NewGenerator(*seedFlag)))
	}

	session := gameplay.NewSession(gameplay.Collaborators{
		Presenter: board,
		Display:   board,
		Feedback:  board,
		Labels:    board,
		Audio:     player,
		Score:     score.NewManager(clock.NewSystem()),
		Settings:  store,
	}, opts...)
	session.WatchSettings(store)

	ctrlOpts := []controller.Option{controller.WithAudio(player)}
	if *debugFlag {
		ctrlOpts = append(ctrlOpts, controller.WithMetrics(registry))
	}
	ctrl := controller.New(session, store, board, ctrlOpts...)
	router.Register(ctrl)

	log.Printf("session started: color=%s audio=%v silent=%v settings=%+v",
		term.ColorMode(), player.IsEnabled(), player.IsSilent(), store.Settings())

	board.ShowSubtitle("press enter to start")
	ctrl.Refresh()
	board.Draw()

	frameTicker := time.NewTicker(constants.FrameInterval)
	defer frameTicker.Stop()

	var decoder terminal.InputDecoder
	for {
		select {
		case ev := <-term.Events():
			cmd, ok := decoder.Decode(ev, board.Layout())
			if !ok {
				continue
			}
			if !ctrl.Handle(cmd) {
				log.Printf("quit at level %d, total score %d", session.Level(), session.TotalScore())
				return nil
			}
			board.Draw()

		case <-frameTicker.C:
			board.Draw()
		}
	}
}
