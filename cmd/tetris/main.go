package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const windowTitle = "Blockfall"

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	debugUI := flag.Bool("debug-ui", false, "Show the Dear ImGui debug overlay.")
	seed := flag.Uint64("seed", 0, "Piece generator seed. 0 picks a random seed.")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatal().Err(err).Msg("failed to load .env")
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *debugUI {
		cfg.DebugUI = true
	}
	zerolog.SetGlobalLevel(cfg.Level())

	engine := tetris.NewEngine(append(cfg.EngineOptions(),
		tetris.WithListener(driver.EventLogger(log.Logger)),
	)...)
	d := driver.New(engine, cfg.TickCadence(), driver.WithLogger(log.Logger))

	layout := newLayout(engine.Width(), engine.Height())
	game := &Game{
		driver: d,
		layout: layout,
		keys:   newKeyboard(),
	}

	ebiten.SetTPS(cfg.FrameRate)
	if cfg.DebugUI {
		game.overlay = debugui_ebiten.NewImguiBackend(windowTitle, debugWindowWidth, debugWindowHeight)
	} else {
		ebiten.SetWindowSize(layout.screenWidth, layout.screenHeight)
		ebiten.SetWindowTitle(windowTitle)
	}

	log.Info().
		Int("width", engine.Width()).
		Int("height", engine.Height()).
		Str("randomizer", cfg.Randomizer).
		Int("frame_rate", cfg.FrameRate).
		Bool("debug_ui", cfg.DebugUI).
		Msg("starting blockfall")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
	log.Info().Int("score", engine.Score()).Int("lines", engine.Lines()).Msg("bye")
}
