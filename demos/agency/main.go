// agency runs the full agency page: the five scroll sections with their
// preset timelines, the physics playground over the trends section, and the
// partners JSON API on a local HTTP server. Settings come from the
// environment:
//
//	KINETIC_ADDR    listen address for the API (default 127.0.0.1:8080)
//	KINETIC_DB      SQLite database path (default kinetic.db)
//	KINETIC_CONFIG  optional YAML stage config
//	KINETIC_SCRIPT  optional YAML scenario script
//	KINETIC_DEBUG   log frame stats to stderr
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/hikestudio/kinetic"
	"github.com/hikestudio/kinetic/partners"
)

const (
	windowTitle     = "Kinetic — Agency"
	screenW         = 1280
	screenH         = 720
	shutdownTimeout = 5 * time.Second
)

type envConfig struct {
	Addr       string `env:"KINETIC_ADDR" envDefault:"127.0.0.1:8080"`
	DBPath     string `env:"KINETIC_DB" envDefault:"kinetic.db"`
	ConfigPath string `env:"KINETIC_CONFIG"`
	ScriptPath string `env:"KINETIC_SCRIPT"`
	Debug      bool   `env:"KINETIC_DEBUG"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := partners.Open(ctx, ec.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.ListPartners(ctx)
	if err != nil {
		return err
	}

	cfg := kinetic.DefaultConfig()
	if ec.ConfigPath != "" {
		if cfg, err = kinetic.LoadConfig(ec.ConfigPath); err != nil {
			return err
		}
	}
	cfg.Debug = cfg.Debug || ec.Debug
	cfg.Partners = len(list)

	frames := kinetic.NewFrameQueue()
	stage := kinetic.NewStage(kinetic.DefaultLayout(), frames, cfg.StageConfig())
	if err := cfg.Apply(stage); err != nil {
		return err
	}
	stage.OnAction(func(e kinetic.ActionEvent) {
		log.Printf("%s: %s -> %s", e.Label, e.Action.Name, e.Action.Target)
	})
	if ec.ScriptPath != "" {
		data, err := os.ReadFile(ec.ScriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		script, err := kinetic.LoadScript(data)
		if err != nil {
			return err
		}
		stage.SetScript(script)
	}

	srv := &http.Server{
		Addr:              ec.Addr,
		Handler:           partners.NewHandler(store),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("partners API on http://%s", ec.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server: %v", err)
		}
	}()
	// Teardown on the frame thread; Run exits once the stage is torn down.
	stage.Loop().OnTick(func(float64) {
		if ctx.Err() != nil {
			stage.Teardown()
		}
	})

	runErr := kinetic.Run(stage, frames, kinetic.RunConfig{
		Title:      windowTitle,
		Width:      screenW,
		Height:     screenH,
		ClearColor: kinetic.ColorWhite,
		ShowFPS:    true,
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	return runErr
}
