// Command raypick shows a grid of teapots that can be orbited with the mouse
// and picked with a click.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/raypick/internal/app"
	"github.com/Faultbox/raypick/internal/config"
	"github.com/Faultbox/raypick/internal/logger"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("raypick failed", zap.Error(err))
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}

func run(cfg *config.Config) (err error) {
	logger.Info("=== RayPick ===",
		zap.String("scene", cfg.Scene.File),
		zap.Int64("seed", cfg.Scene.Seed),
	)

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer func() {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("shutdown: %w", cerr)
		}
	}()

	return a.Run()
}
