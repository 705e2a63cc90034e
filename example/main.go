// Example opens a window and draws a triangle whose colors cycle with time.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Settings come from the YAML file named by COLORS_CONFIG, if set.
// Press Escape or close the window to exit.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/colors"
	"github.com/go-theft-auto/colors/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := colors.ConfigFromEnv()
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	colors.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, err := opengl.NewContext(cfg)
	if err != nil {
		return fmt.Errorf("opengl context: %w", err)
	}
	defer ctx.Close()

	scene, err := colors.NewScene(ctx.Device())
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if err := ctx.Err(); err != nil {
		scene.Close()
		return fmt.Errorf("scene setup: %w", err)
	}

	loop := colors.NewLoop(ctx.Window(), ctx.Device(), scene,
		colors.WithClearColor(cfg.ClearColor))
	loop.Run()

	return nil
}
