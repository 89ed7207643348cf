package main

import (
	"fmt"
	"github.com/ignite-laboratories/core"
	"github.com/pkg/errors"
	"github.com/spajus/gosu"
	"github.com/spajus/gosu/glfw"
	"github.com/spajus/gosu/input"
	"github.com/spajus/gosu/sdl2"
	"github.com/spf13/cobra"
	"os"
	"runtime"
	"time"
)

var ModuleName = "gosu-demo"

var flags struct {
	config     string
	driver     string
	fullscreen bool
	width      int
	height     int
	interval   time.Duration
}

func init() {
	// the window and its GL context belong to the main thread
	runtime.LockOSThread()
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gosu-demo",
		Short: "Open a window and log the buttons pressed in it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "YAML window configuration")
	cmd.Flags().StringVar(&flags.driver, "driver", "sdl2", "native backend: sdl2 or glfw")
	cmd.Flags().BoolVarP(&flags.fullscreen, "fullscreen", "f", false, "cover the desktop")
	cmd.Flags().IntVar(&flags.width, "width", gosu.DefaultSize.X, "logical width in pixels")
	cmd.Flags().IntVar(&flags.height, "height", gosu.DefaultSize.Y, "logical height in pixels")
	cmd.Flags().DurationVar(&flags.interval, "interval", gosu.DefaultUpdateInterval, "update interval")
	return cmd
}

// config loads the configuration file, if any, and lets explicit flags win.
func config(cmd *cobra.Command) (gosu.Config, error) {
	cfg := gosu.Config{Driver: flags.driver}
	if flags.config != "" {
		loaded, err := gosu.LoadConfig(flags.config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	set := cmd.Flags().Changed
	if cfg.Driver == "" || set("driver") {
		cfg.Driver = flags.driver
	}
	if set("fullscreen") || flags.config == "" {
		cfg.Fullscreen = flags.fullscreen
	}
	if set("width") || cfg.Size.X == 0 {
		cfg.Size.X = flags.width
	}
	if set("height") || cfg.Size.Y == 0 {
		cfg.Size.Y = flags.height
	}
	if set("interval") || cfg.UpdateInterval == 0 {
		cfg.UpdateInterval = flags.interval
	}
	if cfg.Caption == "" {
		cfg.Caption = "gosu demo"
	}
	return cfg, nil
}

func driver(name string) (gosu.Driver, error) {
	switch name {
	case "sdl2":
		return sdl2.New(), nil
	case "glfw":
		return glfw.New(), nil
	}
	return nil, errors.Errorf("unknown driver %q", name)
}

func run(cfg gosu.Config) error {
	d, err := driver(cfg.Driver)
	if err != nil {
		return err
	}

	var window *gosu.Window
	frames := 0
	hooks := gosu.HookFuncs{
		OnUpdate: func() { frames++ },
		OnButtonDown: func(id input.Button) {
			core.Verbosef(ModuleName, "down %v at (%.0f, %.0f)\n", id, window.Input().MouseX(), window.Input().MouseY())
			if id == input.KbEscape {
				if err := window.Close(); err != nil {
					core.Verbosef(ModuleName, "%v\n", err)
				}
			}
		},
		OnButtonUp: func(id input.Button) {
			core.Verbosef(ModuleName, "up %v\n", id)
		},
	}

	window, err = gosu.New(d, hooks, cfg)
	if err != nil {
		core.Fatalf(ModuleName, "%v\n", err)
		return err
	}
	defer window.Destroy()

	size := window.Graphics().Size()
	resolution := window.Graphics().Resolution()
	core.Verbosef(ModuleName, "surface %dx%d, drawing at %dx%d, desktop %dx%d\n",
		size.X, size.Y, resolution.X, resolution.Y, gosu.ScreenWidth(d), gosu.ScreenHeight(d))

	start := time.Now()
	window.Show()
	fmt.Printf("%d frames in %v\n", frames, time.Since(start).Round(time.Millisecond))
	return nil
}
