package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gbcore/internal/cartridge"
	"gbcore/internal/display"
	"gbcore/internal/emulator"
	"gbcore/internal/input"
)

// Version is the CLI's own version, independent of the core's internals.
const Version = "0.1.0"

func main() {
	var (
		scale   int
		console bool
		vsync   bool
	)

	rootCmd := &cobra.Command{
		Use:   "gbcore [rom]",
		Short: "A Game Boy core: CPU, memory bus and background renderer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], scale, console, vsync)
		},
	}
	rootCmd.Flags().IntVar(&scale, "scale", 3, "integer window scale factor (1-8)")
	rootCmd.Flags().BoolVar(&console, "console", false, "render as ASCII art in the terminal instead of opening a window")
	rootCmd.Flags().BoolVar(&vsync, "vsync", true, "pace frames to the Game Boy's native refresh rate")

	runCmd := &cobra.Command{
		Use:   "run [rom]",
		Short: "Run a ROM (same as the default command)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], scale, console, vsync)
		},
	}
	runCmd.Flags().IntVar(&scale, "scale", 3, "integer window scale factor (1-8)")
	runCmd.Flags().BoolVar(&console, "console", false, "render as ASCII art in the terminal instead of opening a window")
	runCmd.Flags().BoolVar(&vsync, "vsync", true, "pace frames to the Game Boy's native refresh rate")

	infoCmd := &cobra.Command{
		Use:   "info [rom]",
		Short: "Print cartridge header information and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showInfo(args[0])
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate [rom]",
		Short: "Validate that a ROM fits the 64KB bus and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validate(args[0])
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("gbcore v%s\n", Version)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, infoCmd, validateCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(romPath string, scale int, console bool, vsync bool) error {
	cart, err := cartridge.Load(romPath)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	fmt.Printf("loaded %s\n", cart)

	emu := emulator.New(cart)

	// input.SDL2Source is the sole consumer of SDL2's event queue; the
	// console backend takes no input at all, so it runs until killed.
	var backend display.Backend
	var src input.Source
	if console {
		backend = display.NewConsoleDisplay()
	} else {
		backend = display.NewSDL2Display()
		src = input.NewSDL2Source()
	}

	d := display.New(backend)
	cfg := display.Config{ScaleFactor: scale, ScalingMode: display.ScaleNearest, VSync: vsync, Title: cart.Title}
	if err := d.Initialize(cfg); err != nil {
		return fmt.Errorf("initializing display: %w", err)
	}
	defer d.Cleanup()

	for !d.ShouldClose() {
		if err := emu.RunFrame(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		if err := d.Present(&emu.Frame); err != nil {
			return fmt.Errorf("presenting frame: %w", err)
		}
		d.PollEvents()
		if src != nil {
			switch src.Poll() {
			case input.SignalQuit, input.SignalEscape:
				return nil
			}
		}
	}
	return nil
}

func showInfo(romPath string) error {
	cart, err := cartridge.Load(romPath)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	fmt.Println(cart)
	return nil
}

func validate(romPath string) error {
	_, err := cartridge.Load(romPath)
	if err != nil {
		fmt.Printf("invalid: %v\n", err)
		return err
	}
	fmt.Println("valid")
	return nil
}
