// Package main implements the gones NES emulator executable.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gones/internal/app"
	"gones/internal/console"
	"gones/internal/version"
)

func main() {
	var (
		romFile    = flag.String("rom", "", "Path to NES ROM file (optional for GUI mode)")
		configFile = flag.String("config", "", "Path to configuration file")
		debug      = flag.Bool("debug", false, "Enable debug mode")
		nogui      = flag.Bool("nogui", false, "Run without GUI (headless mode)")
		frames     = flag.Int("frames", 120, "Number of frames to run in headless mode")
		help       = flag.Bool("help", false, "Show help message")
		showVer    = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	if *showVer {
		version.PrintBuildInfo()
		os.Exit(0)
	}

	setupGracefulShutdown()

	cfg := app.NewConfig()
	configPath := *configFile
	if configPath == "" {
		configPath = app.GetDefaultConfigPath()
	}
	if err := cfg.LoadFromFile(configPath); err != nil {
		log.Printf("using default configuration: %v", err)
	}

	if *nogui {
		cfg.Video.Backend = "headless"
	}
	if *debug {
		cfg.UpdateDebug(true)
	}

	emu, err := console.New(cfg)
	if err != nil {
		log.Fatalf("failed to create console: %v", err)
	}
	defer func() {
		if err := emu.Cleanup(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	if *romFile != "" {
		if err := emu.LoadROM(*romFile); err != nil {
			log.Fatalf("failed to load ROM %s: %v", *romFile, err)
		}
	}

	if *nogui {
		if *romFile == "" {
			log.Fatal("a ROM file is required for headless mode")
		}
		if err := emu.RunFrames(*frames); err != nil {
			log.Fatalf("headless run failed: %v", err)
		}
		fmt.Printf("ran %d frames, %d completed by the PPU\n", *frames, emu.FrameCount())
		return
	}

	if err := emu.Run(); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}

func setupGracefulShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		os.Exit(0)
	}()
}

func printUsage() {
	fmt.Println("gones - Go NES Emulator")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  gones [options]                    # Start GUI mode without ROM")
	fmt.Println("  gones -rom <file> [options]        # Start with ROM loaded")
	fmt.Println("  gones -nogui -rom <file> [options] # Run headless mode")
	fmt.Println()
	fmt.Println("OPTIONS:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("CONTROLS:")
	fmt.Println("  Escape - Close the window")
	fmt.Println("  Controller input is not read; $4016/$4017 always return 0.")
	fmt.Println()
	fmt.Println("SUPPORTED FORMATS:")
	fmt.Println("  - iNES (.nes), Mapper 0 (NROM) only")
}
