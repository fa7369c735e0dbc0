package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/fracray/internal/fracray"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	fracray.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	fracray.RAW = os.Getenv("RAW") != ""
	fracray.StrategyOverride = os.Getenv("STRATEGY")
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "scenes/newton.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := fracray.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		if profile {
			pprof.StopCPUProfile()
		}
		os.Exit(1)
	}
}
