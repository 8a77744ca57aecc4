package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
)

const version = "0.1.0"

func main() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	// If no arguments or "demo", launch interactive stopwatch TUI
	if len(os.Args) < 2 || os.Args[1] == "demo" {
		if err := startTUI(); err != nil {
			log.Fatalf("TUI error: %v", err)
		}
		return
	}

	cmd := os.Args[1]

	switch cmd {
	case "bench":
		runBench(os.Args[2:])
		return
	case "version":
		fmt.Printf("boottime v%s\n", version)
		fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		return
	case "help", "-h", "--help":
		usage()
		return
	default:
		log.Fatalf("ERROR: unknown command %q (try 'boottime help')", cmd)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Boottime - Suspend-Aware Timing Library Demo

Usage:
  boottime [demo]
      Launch interactive stopwatch demo

  boottime bench [-n count]
      Measure clock read latency

  boottime version
      Show version and platform information

  boottime help
      Show this help message

Examples:
  # Launch interactive stopwatch
  boottime

  # Sample one million clock reads
  boottime bench -n 1000000

  # Show version
  boottime version

About:
  Boottime provides monotonically nondecreasing timestamps that keep
  advancing while the host is suspended or asleep, unlike the plain
  monotonic clock. This demo showcases the clock through an interactive
  stopwatch and a read-latency benchmark.

  Put the machine to sleep while the stopwatch runs: the elapsed time
  shown after resume includes the time spent suspended.
`)
}
