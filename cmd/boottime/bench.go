package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/BYTE-6D65/boottime/pkg/boottime"
)

// runBench samples the interval between consecutive clock reads, which
// bounds the cost of a single read plus the clock's effective
// resolution.
func runBench(args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	count := fs.Int("n", 1_000_000, "number of clock reads to sample")
	fs.Parse(args)

	if *count < 2 {
		log.Fatalf("ERROR: need at least 2 samples, got %d", *count)
	}

	runID := uuid.New()
	fmt.Printf("run:      %s\n", runID)
	fmt.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("samples:  %d\n", *count)

	samples := make([]time.Duration, *count)
	start := boottime.Now()
	prev := start
	for i := range samples {
		cur := boottime.Now()
		samples[i] = cur.DurationSince(prev)
		prev = cur
	}
	total := prev.DurationSince(start)

	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })

	fmt.Printf("total:    %v (%.0f reads/sec)\n",
		total.Round(time.Microsecond), float64(*count)/total.Seconds())
	fmt.Printf("min:      %v\n", samples[0])
	fmt.Printf("p50:      %v\n", samples[len(samples)/2])
	fmt.Printf("p99:      %v\n", samples[len(samples)*99/100])
	fmt.Printf("max:      %v\n", samples[len(samples)-1])
}
