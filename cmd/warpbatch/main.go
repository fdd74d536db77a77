package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"cylinderize/internal/batch"
	"cylinderize/internal/config"
)

func main() {
	configFile := flag.String("config", "", "Path to batch JSON file")
	outputDir := flag.String("output", "", "Output directory (default: warped)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Process only first N jobs for testing")

	flag.Parse()

	if *configFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -config is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{OutputDir: *outputDir, Workers: *workers})

	if *testN > 0 && *testN < len(cfg.Jobs) {
		cfg.Jobs = cfg.Jobs[:*testN]
	}

	if len(cfg.Jobs) == 0 {
		fmt.Println("No jobs to process.")
		os.Exit(0)
	}

	fmt.Printf("Cylinder warp batch\n")
	fmt.Printf("Jobs: %d, Workers: %d\n", len(cfg.Jobs), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(cfg)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Warped: %d/%d\n", success, len(cfg.Jobs))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
