package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"cylinderize/internal/codec"
	"cylinderize/internal/config"
	"cylinderize/internal/cylinder"
)

// Result holds the outcome of processing one job.
type Result struct {
	Name    string
	Output  string
	Success bool
	Error   string
}

// Run warps all jobs using a worker pool. Each invocation owns its own
// buffers, so jobs run fully independently.
func Run(cfg config.Config) []Result {
	total := len(cfg.Jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f jobs/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	jobChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, cfg.Jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range cfg.Jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg config.Config, job config.Job) Result {
	name := job.Name
	if name == "" {
		name = filepath.Base(job.Source)
	}

	p, err := job.Parameters()
	if err != nil {
		return Result{Name: name, Error: err.Error()}
	}

	src, err := codec.Load(job.Source)
	if err != nil {
		return Result{Name: name, Error: err.Error()}
	}

	var background image.Image
	if job.Background != "" {
		bg, err := codec.Load(job.Background)
		if err != nil {
			return Result{Name: name, Error: err.Error()}
		}
		background = bg
	}

	out, err := cylinder.Warp(src, p, background)
	if err != nil {
		return Result{Name: name, Error: err.Error()}
	}

	outPath := job.Output
	if outPath == "" {
		base := filepath.Base(job.Source)
		outPath = base[:len(base)-len(filepath.Ext(base))] + ".webp"
	}
	outPath = filepath.Join(cfg.OutputDir, outPath)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Name: name, Error: err.Error()}
	}
	if err := codec.Save(outPath, out); err != nil {
		return Result{Name: name, Error: err.Error()}
	}

	return Result{Name: name, Output: outPath, Success: true}
}
