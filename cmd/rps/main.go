package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"time"

	"github.com/outofforest/parallel"
	"go.uber.org/zap"
	"lukechampine.com/uint128"

	"github.com/cryptonstudio/crypton-forward-list/types/list"
)

func main() {
	var workersCount, opsCount, maxLen int
	var pooled, verbose bool
	flag.IntVar(&workersCount, "w", runtime.NumCPU(), "Workers count, each worker owns one list")
	flag.IntVar(&opsCount, "i", 5_000_000, "Operations count per worker")
	flag.IntVar(&maxLen, "l", 1024, "Max list length")
	flag.BoolVar(&pooled, "pool", false, "Reuse list nodes through sync.Pool")
	flag.BoolVar(&verbose, "v", false, "Enable debug logging")
	flag.Parse()

	logger, err := newLogger(verbose)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	// Shared between workers, sync.Pool is safe for concurrent use
	var pool *sync.Pool
	if pooled {
		pool = &sync.Pool{New: func() any {
			return new(list.Node[uint64])
		}}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	workers := make([]*Worker, workersCount)
	for i := range workers {
		workers[i] = NewWorker(uint64(i+1), pool, maxLen, logger)
	}

	logger.Info("Starting workload",
		zap.Int("workers", workersCount),
		zap.Int("opsPerWorker", opsCount),
		zap.Int("maxLen", maxLen),
		zap.Bool("pooled", pooled),
	)

	s := time.Now()
	err = parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for i, w := range workers {
			spawn(fmt.Sprintf("worker-%d", i), parallel.Continue, func(ctx context.Context) error {
				return w.Run(ctx, opsCount)
			})
		}
		return nil
	})
	e := time.Now()
	if err != nil {
		logger.Fatal("Workload failed", zap.Error(err))
	}

	var total uint64
	var perOp [opCount]uint64
	checksum := uint128.Zero
	for _, w := range workers {
		for op, n := range w.Operations() {
			perOp[op] += n
			total += n
		}
		checksum = checksum.Add(w.Checksum())
	}

	fields := make([]zap.Field, 0, opCount)
	for op, n := range perOp {
		fields = append(fields, zap.Uint64(operationNames[op], n))
	}
	logger.Info("Operations", fields...)

	rps := float64(total) * float64(time.Second) / float64(e.Sub(s))
	logger.Info("Workload finished",
		zap.Uint64("total", total),
		zap.Duration("elapsed", e.Sub(s)),
		zap.Float64("rps", rps),
		zap.Stringer("checksum", checksum),
	)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
