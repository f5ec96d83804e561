package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zeusync/wingworks/internal/core/collision"
	"github.com/zeusync/wingworks/internal/core/geometry"
	"github.com/zeusync/wingworks/internal/core/observability/log"
	"github.com/zeusync/wingworks/internal/core/scene"
	"github.com/zeusync/wingworks/internal/injector"
)

type output struct {
	Index int               `json:"index"`
	Hit   bool              `json:"hit"`
	MTV   *geometry.Vector2 `json:"mtv,omitempty"`
	Edge  *int              `json:"edge,omitempty"`
}

func main() {
	scenePath := flag.String("scene", "", "path to a .yaml or .json scene file")
	parallel := flag.Bool("parallel", false, "resolve circles concurrently")
	levelName := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "satresolve: -scene is required")
		flag.Usage()
		os.Exit(2)
	}

	level, err := log.ParseLevel(*levelName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "satresolve:", err)
		os.Exit(2)
	}

	logger := log.New(level)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, logger, *scenePath, *parallel, level); err != nil {
		logger.Error("Resolution failed", log.Error(err), log.String("scene", *scenePath))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, base log.Log, path string, parallel bool, level log.Level) error {
	sc, err := scene.LoadFile(path)
	if err != nil {
		return err
	}
	polygon, circles, err := sc.Build()
	if err != nil {
		return err
	}

	resolver, err := injector.InitializeResolver(injector.ResolverConfig{
		Polygon:  polygon,
		Circles:  circles,
		Workers:  sc.Workers,
		LogLevel: level,
	})
	if err != nil {
		return err
	}

	logger := base.With(
		log.String("scene_id", sc.ID.String()),
		log.String("scene", sc.Name))
	logger.Info("Scene loaded",
		log.Int("vertices", polygon.Len()),
		log.Int("axes", len(resolver.Axes())),
		log.Int("circles", len(circles)))

	start := time.Now()
	var results []collision.Resolution
	if parallel {
		results, err = resolver.ResolveAllParallel(ctx, circles)
		if err != nil {
			return err
		}
	} else {
		results = resolver.Resolutions()
	}
	elapsed := time.Since(start)

	enc := json.NewEncoder(os.Stdout)
	for i, res := range results {
		out := output{Index: i, Hit: res.Hit}
		if res.Hit {
			mtv, edge := res.MTV, res.EdgeIndex
			out.MTV, out.Edge = &mtv, &edge
		}
		if err = enc.Encode(out); err != nil {
			return err
		}
	}

	stats := resolver.Stats()
	logger.Info("Scene resolved",
		log.Uint64("queries", stats.Queries),
		log.Uint64("hits", stats.Hits),
		log.Duration("elapsed", elapsed))
	return nil
}
