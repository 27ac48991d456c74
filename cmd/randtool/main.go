// randtool is a command-line front end for the go-ash-rand generators:
// it streams raw draws at a bounded rate, rolls bounded integers,
// shuffles its arguments or replays them through a gap shuffle.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	ashrand "github.com/Borislavv/go-ash-rand"
	"github.com/Borislavv/go-ash-rand/config"
	"github.com/Borislavv/go-ash-rand/internal/shared/rate"
	"github.com/Borislavv/go-ash-rand/internal/telemetry"
)

func main() {
	var (
		cfgPath   = flag.String("config", "", "path to yaml config (optional)")
		mode      = flag.String("mode", "stream", "stream | roll | shuffle | gap")
		algorithm = flag.String("algorithm", "", "four-character algorithm tag")
		seed      = flag.String("seed", "", "numeric seed (decimal or 0x hex)")
		seedText  = flag.String("seed-text", "", "seed derived from a string")
		count     = flag.Int("n", 10, "values to emit (0 = unbounded for stream)")
		perSec    = flag.Int("rate", 0, "stream values per second (0 = config or default)")
		format    = flag.String("format", "", "stream format: u64 | float")
		innerFlag = flag.Int64("min", 1, "roll inclusive bound")
		outerFlag = flag.Int64("max", 7, "roll exclusive bound")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	lvl := slog.LevelInfo
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	cfg := &config.Rand{}
	if *cfgPath != "" {
		loaded, err := config.LoadConfig(*cfgPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *cfgPath).Msg("load config")
		}
		cfg = loaded
	}
	cfg.AdjustConfig()
	applyFlags(cfg, *algorithm, *seed, *seedText, *perSec, *format)

	g, err := ashrand.New(cfg.Generator, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("build generator")
	}
	log.Debug().Str("algorithm", g.Tag()).Msg("generator ready")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "stream":
		err = streamValues(ctx, g, logger, cfg.Stream, *count)
	case "roll":
		err = rollValues(g, *innerFlag, *outerFlag, *count)
	case "shuffle":
		err = shuffleArgs(g, flag.Args())
	case "gap":
		err = gapArgs(ctx, g, flag.Args(), *count)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Str("mode", *mode).Msg("randtool failed")
	}
}

func applyFlags(cfg *config.Rand, algorithm, seed, seedText string, perSec int, format string) {
	if algorithm != "" {
		cfg.Generator.Algorithm = algorithm
	}
	if seed != "" {
		v, err := strconv.ParseUint(seed, 0, 64)
		if err != nil {
			log.Fatal().Err(err).Str("seed", seed).Msg("parse seed")
		}
		cfg.Generator.Seed = &v
	}
	if seedText != "" {
		cfg.Generator.SeedText = seedText
	}
	if cfg.Stream == nil {
		cfg.Stream = &config.StreamCfg{}
	}
	if perSec > 0 {
		cfg.Stream.Rate = perSec
	}
	if format != "" {
		cfg.Stream.Format = format
	}
	cfg.AdjustConfig()
}

func streamValues(ctx context.Context, g ashrand.Generator, logger *slog.Logger, cfg *config.StreamCfg, count int) error {
	pacer := rate.NewPacer(ctx, cfg.Rate)
	log.Info().Int("rate", pacer.Rate()).Str("format", cfg.Format).Msg("streaming")

	progress := telemetry.New(ctx, logger, 5*time.Second)
	defer func() { _ = progress.Close() }()

	for emitted := 0; count == 0 || emitted < count; emitted++ {
		if !pacer.Take() {
			return nil // interrupted
		}
		switch cfg.Format {
		case "float":
			fmt.Println(ashrand.Float64(g))
		default:
			fmt.Println(g.NextU64())
		}
		progress.Emitted()
	}
	return nil
}

func rollValues(g ashrand.Generator, inner, outer int64, count int) error {
	for i := 0; i < count; i++ {
		fmt.Println(ashrand.Int64Range(g, inner, outer))
	}
	return nil
}

func shuffleArgs(g ashrand.Generator, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("shuffle needs at least one argument")
	}
	ashrand.Shuffle(g, args)
	for _, a := range args {
		fmt.Println(a)
	}
	return nil
}

func gapArgs(ctx context.Context, g ashrand.Generator, args []string, count int) error {
	s, err := ashrand.NewGapShuffler(g, args)
	if err != nil {
		return err
	}
	for i := 0; count == 0 || i < count; i++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		fmt.Println(s.Next())
	}
	return nil
}
