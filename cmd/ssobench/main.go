package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/xgzlucario/sso"
	"github.com/xgzlucario/sso/internal/corpus"
	"github.com/xgzlucario/sso/internal/pkg"
	"github.com/xgzlucario/sso/internal/workload"
)

var logger = zerolog.
	New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}).
	Level(zerolog.InfoLevel).
	With().
	Timestamp().
	Logger()

var previousPause time.Duration

func gcPause() time.Duration {
	runtime.GC()
	var stats debug.GCStats
	debug.ReadGCStats(&stats)
	pause := stats.PauseTotal - previousPause
	previousPause = stats.PauseTotal
	return pause
}

type result struct {
	keys    int
	cost    time.Duration
	mallocs uint64
	bytes   uint64
	pause   time.Duration
}

func loadWords() ([]string, error) {
	if path := configGetCorpusPath(); path != "" {
		logger.Debug().Msgf("loading corpus %s", path)
		return corpus.Load(path)
	}
	logger.Debug().Msgf("generating %d words", configGetCorpusWords())
	return corpus.Generate(configGetCorpusWords(), configGetCorpusSeed()), nil
}

func bench(kind string, w workload.Workload, idx workload.IndexKind, words []string, rounds int) (res result, err error) {
	var before, after runtime.MemStats
	gcPause()
	runtime.ReadMemStats(&before)
	start := time.Now()

	for range rounds {
		res.keys, err = workload.RunKind(kind, w, idx, words)
		if err != nil {
			return res, err
		}
	}

	res.cost = time.Since(start) / time.Duration(rounds)
	runtime.ReadMemStats(&after)
	res.mallocs = (after.Mallocs - before.Mallocs) / uint64(rounds)
	res.bytes = (after.TotalAlloc - before.TotalAlloc) / uint64(rounds)
	res.pause = gcPause()
	return res, nil
}

func main() {
	var path string
	flag.StringVar(&path, "config", defaultConfigFileName, "config file path.")
	flag.Parse()

	if err := initConfig(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Fatal().Msgf("read config %s error: %v", path, err)
		}
		logger.Warn().Msgf("config %s not found, using defaults", path)
	}

	level, err := zerolog.ParseLevel(configGetLogLevel())
	if err != nil {
		logger.Fatal().Msgf("invalid log level: %v", err)
	}
	logger = logger.Level(level)

	words, err := loadWords()
	if err != nil {
		logger.Fatal().Msgf("load words error: %v", err)
	}
	logger.Info().Msgf("corpus: %s words", humanize.Comma(int64(len(words))))

	alloc := pkg.NewAllocator(configGetAllocLimit())
	sso.SetAllocator(alloc)
	logger.Debug().Msgf("heap buffer limit: %s", humanize.IBytes(uint64(alloc.Limit())))

	idx, rounds := configGetIndex(), configGetRounds()
	failed := false

	for _, w := range configGetWorkloads() {
		want, err := workload.Expect(w, words)
		if err != nil {
			logger.Fatal().Msgf("%v", err)
		}

		for _, kind := range configGetKinds() {
			res, err := bench(kind, w, idx, words, rounds)
			if err != nil {
				logger.Error().Msgf("%s/%s error: %v", w, kind, err)
				failed = true
				continue
			}
			if res.keys != want {
				logger.Error().Msgf("%s/%s: got %d keys, want %d", w, kind, res.keys, want)
				failed = true
			}
			logger.Info().Msgf("%-9s %-6s keys=%s cost=%v allocs=%s bytes=%s pause=%v",
				w, kind,
				humanize.Comma(int64(res.keys)),
				res.cost,
				humanize.Comma(int64(res.mallocs)),
				humanize.Bytes(res.bytes),
				res.pause)
		}
	}

	logger.Info().Msgf("heap buffers: hit=%s miss=%s",
		humanize.Comma(int64(alloc.Hit())), humanize.Comma(int64(alloc.Miss())))

	if failed {
		os.Exit(1)
	}
}
