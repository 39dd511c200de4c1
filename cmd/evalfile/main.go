// Command evalfile evaluates every position of a FEN/EPD list or a PGN file
// on a pool of workers and prints one score per position in input order.
//
//	go run ./cmd/evalfile -in positions.epd
//	go run ./cmd/evalfile -in games.pgn -check -workers 8
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"chess-eval/engine"
	"chess-eval/position"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type settings struct {
	in      string
	format  string
	workers int
	check   bool
}

type result struct {
	index int
	fen   string
	score int // side to move
	white int
	err   error
	// mirror check, filled in with -check
	mirrorDiff int
}

func main() {
	var s settings
	verbose := flag.Bool("v", false, "debug logging")
	flag.StringVar(&s.in, "in", "-", "input file, - for stdin")
	flag.StringVar(&s.format, "format", "auto", "input format: auto, epd or pgn")
	flag.IntVar(&s.workers, "workers", runtime.NumCPU(), "number of evaluation workers")
	flag.BoolVar(&s.check, "check", false, "also evaluate each mirrored position and report asymmetries")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	if err := run(context.Background(), s, os.Stdout, log); err != nil {
		log.Error().Err(err).Msg("evalfile failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, s settings, w io.Writer, log zerolog.Logger) error {
	format, err := inputFormat(s.format, s.in)
	if err != nil {
		return err
	}
	var r io.Reader = os.Stdin
	if s.in != "-" {
		f, err := os.Open(s.in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if s.workers < 1 {
		s.workers = 1
	}
	log.Info().Str("in", s.in).Str("format", format).Int("workers", s.workers).Msg("evaluation started")

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan job, 256)
	results := make(chan result, 256)

	g.Go(func() error {
		defer close(jobs)
		var n int
		var err error
		if format == "pgn" {
			n, err = readPGN(ctx, r, jobs)
		} else {
			n, err = readEPD(ctx, r, jobs)
		}
		log.Debug().Int("positions", n).Msg("input read")
		return err
	})

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		workerLog := log.With().Int("worker_id", i).Logger()
		g.Go(func() error {
			defer wg.Done()
			return evaluateJobs(ctx, jobs, results, s.check, workerLog)
		})
	}
	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	var sum summary
	g.Go(func() error {
		return writeResults(results, w, &sum, log)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)
	ev := log.Info().
		Int("evaluated", sum.evaluated).
		Int("skipped", sum.skipped).
		Dur("elapsed", elapsed).
		Float64("evals_per_sec", float64(sum.evaluated)/elapsed.Seconds())
	if s.check {
		ev = ev.Int("asymmetric", sum.asymmetric).Int("max_diff", sum.maxDiff)
	}
	ev.Msg("evaluation finished")
	if s.check && sum.asymmetric > 0 {
		return fmt.Errorf("%d positions evaluate differently when mirrored", sum.asymmetric)
	}
	return nil
}

func evaluateJobs(ctx context.Context, jobs <-chan job, results chan<- result, check bool, log zerolog.Logger) error {
	for j := range jobs {
		res := evaluate(j, check)
		if res.err != nil {
			log.Warn().Err(res.err).Int("index", j.index).Msg("position skipped")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case results <- res:
		}
	}
	return nil
}

func evaluate(j job, check bool) result {
	res := result{index: j.index, fen: j.fen}
	p, err := position.FromFEN(j.fen)
	if err != nil {
		res.err = err
		return res
	}
	res.score = engine.Evaluate(p, p.SideToMove())
	res.white = engine.Evaluate(p, engine.White)
	if check {
		m, err := p.Mirror()
		if err != nil {
			res.err = err
			return res
		}
		res.mirrorDiff = engine.Evaluate(m, engine.Black) - res.white
	}
	return res
}

type summary struct {
	evaluated  int
	skipped    int
	asymmetric int
	maxDiff    int
}

// writeResults restores input order and prints "fen<TAB>score<TAB>white".
func writeResults(results <-chan result, w io.Writer, sum *summary, log zerolog.Logger) error {
	out := bufio.NewWriter(w)
	pending := make(map[int]result)
	next := 0
	for res := range results {
		pending[res.index] = res
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if r.err != nil {
				sum.skipped++
				continue
			}
			sum.evaluated++
			if r.mirrorDiff != 0 {
				sum.asymmetric++
				sum.maxDiff = engine.Max(sum.maxDiff, abs(r.mirrorDiff))
				log.Warn().Str("fen", r.fen).Int("diff", r.mirrorDiff).Msg("mirror asymmetry")
			}
			if _, err := fmt.Fprintf(out, "%s\t%d\t%d\n", r.fen, r.score, r.white); err != nil {
				return err
			}
		}
	}
	return out.Flush()
}
