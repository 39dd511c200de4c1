// Command perft walks the legal move tree to a fixed depth and evaluates
// every node on the way. The checksum is the sum of all white-view scores,
// so any change to the evaluator or to move application shows up in it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"chess-eval/engine"
	"chess-eval/position"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type walkResult struct {
	nodes    uint64
	leaves   uint64
	checksum int64
}

func (r *walkResult) add(o walkResult) {
	r.nodes += o.nodes
	r.leaves += o.leaves
	r.checksum += o.checksum
}

// evalWalk evaluates every node under p down to depth plies.
func evalWalk(p *position.Position, depth int) walkResult {
	var r walkResult
	r.leaves = p.Walk(depth, func(n *position.Position) {
		r.nodes++
		r.checksum += int64(engine.Evaluate(n, engine.White))
	})
	return r
}

// rootMove is one root move's share of the walk.
type rootMove struct {
	move string
	walkResult
}

// splitWalk runs one walk per root move on up to threads goroutines. The
// root itself is evaluated once by the caller's goroutine.
func splitWalk(ctx context.Context, p *position.Position, depth, threads int) (walkResult, []rootMove, error) {
	total := evalWalk(p, 0)
	if depth == 0 {
		return total, nil, nil
	}
	total.leaves = 0
	moves := p.LegalMoves()
	roots := make([]rootMove, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i := range moves {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child := p.Clone()
			child.ApplyMove(moves[i])
			roots[i] = rootMove{move: moves[i].String(), walkResult: evalWalk(child, depth-1)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return total, nil, err
	}
	for _, r := range roots {
		total.add(r.walkResult)
	}
	return total, roots, nil
}

// verifyDivide compares per-root leaf counts with goosemg's PerftDivide.
func verifyDivide(fen string, depth int, roots []rootMove) error {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return fmt.Errorf("goosemg: %w", err)
	}
	want := make(map[string]uint64)
	for m, n := range goosemg.PerftDivide(board, depth) {
		want[strings.ToLower(m.String())] = n
	}
	if len(want) != len(roots) {
		return fmt.Errorf("%d root moves, goosemg has %d", len(roots), len(want))
	}
	for _, r := range roots {
		n, ok := want[r.move]
		if !ok {
			return fmt.Errorf("root move %s unknown to goosemg", r.move)
		}
		if n != r.leaves {
			return fmt.Errorf("%s: %d leaves, goosemg %d", r.move, r.leaves, n)
		}
	}
	return nil
}

func main() {
	fen := flag.String("fen", position.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "walk depth (required)")
	divide := flag.Bool("divide", false, "print per-move counts at root")
	repeat := flag.Int("repeat", 1, "repeat the walk N times and report aggregate (for steadier timings)")
	threads := flag.Int("threads", runtime.NumCPU(), "root moves walked in parallel")
	label := flag.String("label", "", "optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "write heap profile to file after run")
	verify := flag.Bool("verify", false, "cross-check root move counts against goosemg")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if *depth <= 0 {
		log.Error().Int("depth", *depth).Msg("-depth must be > 0")
		os.Exit(2)
	}
	if *threads < 1 {
		*threads = 1
	}

	p, err := position.FromFEN(*fen)
	if err != nil {
		log.Error().Err(err).Msg("bad -fen")
		os.Exit(2)
	}
	ctx := context.Background()

	if *divide {
		total, roots, err := splitWalk(ctx, p, *depth, *threads)
		if err != nil {
			log.Error().Err(err).Msg("walk failed")
			os.Exit(1)
		}
		if *verify {
			if err := verifyDivide(*fen, *depth, roots); err != nil {
				log.Error().Err(err).Msg("verify failed")
				os.Exit(1)
			}
		}
		sort.Slice(roots, func(i, j int) bool { return roots[i].move < roots[j].move })
		for _, r := range roots {
			fmt.Printf("%s: %d %d\n", r.move, r.leaves, r.checksum)
		}
		fmt.Printf("Total: %d nodes %d leaves checksum %d\n", total.nodes, total.leaves, total.checksum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Error().Err(err).Msg("creating cpuprofile")
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Error().Err(err).Msg("start cpu profile")
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var (
		total walkResult
		roots []rootMove
	)
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		r, rs, err := splitWalk(ctx, p, *depth, *threads)
		if err != nil {
			log.Error().Err(err).Msg("walk failed")
			os.Exit(1)
		}
		total.add(r)
		roots = rs
	}
	elapsed := time.Since(start)
	if *verify {
		if err := verifyDivide(*fen, *depth, roots); err != nil {
			log.Error().Err(err).Msg("verify failed")
			os.Exit(1)
		}
		log.Info().Int("roots", len(roots)).Msg("root counts match goosemg")
	}
	eps := float64(total.nodes) / elapsed.Seconds()

	// Single line: Label Depth Nodes Checksum Time Evals/s
	fmt.Printf("%s \t%d \t\t%d \t\t%d \t%s \t%.0f\n", *label, *depth, total.nodes, total.checksum, elapsed, eps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.Error().Err(err).Msg("creating memprofile")
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Error().Err(err).Msg("write heap profile")
			os.Exit(2)
		}
		_ = f.Close()
	}
}
