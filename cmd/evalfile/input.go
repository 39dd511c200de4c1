package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/notnil/chess"
)

type job struct {
	index int
	fen   string
}

// inputFormat picks a reader from the flag value, falling back to the file
// extension.
func inputFormat(format, path string) (string, error) {
	switch format {
	case "epd", "pgn":
		return format, nil
	case "", "auto":
		if strings.EqualFold(filepath.Ext(path), ".pgn") {
			return "pgn", nil
		}
		return "epd", nil
	}
	return "", fmt.Errorf("unknown input format %q", format)
}

// readEPD sends one job per non-empty, non-comment line. Only the first four
// fields are kept, so EPD opcodes and FEN move counters are both accepted.
func readEPD(ctx context.Context, r io.Reader, jobs chan<- job) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 4 {
			fields = fields[:4]
		}
		if err := send(ctx, jobs, job{n, strings.Join(fields, " ")}); err != nil {
			return n, err
		}
		n++
	}
	return n, scanner.Err()
}

// readPGN sends every position of every game, the start position included.
func readPGN(ctx context.Context, r io.Reader, jobs chan<- job) (int, error) {
	scanner := chess.NewScanner(r)
	n := 0
	for scanner.Scan() {
		game := scanner.Next()
		for _, pos := range game.Positions() {
			if err := send(ctx, jobs, job{n, pos.String()}); err != nil {
				return n, err
			}
			n++
		}
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return n, fmt.Errorf("reading PGN: %w", err)
	}
	return n, nil
}

func send(ctx context.Context, jobs chan<- job, j job) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case jobs <- j:
		return nil
	}
}
