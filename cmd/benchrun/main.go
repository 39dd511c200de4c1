package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

var walks = []struct {
	label string
	fen   string
	depth string
}{
	{"Initial", "", "3"},
	{"Initial", "", "4"},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", "3"},
	{"Endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", "5"},
}

func main() {
	// Run all benchmarks in bench/ with benchmem.
	// Usage: go run ./cmd/benchrun
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	// Evaluation walks (macro throughput) with one-line outputs
	fmt.Println("\nEvaluation walks:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tChecksum \tTime \tEvals/s")
	for _, w := range walks {
		args := []string{"run", "./cmd/perft", "-depth", w.depth, "-label", w.label}
		if w.fen != "" {
			args = append(args, "-fen", w.fen)
		}
		if code := run("go", args...); code != 0 {
			os.Exit(code)
		}
	}
}
