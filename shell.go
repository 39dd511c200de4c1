package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"chess-eval/engine"
	"chess-eval/position"
)

func main() {
	if err := evalLoop(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// shell holds the current position and the undo stack of the moves played
// into it since the last "position" command.
type shell struct {
	out   io.Writer
	pos   *position.Position
	undos []func()
}

// evalLoop reads commands line by line until "quit" or end of input.
func evalLoop(r io.Reader, w io.Writer) error {
	sh := &shell{out: w, pos: position.Start()}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "quit":
			return nil
		case "isready":
			fmt.Fprintln(w, "readyok")
		case "position":
			sh.position(tokens[1:])
		case "moves":
			sh.play(tokens[1:])
		case "undo":
			sh.undo()
		case "eval":
			sh.eval()
		case "mirror":
			sh.mirror()
		case "fen":
			fmt.Fprintln(w, sh.pos.FEN())
		default:
			sh.info("Unknown command: %s", scanner.Text())
		}
	}
	return scanner.Err()
}

func (sh *shell) info(format string, args ...any) {
	fmt.Fprintf(sh.out, "info string "+format+"\n", args...)
}

func (sh *shell) set(p *position.Position) {
	sh.pos = p
	sh.undos = sh.undos[:0]
}

// position handles "position startpos [moves ...]" and
// "position fen <fen> [moves ...]".
func (sh *shell) position(args []string) {
	if len(args) == 0 {
		sh.info("Malformed position command")
		return
	}
	var moves []string
	for i, tok := range args {
		if strings.ToLower(tok) == "moves" {
			args, moves = args[:i], args[i+1:]
			break
		}
	}
	switch strings.ToLower(args[0]) {
	case "startpos":
		sh.set(position.Start())
	case "fen":
		p, err := position.FromFEN(strings.Join(args[1:], " "))
		if err != nil {
			sh.info("%v", err)
			return
		}
		sh.set(p)
	default:
		sh.info("Invalid position subcommand")
		return
	}
	sh.play(moves)
}

// play applies moves in order and stops at the first illegal one.
func (sh *shell) play(moves []string) {
	for _, mv := range moves {
		undo, err := sh.pos.Apply(strings.ToLower(mv))
		if err != nil {
			sh.info("%v", err)
			return
		}
		sh.undos = append(sh.undos, undo)
	}
}

func (sh *shell) undo() {
	if len(sh.undos) == 0 {
		sh.info("Nothing to undo")
		return
	}
	last := len(sh.undos) - 1
	sh.undos[last]()
	sh.undos = sh.undos[:last]
}

func (sh *shell) eval() {
	stm := sh.pos.SideToMove()
	fmt.Fprintf(sh.out, "eval cp %d white %d phase %.3f side %v\n",
		engine.Evaluate(sh.pos, stm),
		engine.Evaluate(sh.pos, engine.White),
		engine.GamePhase(sh.pos),
		stm)
}

func (sh *shell) mirror() {
	m, err := sh.pos.Mirror()
	if err != nil {
		sh.info("%v", err)
		return
	}
	sh.set(m)
}
