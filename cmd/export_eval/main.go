// Command export_eval dumps the evaluator constants, either as JSON for
// calibration scripts or as a Go listing in the layout of engine/params.go.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"chess-eval/engine"

	"github.com/rs/zerolog"
)

var pieceOrder = []string{"Pawn", "Knight", "Bishop", "Rook", "Queen"}

// formatPSQT formats the flat tables of pawn..queen, 8 entries per row.
func formatPSQT(vals [7][64]int) string {
	var b strings.Builder
	for pi, name := range pieceOrder {
		b.WriteString("\t" + name + ": {\n")
		b.WriteString(indent(formatArray64(vals[pi+1]), "\t"))
		b.WriteString("\t},\n")
	}
	return b.String()
}

// formatArray64 formats a [64]int array, 8 per row.
func formatArray64(vals [64]int) string {
	var b strings.Builder
	for i := 0; i < 64; i++ {
		if i%8 == 0 {
			b.WriteString("\t")
		}
		b.WriteString(fmt.Sprintf("%d", vals[i]))
		if i%8 == 7 {
			b.WriteString(",\n")
		} else {
			b.WriteString(", ")
		}
	}
	return b.String()
}

// formatArrayInline formats a slice of ints on a single line.
func formatArrayInline(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}

// formatByPiece formats a [7]int indexed by piece type, skipping zero entries.
func formatByPiece(vals [7]int) string {
	var parts []string
	for pi, name := range pieceOrder {
		if v := vals[pi+1]; v != 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", name, v))
		}
	}
	return strings.Join(parts, ", ")
}

func indent(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "")
}

func writeGo(w io.Writer, p engine.Params) error {
	var out strings.Builder
	out.WriteString("package engine\n\n")

	out.WriteString(fmt.Sprintf("var PieceValueMG = [7]int{%s}\n", formatByPiece(p.PieceValueMG)))
	out.WriteString(fmt.Sprintf("var PieceValueEG = [7]int{%s}\n\n", formatByPiece(p.PieceValueEG)))

	out.WriteString("var PSQT = [7][64]int{\n")
	out.WriteString(formatPSQT(p.PSQT))
	out.WriteString("}\n\n")

	out.WriteString("var KingPSQT_MG = [64]int{\n")
	out.WriteString(formatArray64(p.KingPSQTMG))
	out.WriteString("}\n")
	out.WriteString("var KingPSQT_EG = [64]int{\n")
	out.WriteString(formatArray64(p.KingPSQTEG))
	out.WriteString("}\n\n")

	out.WriteString(fmt.Sprintf("var KnightMobility = [%d]int{%s}\n", len(p.KnightMobility), formatArrayInline(p.KnightMobility)))
	out.WriteString(fmt.Sprintf("var BishopMobility = [%d]int{%s}\n", len(p.BishopMobility), formatArrayInline(p.BishopMobility)))
	out.WriteString(fmt.Sprintf("var RookMobility = [%d]int{%s}\n", len(p.RookMobility), formatArrayInline(p.RookMobility)))
	out.WriteString(fmt.Sprintf("var QueenMobility = [%d]int{%s}\n\n", len(p.QueenMobility), formatArrayInline(p.QueenMobility)))

	out.WriteString("var (\n")
	out.WriteString(fmt.Sprintf("\tKingAttackBonus      = %d\n", p.KingAttackBonus))
	out.WriteString(fmt.Sprintf("\tKingAttackerBonus    = [7]int{%s}\n", formatByPiece(p.KingAttackerBonus)))
	out.WriteString(fmt.Sprintf("\tBishopPairBonus      = %d\n", p.BishopPairBonus))
	out.WriteString(fmt.Sprintf("\tRookFileBonus        = [3]int{%s}\n", formatArrayInline(p.RookFileBonus[:])))
	out.WriteString(fmt.Sprintf("\tSupportedPawnBonus   = %d\n", p.SupportedPawnBonus))
	out.WriteString(fmt.Sprintf("\tPhalanxPawnBonus     = %d\n", p.PhalanxPawnBonus))
	out.WriteString(fmt.Sprintf("\tPassedPawnBonusMG    = [7]int{%s}\n", formatArrayInline(p.PassedPawnBonusMG[:])))
	out.WriteString(fmt.Sprintf("\tPassedPawnBonusEG    = [7]int{%s}\n", formatArrayInline(p.PassedPawnBonusEG[:])))
	out.WriteString(fmt.Sprintf("\tPassedBlockReduction = %g\n", p.PassedBlockReduction))
	out.WriteString(")\n")

	_, err := io.WriteString(w, out.String())
	return err
}

func writeJSON(w io.Writer, p engine.Params) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func export(w io.Writer, format string) error {
	p := engine.Parameters()
	switch format {
	case "json":
		return writeJSON(w, p)
	case "go":
		return writeGo(w, p)
	}
	return fmt.Errorf("unknown format %q", format)
}

func main() {
	format := flag.String("format", "json", "output format: json or go")
	outPath := flag.String("out", "-", "output path, - for stdout")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var w io.Writer = os.Stdout
	if *outPath != "-" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			log.Fatal().Err(err).Msg("creating output directory")
		}
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatal().Err(err).Msg("creating output file")
		}
		defer f.Close()
		w = f
	}
	if err := export(w, *format); err != nil {
		log.Fatal().Err(err).Str("format", *format).Msg("export failed")
	}
	log.Info().Str("format", *format).Str("out", *outPath).Msg("parameters exported")
}
