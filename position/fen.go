package position

import (
	"fmt"
	"strings"
)

// normalizeFEN checks the parts of a FEN string the evaluator relies on
// and pads a four-field FEN with default move counters.
func normalizeFEN(fen string) (string, error) {
	fields := strings.Fields(fen)
	switch len(fields) {
	case 4:
		fields = append(fields, "0", "1")
	case 6:
	default:
		return "", fmt.Errorf("%w: want 4 or 6 fields, got %d", ErrInvalidFEN, len(fields))
	}
	if err := validatePlacement(fields[0]); err != nil {
		return "", err
	}
	if fields[1] != "w" && fields[1] != "b" {
		return "", fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}
	if ep := fields[3]; ep != "-" {
		if len(ep) != 2 || ep[0] < 'a' || ep[0] > 'h' || (ep[1] != '3' && ep[1] != '6') {
			return "", fmt.Errorf("%w: en passant square %q", ErrInvalidFEN, ep)
		}
	}
	return strings.Join(fields, " "), nil
}

func validatePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	kings := map[rune]int{}
	for i, rank := range ranks {
		width := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				width += int(ch - '0')
				continue
			case strings.ContainsRune("pnbrqkPNBRQK", ch):
				width++
			default:
				return fmt.Errorf("%w: bad piece %q", ErrInvalidFEN, ch)
			}
			if ch == 'k' || ch == 'K' {
				kings[ch]++
			}
			// ranks[0] is the eighth rank
			if (ch == 'p' || ch == 'P') && (i == 0 || i == 7) {
				return fmt.Errorf("%w: pawn on back rank", ErrInvalidFEN)
			}
		}
		if width != 8 {
			return fmt.Errorf("%w: rank %d has width %d", ErrInvalidFEN, 8-i, width)
		}
	}
	if kings['K'] != 1 || kings['k'] != 1 {
		return fmt.Errorf("%w: need one king per side, got %d white and %d black",
			ErrInvalidFEN, kings['K'], kings['k'])
	}
	return nil
}

// MirrorFEN flips a FEN vertically and swaps the colors of every piece,
// the side to move, the castling rights and the en passant square.
func MirrorFEN(fen string) (string, error) {
	normalized, err := normalizeFEN(fen)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(normalized)

	ranks := strings.Split(fields[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	fields[0] = swapCase(strings.Join(ranks, "/"))

	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}

	if fields[2] != "-" {
		swapped := swapCase(fields[2])
		var upper, lower strings.Builder
		for _, ch := range swapped {
			if ch >= 'A' && ch <= 'Z' {
				upper.WriteRune(ch)
			} else {
				lower.WriteRune(ch)
			}
		}
		fields[2] = upper.String() + lower.String()
	}

	if ep := fields[3]; ep != "-" {
		fields[3] = string([]byte{ep[0], '1' + '8' - ep[1]})
	}
	return strings.Join(fields, " "), nil
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z':
			return r - 'A' + 'a'
		}
		return r
	}, s)
}
