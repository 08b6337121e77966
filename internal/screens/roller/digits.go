package roller

import (
	"strconv"
	"strings"
)

// glyphs are 5-row block digits, 3 columns wide.
var glyphs = map[rune][5]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" ██", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
}

const glyphRows = 5

// bigNumber renders n in block digits, one column of space between glyphs.
func bigNumber(n int) string {
	digits := strconv.Itoa(n)
	rows := make([]string, glyphRows)
	for i := range rows {
		parts := make([]string, 0, len(digits))
		for _, d := range digits {
			parts = append(parts, glyphs[d][i])
		}
		rows[i] = strings.Join(parts, " ")
	}
	return strings.Join(rows, "\n")
}
