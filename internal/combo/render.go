package combo

import (
	"math"
	"strconv"
	"strings"
)

// RenderOptions tunes the text layout of rendered combinations
type RenderOptions struct {
	// Compact drops the blank line that normally ends each block
	Compact bool
}

// FormatFactor renders integers without a decimal point ("2") and every
// other value with exactly two decimals, halves rounding away from zero
// ("0.125" -> "0.13").
func FormatFactor(f float64) string {
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return toFixed2(f)
}

// toFixed2 rounds on the exact binary value: a float slightly below a
// half stays below it ("1.005" is stored as 1.00499... and gives "1.00").
func toFixed2(f float64) string {
	neg := f < 0
	exact := strconv.FormatFloat(math.Abs(f), 'f', 40, 64)
	dot := strings.IndexByte(exact, '.')

	// Integer part followed by the first two decimals, as one digit run
	digits := []byte(exact[:dot] + exact[dot+1:dot+3])
	if exact[dot+3] >= '5' {
		i := len(digits) - 1
		for i >= 0 && digits[i] == '9' {
			digits[i] = '0'
			i--
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		} else {
			digits[i]++
		}
	}

	n := len(digits)
	out := string(digits[:n-2]) + "." + string(digits[n-2:])
	if neg {
		out = "-" + out
	}
	return out
}

// RenderCombination appends one numbered combination block to sb.
//
// Line one is "LOAD COMB <n> <factor> <name> + ..." and line two lists
// "<load index> <factor>" pairs; both walk loads in their current order.
// Line two is left out when no load is present.
func RenderCombination(sb *strings.Builder, number int, c Combination, loads []PrimaryLoad, opts RenderOptions) {
	var desc, pairs []string
	for i, l := range loads {
		f, ok := c[l.ID]
		if !ok || f == 0 {
			continue
		}
		ft := FormatFactor(f)
		desc = append(desc, ft+" "+l.Name)
		pairs = append(pairs, strconv.Itoa(i+1)+" "+ft)
	}

	sb.WriteString("LOAD COMB ")
	sb.WriteString(strconv.Itoa(number))
	sb.WriteString(" ")
	sb.WriteString(strings.Join(desc, " + "))
	sb.WriteString("\n")

	if len(pairs) > 0 {
		sb.WriteString(strings.Join(pairs, " "))
		sb.WriteString("\n")
	}

	if !opts.Compact {
		sb.WriteString("\n")
	}
}
