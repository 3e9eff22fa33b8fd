package combo

import "strings"

// DefaultStart is the first combination number of a batch when none is given
const DefaultStart = 1

// Record is one numbered combination of a batch
type Record struct {
	Number      int
	CaseID      string
	Combination Combination
}

// Batch holds the rendered output of one sequence of load cases
type Batch struct {
	Text    string
	Count   int
	Start   int
	Records []Record
}

// Next returns the number immediately after the last combination
func (b Batch) Next() int {
	return b.Start + b.Count
}

// GenerateCombinations expands and renders every valid case in order,
// numbering combinations from start across the whole batch. A zero start
// falls back to DefaultStart.
func GenerateCombinations(in Input, cases []LoadCase, start int, opts RenderOptions) Batch {
	if start == 0 {
		start = DefaultStart
	}

	var sb strings.Builder
	batch := Batch{Start: start}
	for _, lc := range cases {
		if !lc.Valid() {
			continue
		}
		for _, c := range ExpandCase(lc, in) {
			number := start + batch.Count
			RenderCombination(&sb, number, c, in.Loads, opts)
			batch.Records = append(batch.Records, Record{Number: number, CaseID: lc.ID, Combination: c})
			batch.Count++
		}
	}
	batch.Text = sb.String()
	return batch
}
