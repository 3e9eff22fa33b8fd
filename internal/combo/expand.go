package combo

// TypeExpansion records how one load type column of a case expanded
type TypeExpansion struct {
	Type     string
	Factor   float64
	Strategy Strategy
	Loads    int // primary loads of this type
	Sets     int // sets contributed, 0 when the type was absorbed
}

// Absorbed reports whether the type had no primary loads and therefore
// took no part in the product
func (t TypeExpansion) Absorbed() bool {
	return t.Loads == 0
}

// CaseExpansion is the full expansion of a single load case
type CaseExpansion struct {
	Case         LoadCase
	Types        []TypeExpansion
	Combinations []Combination
}

// ExpandCase expands one load case into its combinations, in product order
func ExpandCase(lc LoadCase, in Input) []Combination {
	return Expand(lc, in).Combinations
}

// Expand expands one load case and reports the per-type breakdown.
//
// Types are processed in the case's factor order; the first processed type
// varies slowest in the product. Factors that are empty, zero or not
// numeric are skipped. A type with no primary loads is skipped as well, and
// a case where no type contributes yields no combinations.
func Expand(lc LoadCase, in Input) CaseExpansion {
	groups := groupByType(in.Loads)
	out := CaseExpansion{Case: lc}

	var lists [][]Combination
	for _, entry := range lc.Factors {
		f, ok := ParseFactor(entry.Value)
		if !ok {
			continue
		}

		strategy := in.Strategies.Of(entry.Type)
		loads := groups[entry.Type]
		te := TypeExpansion{
			Type:     entry.Type,
			Factor:   f,
			Strategy: strategy,
			Loads:    len(loads),
		}

		if len(loads) > 0 {
			sets := setsForType(strategy, f, loads)
			te.Sets = len(sets)
			lists = append(lists, sets)
		}
		out.Types = append(out.Types, te)
	}

	if len(lists) > 0 {
		out.Combinations = crossProduct(lists)
	}
	return out
}

// groupByType groups loads by type, preserving load order within a group
func groupByType(loads []PrimaryLoad) map[string][]PrimaryLoad {
	groups := make(map[string][]PrimaryLoad)
	for _, l := range loads {
		groups[l.Type] = append(groups[l.Type], l)
	}
	return groups
}

// setsForType expands the loads of one type under a strategy
func setsForType(strategy Strategy, factor float64, loads []PrimaryLoad) []Combination {
	switch strategy {
	case Aggregate:
		set := make(Combination, len(loads))
		for _, l := range loads {
			set[l.ID] = factor
		}
		return []Combination{set}

	case Matrix:
		// Mask 1 first, 2^n-1 last; bit j selects loads[j]
		n := uint(len(loads))
		sets := make([]Combination, 0, (1<<n)-1)
		for mask := uint64(1); mask < 1<<n; mask++ {
			set := make(Combination)
			for j := uint(0); j < n; j++ {
				if mask&(1<<j) != 0 {
					set[loads[j].ID] = factor
				}
			}
			sets = append(sets, set)
		}
		return sets

	default:
		sets := make([]Combination, len(loads))
		for i, l := range loads {
			sets[i] = Combination{l.ID: factor}
		}
		return sets
	}
}

// crossProduct merges one set from every list, the first list varying
// slowest. The product of zero lists is a single empty combination.
func crossProduct(lists [][]Combination) []Combination {
	acc := []Combination{{}}
	for _, list := range lists {
		next := make([]Combination, 0, len(acc)*len(list))
		for _, a := range acc {
			for _, b := range list {
				merged := make(Combination, len(a)+len(b))
				for id, f := range a {
					merged[id] = f
				}
				for id, f := range b {
					merged[id] = f
				}
				next = append(next, merged)
			}
		}
		acc = next
	}
	return acc
}
