package selection

import (
	"sort"

	"github.com/jonathan/resume-curator/internal/types"
)

// DefaultBulletCap is the maximum number of bullets kept per entry unless the
// caller overrides it.
const DefaultBulletCap = 4

// Options tunes the selector.
type Options struct {
	// BulletCap limits bullets per entry; zero means DefaultBulletCap
	BulletCap int
}

func (o Options) bulletCap() int {
	if o.BulletCap <= 0 {
		return DefaultBulletCap
	}
	return o.BulletCap
}

// Select chooses bullets from the scored entries so that the combined line
// cost of every chosen bullet plus the header of every opened entry stays
// within budget, greedily maximizing score per line.
//
// key constraints:
//   - budget must be positive; zero or negative is an InvalidBudgetError.
//   - An entry's header cost is charged once, when its first bullet is taken.
//   - At most bulletCap bullets survive per entry.
//   - Identical inputs always produce identical output; ties keep input order.
//
// A budget too small to fit any bullet is not an error: the result comes back
// empty with Reason set to BudgetTooSmall.
func Select(entries []types.ScoredEntry, budget int, opts Options) (*types.SelectionResult, error) {
	if budget <= 0 {
		return nil, &InvalidBudgetError{Budget: budget}
	}

	// Flatten every bullet into a candidate ranked by score density. The sort
	// is stable over (entry index, bullet index), so equal densities resolve
	// in input order.
	type candidate struct {
		entry   int
		bullet  int
		density float64
	}
	candidates := make([]candidate, 0)
	for ei := range entries {
		for bi, b := range entries[ei].Bullets {
			cost := b.Cost
			if cost < 1 {
				cost = 1
			}
			candidates = append(candidates, candidate{
				entry:   ei,
				bullet:  bi,
				density: b.Score / float64(cost),
			})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].density > candidates[j].density
	})

	maxPerEntry := opts.bulletCap()
	taken := make(map[int]map[int]bool)
	perEntry := make(map[int]int)
	totalCost := 0
	totalScore := 0.0

	for _, c := range candidates {
		if perEntry[c.entry] >= maxPerEntry {
			continue
		}
		b := entries[c.entry].Bullets[c.bullet]

		addCost := b.Cost
		if perEntry[c.entry] == 0 {
			addCost += entries[c.entry].HeaderCost
		}
		if totalCost+addCost > budget {
			continue
		}

		if taken[c.entry] == nil {
			taken[c.entry] = make(map[int]bool)
		}
		taken[c.entry][c.bullet] = true
		perEntry[c.entry]++
		totalCost += addCost
		totalScore += b.Score
	}

	result := &types.SelectionResult{
		Entries:    make([]types.SelectedEntry, 0, len(taken)),
		TotalCost:  totalCost,
		TotalScore: totalScore,
		Budget:     budget,
		Reason:     types.ReasonOK,
	}

	// Rebuild the selection in input order, bullets in input order too.
	for ei := range entries {
		chosen := taken[ei]
		if len(chosen) == 0 {
			continue
		}
		src := &entries[ei]
		selected := types.SelectedEntry{
			EntryID:    src.EntryID,
			Section:    src.Section,
			Heading:    src.Heading,
			Subheading: src.Subheading,
			Dates:      src.Dates,
			HeaderCost: src.HeaderCost,
			SortKey:    src.SortKey,
			Bullets:    make([]types.ScoredBullet, 0, len(chosen)),
		}
		for bi, b := range src.Bullets {
			if chosen[bi] {
				selected.Bullets = append(selected.Bullets, b)
			}
		}
		result.Entries = append(result.Entries, selected)
	}

	if result.Empty() {
		result.Reason = types.ReasonBudgetTooSmall
	}
	if result.TotalCost > budget {
		return nil, &Error{Message: "selection exceeded budget"}
	}

	return result, nil
}
