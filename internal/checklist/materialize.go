package checklist

import (
	"chaincheck/internal/catalog"
)

// Materialize overlays completion state onto catalog categories. Every
// item's Completed flag is set from the state (absent means false); no
// other field is touched. The input is never mutated: categories and item
// slices are copied, which is cheap at this catalog size and lets callers
// hold the result across further mutations.
func Materialize(categories []catalog.SecurityCategory, state CompletionState) []catalog.SecurityCategory {
	out := make([]catalog.SecurityCategory, len(categories))
	for i, cat := range categories {
		items := make([]catalog.SecurityItem, len(cat.Items))
		for j, item := range cat.Items {
			item.Completed = state[item.ID]
			items[j] = item
		}
		cat.Items = items
		out[i] = cat
	}
	return out
}
