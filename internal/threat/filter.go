package threat

import (
	"fmt"
	"log/slog"
	"sync"

	"chaincheck/internal/catalog"
	"chaincheck/internal/platform/metrics"
)

// Mapping is a per-category relevance table: threat level to item IDs.
type Mapping map[Level][]string

// Filter narrows categories to the items relevant under a threat level.
// It owns the fallback policy for incomplete mapping data and logs each
// missing category/level pair once.
type Filter struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	mappings map[string]Mapping

	mu     sync.Mutex
	warned map[string]struct{}
}

// NewFilter builds a Filter over the built-in mapping table. metrics may
// be nil in tests.
func NewFilter(logger *slog.Logger, m *metrics.Metrics) *Filter {
	return NewFilterWithMappings(logger, m, categoryMappings)
}

// NewFilterWithMappings builds a Filter over an explicit mapping table,
// used by tests running fixture catalogs.
func NewFilterWithMappings(logger *slog.Logger, m *metrics.Metrics, mappings map[string]Mapping) *Filter {
	return &Filter{
		logger:   logger,
		metrics:  m,
		mappings: mappings,
		warned:   make(map[string]struct{}),
	}
}

// ItemsForLevel returns the item IDs relevant for a category under a
// threat level. An empty result means "no filtering — include all items":
// that is the contract for LevelAll, and deliberately also the fallback
// for a concrete level whose mapping is missing or empty, so incomplete
// data degrades to showing everything instead of nothing.
func (f *Filter) ItemsForLevel(categoryID string, level Level) []string {
	if level == LevelAll {
		return nil
	}

	ids := f.mappings[categoryID][level]
	if len(ids) == 0 {
		f.warnOnce(categoryID, level)
		return nil
	}

	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// RelevantItems applies ItemsForLevel as a filter over the category's
// items. IDs in the mapping that match no item are silently dropped; the
// validation pass reports them as data defects.
func (f *Filter) RelevantItems(category catalog.SecurityCategory, level Level) []catalog.SecurityItem {
	ids := f.ItemsForLevel(category.ID, level)
	if len(ids) == 0 {
		out := make([]catalog.SecurityItem, len(category.Items))
		copy(out, category.Items)
		return out
	}

	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	out := make([]catalog.SecurityItem, 0, len(ids))
	for _, item := range category.Items {
		if _, ok := want[item.ID]; ok {
			out = append(out, item)
		}
	}
	return out
}

func (f *Filter) warnOnce(categoryID string, level Level) {
	key := categoryID + "|" + string(level)

	f.mu.Lock()
	_, seen := f.warned[key]
	if !seen {
		f.warned[key] = struct{}{}
	}
	f.mu.Unlock()

	if seen {
		return
	}
	f.logger.Warn("no threat mapping for category, falling back to all items",
		"category", categoryID,
		"threat_level", string(level),
	)
	if f.metrics != nil {
		f.metrics.MappingFallbacks.WithLabelValues(categoryID, string(level)).Inc()
	}
}

// ValidateMappings cross-checks the mapping table against the catalog and
// reports dangling item IDs and unknown categories. Defects are reported,
// not fatal: filtering already drops IDs that match nothing.
func ValidateMappings(c *catalog.Catalog) []string {
	var problems []string
	for categoryID, byLevel := range categoryMappings {
		cat, ok := c.Category(categoryID)
		if !ok {
			problems = append(problems, fmt.Sprintf("mapping references unknown category %q", categoryID))
			continue
		}
		known := make(map[string]struct{}, len(cat.Items))
		for _, item := range cat.Items {
			known[item.ID] = struct{}{}
		}
		for level, ids := range byLevel {
			for _, id := range ids {
				if _, ok := known[id]; !ok {
					problems = append(problems, fmt.Sprintf("mapping %s/%s references unknown item %q", categoryID, level, id))
				}
			}
		}
	}
	return problems
}
