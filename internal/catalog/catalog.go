package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

// CategoryIDs is the fixed, ordered set of categories this deployment
// serves. Loaders, threat mappings and the UI all key off these.
var CategoryIDs = []string{
	"authentication",
	"browsing",
	"email",
	"mobile",
	"social",
	"wallet",
	"os",
	"defi",
	"jobs",
	"developers",
	"opsec",
}

// loaders maps category IDs to their builder. Builders are cheap and pure;
// the indirection exists so a single broken category degrades instead of
// taking down the whole catalog.
var loaders = map[string]func() (SecurityCategory, error){
	"authentication": loadAuthentication,
	"browsing":       loadBrowsing,
	"email":          loadEmail,
	"mobile":         loadMobile,
	"social":         loadSocial,
	"wallet":         loadWallet,
	"os":             loadOS,
	"defi":           loadDefi,
	"jobs":           loadJobs,
	"developers":     loadDevelopers,
	"opsec":          loadOpsec,
}

// Catalog is the immutable set of categories, constructed once at startup
// and passed by reference to consumers. There is deliberately no mutable
// package-level catalog state.
type Catalog struct {
	categories []SecurityCategory
	byID       map[string]int
}

// Load builds the catalog, loading categories concurrently. A category
// whose loader fails degrades to a placeholder with no items rather than
// aborting the load; the failure is logged for visibility.
func Load(ctx context.Context, logger *slog.Logger) (*Catalog, error) {
	ctx, span := otel.Tracer("chaincheck/catalog").Start(ctx, "catalog.Load")
	defer span.End()

	results := make([]SecurityCategory, len(CategoryIDs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range CategoryIDs {
		i, id := i, id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			load, ok := loaders[id]
			if !ok {
				return fmt.Errorf("catalog: no loader registered for category %q", id)
			}
			cat, err := load()
			if err != nil {
				logger.ErrorContext(ctx, "category load failed, serving placeholder",
					"category", id,
					"error", err.Error(),
				)
				cat = placeholder(id)
			}
			mu.Lock()
			results[i] = cat
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return New(results), nil
}

// New builds a catalog from explicit categories. Load uses it; tests use
// it to run the engine over small fixture catalogs.
func New(categories []SecurityCategory) *Catalog {
	byID := make(map[string]int, len(categories))
	for i, cat := range categories {
		byID[cat.ID] = i
	}
	return &Catalog{categories: categories, byID: byID}
}

// placeholder keeps a failed category addressable with zero items so the
// UI renders an empty section instead of a hole.
func placeholder(id string) SecurityCategory {
	return SecurityCategory{
		ID:          id,
		Title:       id,
		Description: "This section is temporarily unavailable.",
		Icon:        IconKey,
	}
}

// Categories returns the categories in display order. The returned slice
// headers are copies; item slices are shared and must be treated as
// read-only (the materializer copies before overlaying completion).
func (c *Catalog) Categories() []SecurityCategory {
	out := make([]SecurityCategory, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category returns the category with the given ID.
func (c *Catalog) Category(id string) (SecurityCategory, bool) {
	i, ok := c.byID[id]
	if !ok {
		return SecurityCategory{}, false
	}
	return c.categories[i], true
}

// ItemCount returns the total number of items across all categories.
func (c *Catalog) ItemCount() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Items)
	}
	return n
}

// Validate reports data-integrity defects in the catalog itself: duplicate
// or empty item IDs and invalid levels. It returns descriptions rather
// than failing so startup can log and continue.
func (c *Catalog) Validate() []string {
	var problems []string
	seen := make(map[string]string)
	for _, cat := range c.categories {
		for _, item := range cat.Items {
			if item.ID == "" {
				problems = append(problems, fmt.Sprintf("category %s: item with empty ID", cat.ID))
				continue
			}
			if prev, dup := seen[item.ID]; dup {
				problems = append(problems, fmt.Sprintf("item ID %s duplicated across %s and %s", item.ID, prev, cat.ID))
			}
			seen[item.ID] = cat.ID
			if !item.Level.Valid() {
				problems = append(problems, fmt.Sprintf("item %s: invalid level %q", item.ID, item.Level))
			}
		}
	}
	return problems
}
