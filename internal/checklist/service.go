package checklist

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"chaincheck/internal/catalog"
	"chaincheck/internal/platform/metrics"
	"chaincheck/internal/threat"
	dErrors "chaincheck/pkg/domain-errors"
)

// EventType classifies change notifications sent to subscribers.
type EventType string

const (
	EventCompletionChanged  EventType = "completion_changed"
	EventThreatLevelChanged EventType = "threat_level_changed"
	EventPresetApplied      EventType = "preset_applied"
)

// Event notifies subscribers that observable state changed. Version is the
// monotonically increasing change counter UI layers can key off.
type Event struct {
	Type    EventType `json:"type"`
	Version int64     `json:"version"`
}

// Service owns the completion state, the active threat level, the score
// cache and the history. It is constructed once at startup with its
// catalog, filter and store, and passed by reference to consumers; there
// is no package-level state. All methods are safe for concurrent use,
// though the logical model stays single-writer: mutations are serialized
// and every mutation's effect is visible to the next read.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	catalog *catalog.Catalog
	filter  *threat.Filter
	store   Store
	tracer  trace.Tracer
	scores  *scoreCache

	settleDelay time.Duration

	mu            sync.RWMutex
	level         threat.Level
	completion    CompletionState
	history       ScoreHistory
	version       int64
	transitioning bool
	settleTimer   *time.Timer

	subMu   sync.Mutex
	subs    map[int]chan Event
	nextSub int

	items map[string]catalog.SecurityItem
}

// NewService seeds the in-memory state from the store. Load faults have
// already been degraded to safe defaults by the store; any residual error
// is logged and defaulted here as well, never surfaced.
func NewService(ctx context.Context, logger *slog.Logger, m *metrics.Metrics, cat *catalog.Catalog, filter *threat.Filter, store Store, settleDelay time.Duration) *Service {
	s := &Service{
		logger:      logger,
		metrics:     m,
		catalog:     cat,
		filter:      filter,
		store:       store,
		tracer:      otel.Tracer("chaincheck/checklist"),
		scores:      newScoreCache(),
		settleDelay: settleDelay,
		subs:        make(map[int]chan Event),
		items:       make(map[string]catalog.SecurityItem),
	}
	for _, c := range cat.Categories() {
		for _, item := range c.Items {
			s.items[item.ID] = item
		}
	}

	level, err := store.LoadThreatLevel(ctx)
	if err != nil {
		logger.WarnContext(ctx, "loading threat level failed, defaulting to all", "error", err.Error())
		level = threat.LevelAll
	}
	s.level = level

	state, err := store.LoadCompletionState(ctx, level)
	if err != nil {
		logger.WarnContext(ctx, "loading completion state failed, starting empty", "error", err.Error())
		state = CompletionState{}
	}
	s.completion = state

	history, err := store.LoadScoreHistory(ctx)
	if err != nil {
		logger.WarnContext(ctx, "loading score history failed, starting empty", "error", err.Error())
		history = ScoreHistory{}
	}
	s.history = history

	return s
}

// Close stops the settle timer. Subscriber channels are left to their
// cancel funcs.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settleTimer != nil {
		s.settleTimer.Stop()
	}
}

// Version returns the change counter, bumped on every mutation.
func (s *Service) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// ThreatLevel returns the active threat level.
func (s *Service) ThreatLevel() threat.Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.level
}

// Transitioning reports whether a threat-level switch is inside its settle
// window. This is a UI affordance only; reads stay correct throughout.
func (s *Service) Transitioning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transitioning
}

// Subscribe registers for change events. The returned cancel func must be
// called to release the subscription. Slow consumers miss events rather
// than blocking mutations; the version counter lets them catch up.
func (s *Service) Subscribe() (<-chan Event, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan Event, 8)
	s.subs[id] = ch
	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (s *Service) notify(t EventType, version int64) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- Event{Type: t, Version: version}:
		default:
		}
	}
}

// Categories returns the materialized catalog filtered for the active
// threat level.
func (s *Service) Categories() []catalog.SecurityCategory {
	return s.CategoriesAt(s.ThreatLevel())
}

// CategoriesAt returns the materialized catalog filtered for the given
// threat level.
func (s *Service) CategoriesAt(level threat.Level) []catalog.SecurityCategory {
	s.mu.RLock()
	state := s.completion.Clone()
	s.mu.RUnlock()

	cats := Materialize(s.catalog.Categories(), state)
	for i := range cats {
		cats[i].Items = s.filter.RelevantItems(cats[i], level)
	}
	return cats
}

// Category returns one materialized, filtered category, or a not_found
// domain error for unknown IDs.
func (s *Service) Category(categoryID string, level threat.Level) (catalog.SecurityCategory, error) {
	cat, ok := s.catalog.Category(categoryID)
	if !ok {
		return catalog.SecurityCategory{}, dErrors.New(dErrors.CodeNotFound, "unknown category: "+categoryID)
	}

	s.mu.RLock()
	state := s.completion.Clone()
	s.mu.RUnlock()

	out := Materialize([]catalog.SecurityCategory{cat}, state)[0]
	out.Items = s.filter.RelevantItems(out, level)
	return out, nil
}

// ToggleItem flips one item's completion flag; an absent entry counts as
// false and becomes true. The category ID is accepted for traceability
// only — toggling is keyed purely by the globally unique item ID. The
// in-memory mutation is the source of truth; persistence failures are
// logged, never rolled back.
func (s *Service) ToggleItem(ctx context.Context, categoryID, itemID string) (bool, error) {
	if _, ok := s.items[itemID]; !ok {
		return false, dErrors.New(dErrors.CodeNotFound, "unknown item: "+itemID)
	}

	s.mu.Lock()
	next := !s.completion[itemID]
	s.completion[itemID] = next
	s.version++
	version := s.version
	state := s.completion.Clone()
	s.mu.Unlock()

	s.cacheInvalidateAll()
	s.metrics.ItemToggles.Inc()
	s.logger.InfoContext(ctx, "item toggled",
		"item", itemID,
		"category", categoryID,
		"completed", next,
	)

	if err := s.store.SaveCompletionState(ctx, state); err != nil {
		s.logger.ErrorContext(ctx, "persisting completion state failed", "error", err.Error())
	}
	s.recordHistory(ctx)
	s.notify(EventCompletionChanged, version)
	return next, nil
}

// ApplyPreset bulk-mutates completion state. Merge mode force-completes
// every catalog item whose level is in the set and never un-completes
// anything; reset mode empties the state. Both invalidate the score cache
// for all threat levels, since a bulk change moves every profile's score.
func (s *Service) ApplyPreset(ctx context.Context, levels []catalog.Level, mode PresetMode) error {
	ctx, span := s.tracer.Start(ctx, "checklist.ApplyPreset")
	defer span.End()

	switch mode {
	case PresetMerge:
		if len(levels) == 0 {
			return dErrors.New(dErrors.CodeBadRequest, "merge preset requires at least one level")
		}
		for _, l := range levels {
			if !l.Valid() {
				return dErrors.New(dErrors.CodeBadRequest, "invalid item level: "+string(l))
			}
		}
	case PresetReset:
	default:
		return dErrors.New(dErrors.CodeBadRequest, "invalid preset mode: "+string(mode))
	}

	want := make(map[catalog.Level]struct{}, len(levels))
	for _, l := range levels {
		want[l] = struct{}{}
	}

	s.mu.Lock()
	switch mode {
	case PresetMerge:
		for id, item := range s.items {
			if _, ok := want[item.Level]; ok {
				s.completion[id] = true
			}
		}
	case PresetReset:
		s.completion = CompletionState{}
	}
	s.version++
	version := s.version
	state := s.completion.Clone()
	s.mu.Unlock()

	s.cacheInvalidateAll()
	s.metrics.PresetsApplied.WithLabelValues(string(mode)).Inc()
	s.logger.InfoContext(ctx, "preset applied",
		"mode", string(mode),
		"levels", levelStrings(levels),
	)

	if err := s.store.SaveCompletionState(ctx, state); err != nil {
		s.logger.ErrorContext(ctx, "persisting completion state failed", "error", err.Error())
	}
	s.recordHistory(ctx)
	s.notify(EventPresetApplied, version)
	return nil
}

// PresetPreview counts the items a merge preset would newly complete:
// items whose level is in the set and which are not already done.
func (s *Service) PresetPreview(levels []catalog.Level) int {
	want := make(map[catalog.Level]struct{}, len(levels))
	for _, l := range levels {
		want[l] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for id, item := range s.items {
		if _, ok := want[item.Level]; ok && !s.completion[id] {
			count++
		}
	}
	return count
}

// SetThreatLevel switches the active profile. A switch starts the settle
// window (UI transition affordance), invalidates the previous level's
// cache entry and persists the selection. Selecting the current level is a
// no-op.
func (s *Service) SetThreatLevel(ctx context.Context, level threat.Level) error {
	if _, ok := threat.ParseLevel(string(level)); !ok {
		return dErrors.New(dErrors.CodeBadRequest, "invalid threat level: "+string(level))
	}

	s.mu.Lock()
	if level == s.level {
		s.mu.Unlock()
		return nil
	}
	prev := s.level
	s.level = level
	s.version++
	version := s.version
	if s.settleDelay > 0 {
		s.transitioning = true
		if s.settleTimer != nil {
			s.settleTimer.Stop()
		}
		s.settleTimer = time.AfterFunc(s.settleDelay, func() {
			s.mu.Lock()
			s.transitioning = false
			s.mu.Unlock()
		})
	}
	s.mu.Unlock()

	s.cache().InvalidateLevel(prev)
	s.logger.InfoContext(ctx, "threat level changed",
		"from", string(prev),
		"to", string(level),
	)

	if err := s.store.SaveThreatLevel(ctx, level); err != nil {
		s.logger.ErrorContext(ctx, "persisting threat level failed", "error", err.Error())
	}
	s.notify(EventThreatLevelChanged, version)
	return nil
}

// CategoryScore returns the completion percentage for one category under
// the active threat level, from cache when warm.
func (s *Service) CategoryScore(categoryID string) (int, error) {
	return s.CategoryScoreAt(categoryID, s.ThreatLevel())
}

// CategoryScoreAt is CategoryScore for an explicit threat level. A
// category with zero relevant items scores 0.
func (s *Service) CategoryScoreAt(categoryID string, level threat.Level) (int, error) {
	cat, ok := s.catalog.Category(categoryID)
	if !ok {
		return 0, dErrors.New(dErrors.CodeNotFound, "unknown category: "+categoryID)
	}

	if score, ok := s.cache().Category(level, categoryID); ok {
		s.metrics.ScoreCacheHits.Inc()
		return score, nil
	}
	s.metrics.ScoreCacheMisses.Inc()

	// The generation is snapshotted before reading completion state so a
	// mutation landing mid-compute turns this fill into a no-op instead of
	// re-caching the pre-mutation score.
	gen := s.cache().Generation()
	completed, total := s.countRelevant(cat, level)
	score := percentage(completed, total)
	s.cache().SetCategory(level, categoryID, score, gen)
	return score, nil
}

// OverallScore returns the completion percentage across all categories'
// relevant items combined for the active threat level. It is weighted by
// item count (sum of completed over sum of relevant), not an average of
// category percentages.
func (s *Service) OverallScore() int {
	return s.OverallScoreAt(s.ThreatLevel())
}

// OverallScoreAt is OverallScore for an explicit threat level.
func (s *Service) OverallScoreAt(level threat.Level) int {
	if score, ok := s.cache().Overall(level); ok {
		s.metrics.ScoreCacheHits.Inc()
		return score
	}
	s.metrics.ScoreCacheMisses.Inc()

	gen := s.cache().Generation()
	completed, total := s.countAllRelevant(level)
	score := percentage(completed, total)
	s.cache().SetOverall(level, score, gen)
	return score
}

// Scores returns the overall and per-category percentages for a level.
func (s *Service) Scores(level threat.Level) ScoreReport {
	report := ScoreReport{
		ThreatLevel: string(level),
		Overall:     s.OverallScoreAt(level),
		Categories:  make(map[string]int),
	}
	for _, cat := range s.catalog.Categories() {
		score, err := s.CategoryScoreAt(cat.ID, level)
		if err != nil {
			continue
		}
		report.Categories[cat.ID] = score
	}
	return report
}

// Stats summarizes the relevant item set for the active threat level.
// The per-level percentages are computed independently per level tag.
func (s *Service) Stats() SecurityStats {
	level := s.ThreatLevel()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats SecurityStats
	levelDone := map[catalog.Level]int{}
	levelTotal := map[catalog.Level]int{}

	for _, cat := range s.catalog.Categories() {
		for _, item := range s.filter.RelevantItems(cat, level) {
			stats.Total++
			done := s.completion[item.ID]
			if done {
				stats.Completed++
			}
			levelTotal[item.Level]++
			if done {
				levelDone[item.Level]++
			}
			if !done {
				switch item.Level {
				case catalog.LevelEssential:
					stats.CriticalRemaining++
				case catalog.LevelRecommended:
					stats.RecommendedRemaining++
				}
			}
		}
	}

	stats.Essential = percentage(levelDone[catalog.LevelEssential], levelTotal[catalog.LevelEssential])
	stats.Optional = percentage(levelDone[catalog.LevelOptional], levelTotal[catalog.LevelOptional])
	stats.Advanced = percentage(levelDone[catalog.LevelAdvanced], levelTotal[catalog.LevelAdvanced])
	return stats
}

// History returns a copy of the score history.
func (s *Service) History() ScoreHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.Clone()
}

// recordHistory snapshots the overall score for the active level. The
// history's own dedup rule decides whether the snapshot is kept.
func (s *Service) recordHistory(ctx context.Context) {
	level := s.ThreatLevel()

	s.mu.Lock()
	completed, total := 0, 0
	for _, cat := range s.catalog.Categories() {
		for _, item := range s.filter.RelevantItems(cat, level) {
			total++
			if s.completion[item.ID] {
				completed++
			}
		}
	}
	entry := ScoreHistoryEntry{
		ID:        uuid.NewString(),
		Date:      time.Now().UTC(),
		Score:     percentage(completed, total),
		Completed: completed,
		Total:     total,
	}
	appended := s.history.Append(entry)
	history := s.history.Clone()
	s.mu.Unlock()

	if !appended {
		return
	}
	if err := s.store.SaveScoreHistory(ctx, history); err != nil {
		s.logger.ErrorContext(ctx, "persisting score history failed", "error", err.Error())
	}
}

func (s *Service) countRelevant(cat catalog.SecurityCategory, level threat.Level) (completed, total int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.filter.RelevantItems(cat, level) {
		total++
		if s.completion[item.ID] {
			completed++
		}
	}
	return completed, total
}

func (s *Service) countAllRelevant(level threat.Level) (completed, total int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cat := range s.catalog.Categories() {
		for _, item := range s.filter.RelevantItems(cat, level) {
			total++
			if s.completion[item.ID] {
				completed++
			}
		}
	}
	return completed, total
}

func (s *Service) cache() *scoreCache {
	return s.scores
}

func (s *Service) cacheInvalidateAll() {
	s.scores.Invalidate()
}

// percentage computes round(100*completed/total) with the documented
// zero-relevant rule: no items means score 0, never a division fault.
func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}

func levelStrings(levels []catalog.Level) []string {
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = string(l)
	}
	return out
}
