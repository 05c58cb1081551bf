package sunmao

import "fmt"

// Auto-mode tuning. The cutoff is a declared configuration constant, not
// an inherited magic number: at or below autoGlobalMaxLabels distinct
// labels, with no label repeated inside a single panel, auto picks one
// global legend; otherwise it falls back to mixed.
const (
	autoGlobalMaxLabels  = 4
	defaultLegendColumns = 4
)

// legendState is the tree's legend registry: per-panel entries in
// insertion order (plotting call order), plus bookkeeping for rendered
// legends so they can be cleared and repositioned.
type legendState struct {
	entries map[panelID][]LegendEntry
	global  *renderedLegend
	local   map[panelID]*renderedLegend
}

type renderedLegend struct {
	entries []LegendEntry
	at      Anchor
	ncol    int
}

func newLegendState() legendState {
	return legendState{
		entries: make(map[panelID][]LegendEntry),
		local:   make(map[panelID]*renderedLegend),
	}
}

func (s *legendState) record(p *Panel, label string, h Handle) {
	s.entries[p.id] = append(s.entries[p.id], LegendEntry{Label: label, Handle: h, Panel: p})
}

// collect returns every recorded entry in tree traversal order, entries
// within a panel in insertion order.
func (t *Tree) collectEntries() []LegendEntry {
	var out []LegendEntry
	t.Root().Walk(func(p *Panel) bool {
		out = append(out, t.legend.entries[p.id]...)
		return true
	})
	return out
}

// CreateLegend renders legends for every entry recorded so far according
// to the selected mode (LegendAuto by default). With nothing recorded it
// is a deliberate no-op, so legend calls are safe on empty panels. On a
// backend error the legends this call already rendered are cleared
// again before the error is returned.
func (t *Tree) CreateLegend(opts ...LegendOption) error {
	var cfg legendConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	all := t.collectEntries()
	if len(all) == 0 {
		return nil
	}

	mode := cfg.mode
	if mode == LegendAuto {
		mode = t.autoMode(all)
	}
	switch mode {
	case LegendGlobal:
		return t.renderGlobal(all, cfg)
	case LegendLocal:
		return t.renderLocal(cfg, nil)
	case LegendMixed:
		return t.renderMixed(all, cfg)
	}
	return fmt.Errorf("sunmao: unknown legend mode %d", cfg.mode)
}

// autoMode picks global for small, repetition-free label sets and mixed
// otherwise.
func (t *Tree) autoMode(all []LegendEntry) LegendMode {
	distinct := make(map[string]struct{})
	for _, e := range all {
		if e.Label != "" {
			distinct[e.Label] = struct{}{}
		}
	}
	repeated := false
	for _, panelEntries := range t.legend.entries {
		seen := make(map[string]int)
		for _, e := range panelEntries {
			if e.Label == "" {
				continue
			}
			seen[e.Label]++
			if seen[e.Label] > 1 {
				repeated = true
			}
		}
	}
	if len(distinct) <= autoGlobalMaxLabels && !repeated {
		return LegendGlobal
	}
	return LegendMixed
}

// dedupe keeps the first occurrence of each non-empty label, preserving
// order. Empty labels are never deduplication keys and are dropped here.
func dedupe(entries []LegendEntry) []LegendEntry {
	seen := make(map[string]struct{}, len(entries))
	var out []LegendEntry
	for _, e := range entries {
		if e.Label == "" {
			continue
		}
		if _, dup := seen[e.Label]; dup {
			continue
		}
		seen[e.Label] = struct{}{}
		out = append(out, e)
	}
	return out
}

// columns resolves the column count: an explicit positive request wins,
// otherwise min(placed entries, defaultLegendColumns). Unlabeled entries
// inflate the placed count only when asked to.
func columns(cfg legendConfig, rendered, unlabeled int) int {
	if cfg.ncol > 0 {
		return cfg.ncol
	}
	n := rendered
	if cfg.includeUnlabeled {
		n += unlabeled
	}
	if n > defaultLegendColumns {
		return defaultLegendColumns
	}
	if n < 1 {
		return 1
	}
	return n
}

func countUnlabeled(entries []LegendEntry) int {
	n := 0
	for _, e := range entries {
		if e.Label == "" {
			n++
		}
	}
	return n
}

func (t *Tree) renderGlobal(all []LegendEntry, cfg legendConfig) error {
	deduped := dedupe(all)
	if len(deduped) == 0 {
		return nil
	}
	at := TopCenter
	if cfg.atSet {
		at = cfg.at
	}
	ncol := columns(cfg, len(deduped), countUnlabeled(all))
	if err := t.fig.Legend(deduped, at, ncol); err != nil {
		return fmt.Errorf("sunmao: figure legend: %w", err)
	}
	t.legend.global = &renderedLegend{entries: deduped, at: at, ncol: ncol}
	return nil
}

// renderLocal creates one legend per panel that produced entries, from
// its own entries only. When keep is non-nil, only entries whose label it
// maps to true participate (the mixed mode's unique-label filter). On a
// backend failure the legends already rendered by this call are cleared
// again, so the call either renders every local legend or none.
func (t *Tree) renderLocal(cfg legendConfig, keep map[string]bool) error {
	var failed error
	var done []panelID
	t.Root().Walk(func(p *Panel) bool {
		panelEntries := t.legend.entries[p.id]
		var own []LegendEntry
		for _, e := range panelEntries {
			if e.Label == "" {
				continue
			}
			if keep != nil && !keep[e.Label] {
				continue
			}
			own = append(own, e)
		}
		if len(own) == 0 {
			return true
		}
		at := TopRight
		if cfg.atSet {
			at = cfg.at
		}
		ncol := columns(cfg, len(own), countUnlabeled(panelEntries))
		if err := p.surface.Legend(own, at, ncol); err != nil {
			failed = fmt.Errorf("sunmao: panel %d legend: %w", p.id, err)
			return false
		}
		t.legend.local[p.id] = &renderedLegend{entries: own, at: at, ncol: ncol}
		done = append(done, p.id)
		return true
	})
	if failed != nil {
		for _, id := range done {
			t.panels[id].surface.ClearLegend()
			delete(t.legend.local, id)
		}
	}
	return failed
}

func (t *Tree) renderMixed(all []LegendEntry, cfg legendConfig) error {
	// A label is shared when two or more distinct panels produced it.
	panelsByLabel := make(map[string]map[panelID]struct{})
	for _, e := range all {
		if e.Label == "" {
			continue
		}
		if panelsByLabel[e.Label] == nil {
			panelsByLabel[e.Label] = make(map[panelID]struct{})
		}
		panelsByLabel[e.Label][e.Panel.id] = struct{}{}
	}

	var shared []LegendEntry
	unique := make(map[string]bool)
	for _, e := range all {
		if e.Label == "" {
			continue
		}
		if len(panelsByLabel[e.Label]) >= 2 {
			shared = append(shared, e)
		} else {
			unique[e.Label] = true
		}
	}

	renderedGlobal := false
	if len(shared) > 0 {
		at := TopCenter
		if cfg.atSet {
			at = cfg.at
		}
		deduped := dedupe(shared)
		ncol := columns(cfg, len(deduped), countUnlabeled(all))
		if err := t.fig.Legend(deduped, at, ncol); err != nil {
			return fmt.Errorf("sunmao: figure legend: %w", err)
		}
		t.legend.global = &renderedLegend{entries: deduped, at: at, ncol: ncol}
		renderedGlobal = true
	}
	if len(unique) > 0 {
		// Local legends keep their default corner even when the global
		// anchor was overridden.
		localCfg := cfg
		localCfg.atSet = false
		if err := t.renderLocal(localCfg, unique); err != nil {
			if renderedGlobal {
				t.fig.ClearLegend()
				t.legend.global = nil
			}
			return err
		}
	}
	return nil
}

// ClearLegends removes every rendered legend and resets the entry
// registry. Idempotent; a following CreateLegend on the empty registry is
// a no-op.
func (t *Tree) ClearLegends() {
	if t.legend.global != nil {
		t.fig.ClearLegend()
		t.legend.global = nil
	}
	for id := range t.legend.local {
		t.panels[id].surface.ClearLegend()
	}
	t.legend = newLegendState()
}

// SetLegendPosition moves an already-created legend: target nil moves the
// figure-level legend, otherwise the given panel's local legend. It fails
// with ErrNoLegendRendered when that target has no legend yet.
func (t *Tree) SetLegendPosition(target *Panel, at Anchor) error {
	if target == nil {
		rl := t.legend.global
		if rl == nil {
			return fmt.Errorf("%w: figure", ErrNoLegendRendered)
		}
		t.fig.ClearLegend()
		if err := t.fig.Legend(rl.entries, at, rl.ncol); err != nil {
			return fmt.Errorf("sunmao: figure legend: %w", err)
		}
		rl.at = at
		return nil
	}
	rl := t.legend.local[target.id]
	if rl == nil {
		return fmt.Errorf("%w: panel %d", ErrNoLegendRendered, target.id)
	}
	target.surface.ClearLegend()
	if err := target.surface.Legend(rl.entries, at, rl.ncol); err != nil {
		return fmt.Errorf("sunmao: panel %d legend: %w", target.id, err)
	}
	rl.at = at
	return nil
}
