package sunmao

import "image/color"

// TenonOption configures a single Tenon call.
type TenonOption func(*tenonConfig)

type tenonConfig struct {
	title     string
	titleSide Direction
	autoAlign bool
	axesOff   bool
	pad       float64
}

func defaultTenonConfig() tenonConfig {
	return tenonConfig{titleSide: Top, autoAlign: true}
}

// WithTitle sets a title on the new child's surface.
func WithTitle(title string) TenonOption {
	return func(c *tenonConfig) { c.title = title }
}

// WithTitleSide places the child's title on the given side. Backends that
// only support top titles treat other sides as Top.
func WithTitleSide(side Direction) TenonOption {
	return func(c *tenonConfig) { c.titleSide = side }
}

// AutoAlign controls whether the new child is aligned with its parent at
// creation along the axis implied by the attachment direction. On by
// default.
func AutoAlign(on bool) TenonOption {
	return func(c *tenonConfig) { c.autoAlign = on }
}

// AxesOff hides the child surface's axes.
func AxesOff() TenonOption {
	return func(c *tenonConfig) { c.axesOff = true }
}

// WithPad reserves breathing room around the child surface, in layout
// units.
func WithPad(pad float64) TenonOption {
	return func(c *tenonConfig) { c.pad = pad }
}

// SeriesOption configures a single Plot or Scatter call.
type SeriesOption func(*seriesConfig)

type seriesConfig struct {
	style   SeriesStyle
	labeled bool
}

// WithLabel labels the series and records a legend entry for it. An empty
// label still records an entry; empty labels are never deduplication keys
// but can be counted for legend placement (see IncludeUnlabeled).
func WithLabel(label string) SeriesOption {
	return func(c *seriesConfig) {
		c.style.Label = label
		c.labeled = true
	}
}

// WithColor fixes the series color instead of the backend palette.
func WithColor(col color.Color) SeriesOption {
	return func(c *seriesConfig) { c.style.Color = col }
}

// LegendMode selects how legends are distributed across panels.
type LegendMode int

const (
	// LegendAuto picks LegendGlobal for small, repetition-free label sets
	// and falls back to LegendMixed otherwise.
	LegendAuto LegendMode = iota
	// LegendGlobal merges every panel's entries into one deduplicated
	// figure-level legend.
	LegendGlobal
	// LegendLocal gives each panel with entries its own legend.
	LegendLocal
	// LegendMixed splits labels: those appearing on two or more panels go
	// to a deduplicated figure-level legend, the rest stay local.
	LegendMixed
)

func (m LegendMode) String() string {
	switch m {
	case LegendAuto:
		return "auto"
	case LegendGlobal:
		return "global"
	case LegendLocal:
		return "local"
	case LegendMixed:
		return "mixed"
	}
	return "unknown"
}

// LegendOption configures a CreateLegend call.
type LegendOption func(*legendConfig)

type legendConfig struct {
	mode             LegendMode
	at               Anchor
	atSet            bool
	ncol             int
	includeUnlabeled bool
}

// WithMode selects the legend distribution mode. Defaults to LegendAuto.
func WithMode(m LegendMode) LegendOption {
	return func(c *legendConfig) { c.mode = m }
}

// At anchors the created legend. Defaults to TopCenter for figure-level
// legends and TopRight for panel-local ones.
func At(a Anchor) LegendOption {
	return func(c *legendConfig) {
		c.at = a
		c.atSet = true
	}
}

// WithColumns sets the legend column count. Non-positive values fall back
// to min(entry count, defaultLegendColumns).
func WithColumns(ncol int) LegendOption {
	return func(c *legendConfig) { c.ncol = ncol }
}

// IncludeUnlabeled counts empty-label entries when sizing legend columns.
// They still never appear as deduplication keys.
func IncludeUnlabeled() LegendOption {
	return func(c *legendConfig) { c.includeUnlabeled = true }
}
