package sections

// Default thresholds for scroll evaluation, in the container's distance units.
const (
	// DefaultTopThreshold is the scroll offset below which the page counts
	// as scrolled to the top.
	DefaultTopThreshold = 50.0
	// DefaultQualifyOffset is the distance from the container top at or
	// above which a heading qualifies as the active section.
	DefaultQualifyOffset = 200.0
)

// Container abstracts the scrollable content pane a Tracker observes.
// All methods tolerate the pane being unmounted: lookups report ok=false
// and scroll commands are no-ops. Implementations never return errors;
// a missing element is an expected transient state during navigation.
type Container interface {
	// ScrollTop returns the container's current scroll offset from the top.
	// ok is false when the container is not currently mounted.
	ScrollTop() (offset float64, ok bool)

	// HeadingTop returns the top edge of the heading with the given id,
	// relative to the container's top. ok is false when the heading is not
	// rendered, which happens when the section list was computed for a
	// different route than what is mounted.
	HeadingTop(id string) (top float64, ok bool)

	// ScrollTo smoothly scrolls the container to the given offset.
	ScrollTo(offset float64)

	// ScrollIntoView smoothly scrolls the heading with the given id to the
	// top of the container. Returns false when the heading is not rendered.
	ScrollIntoView(id string) bool
}

// Tracker keeps a single active-section value consistent with the reader's
// scroll position and provides click-to-scroll navigation. One Tracker is
// created per page instance; its state is discarded when the page unmounts.
//
// Tracker is not safe for concurrent use. It is driven from a single event
// loop, matching the scroll-event model it mirrors.
type Tracker struct {
	container Container
	sections  []Section
	active    string

	topThreshold  float64
	qualifyOffset float64
	onChange      func(id string)
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithThresholds overrides the default top and qualify thresholds.
func WithThresholds(top, qualify float64) Option {
	return func(t *Tracker) {
		t.topThreshold = top
		t.qualifyOffset = qualify
	}
}

// WithOnChange registers a callback fired whenever the active section id
// changes, including the initial evaluation on construction.
func WithOnChange(fn func(id string)) Option {
	return func(t *Tracker) { t.onChange = fn }
}

// NewTracker creates a Tracker for the given container and ordered section
// list (sentinel first, see WithTop). It immediately performs one scroll
// evaluation so the initial active section is correct before any scrolling.
func NewTracker(container Container, secs []Section, opts ...Option) *Tracker {
	t := &Tracker{
		container:     container,
		sections:      secs,
		active:        TopSentinel,
		topThreshold:  DefaultTopThreshold,
		qualifyOffset: DefaultQualifyOffset,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.HandleScroll()
	return t
}

// Active returns the id of the section currently considered in view.
func (t *Tracker) Active() string { return t.active }

// Sections returns the tracker's current section list.
func (t *Tracker) Sections() []Section { return t.sections }

// SetSections replaces the section list, as on a route change, and
// re-evaluates the active section immediately.
func (t *Tracker) SetSections(secs []Section) {
	t.sections = secs
	t.HandleScroll()
}

// HandleScroll performs one scroll-position evaluation. Near the very top
// the sentinel wins outright; otherwise the last section whose heading top
// is at or above the qualify offset becomes active. Headings that are not
// rendered are skipped. When the container is unmounted this is a no-op.
func (t *Tracker) HandleScroll() {
	if t.container == nil {
		return
	}
	offset, ok := t.container.ScrollTop()
	if !ok {
		return
	}

	if offset < t.topThreshold {
		t.setActive(TopSentinel)
		return
	}

	active := TopSentinel
	for _, s := range t.sections {
		if s.ID == TopSentinel {
			continue
		}
		top, ok := t.container.HeadingTop(s.ID)
		if !ok {
			continue
		}
		// Keep overwriting: the last qualifying section in document order
		// wins, i.e. the last heading the reader has scrolled past.
		if top <= t.qualifyOffset {
			active = s.ID
		}
	}
	t.setActive(active)
}

// ScrollToSection scrolls the container to the given section. The sentinel
// scrolls to offset zero; any other id scrolls its heading into view. The
// active section is not set here: the resulting scroll motion feeds back
// through HandleScroll, which converges once the motion settles. Missing
// container or heading is a silent no-op.
func (t *Tracker) ScrollToSection(id string) {
	if t.container == nil {
		return
	}
	if id == TopSentinel {
		t.container.ScrollTo(0)
		return
	}
	t.container.ScrollIntoView(id)
}

func (t *Tracker) setActive(id string) {
	if id == t.active {
		return
	}
	t.active = id
	if t.onChange != nil {
		t.onChange(id)
	}
}
