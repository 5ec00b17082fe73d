package sections

import (
	"reflect"
	"testing"
)

// fakeContainer is a scriptable Container for tests.
type fakeContainer struct {
	mounted    bool
	scrollTop  float64
	headings   map[string]float64
	scrolledTo []float64
	viewed     []string
}

func (c *fakeContainer) ScrollTop() (float64, bool) {
	if !c.mounted {
		return 0, false
	}
	return c.scrollTop, true
}

func (c *fakeContainer) HeadingTop(id string) (float64, bool) {
	top, ok := c.headings[id]
	return top, ok && c.mounted
}

func (c *fakeContainer) ScrollTo(offset float64) {
	if !c.mounted {
		return
	}
	c.scrolledTo = append(c.scrolledTo, offset)
}

func (c *fakeContainer) ScrollIntoView(id string) bool {
	if !c.mounted {
		return false
	}
	if _, ok := c.headings[id]; !ok {
		return false
	}
	c.viewed = append(c.viewed, id)
	return true
}

func pageSections() []Section {
	return WithTop("Introduction", []Section{
		{ID: "setup", Title: "Setup"},
		{ID: "routing", Title: "Routing"},
		{ID: "deploy", Title: "Deploy"},
	})
}

func TestWithTop(t *testing.T) {
	secs := pageSections()
	if secs[0].ID != TopSentinel {
		t.Fatalf("first section = %q, want sentinel", secs[0].ID)
	}
	if len(secs) != 4 {
		t.Fatalf("len = %d, want 4", len(secs))
	}

	// Prepending twice must not duplicate the sentinel.
	again := WithTop("Introduction", secs)
	if !reflect.DeepEqual(again, secs) {
		t.Errorf("WithTop on sentinel-led list changed it: %v", again)
	}
}

func TestNearTopResolvesToSentinel(t *testing.T) {
	c := &fakeContainer{
		mounted:   true,
		scrollTop: 10,
		headings:  map[string]float64{"setup": -500, "routing": 100, "deploy": 800},
	}
	tr := NewTracker(c, pageSections())

	if got := tr.Active(); got != TopSentinel {
		t.Errorf("Active() = %q, want sentinel at offset 10", got)
	}
}

func TestLastQualifyingHeadingWins(t *testing.T) {
	c := &fakeContainer{
		mounted:   true,
		scrollTop: 400,
		headings:  map[string]float64{"setup": -300, "routing": 50, "deploy": 600},
	}
	tr := NewTracker(c, pageSections())

	// setup (-300) and routing (50) both qualify; routing is last in order.
	if got := tr.Active(); got != "routing" {
		t.Errorf("Active() = %q, want %q", got, "routing")
	}
}

func TestHeadingExactlyAtQualifyOffset(t *testing.T) {
	c := &fakeContainer{
		mounted:   true,
		scrollTop: 400,
		headings:  map[string]float64{"setup": DefaultQualifyOffset},
	}
	tr := NewTracker(c, []Section{{ID: TopSentinel}, {ID: "setup"}})

	// Top edge at the offset still qualifies.
	if got := tr.Active(); got != "setup" {
		t.Errorf("Active() = %q, want %q", got, "setup")
	}
}

func TestNoQualifyingHeadingKeepsSentinel(t *testing.T) {
	c := &fakeContainer{
		mounted:   true,
		scrollTop: 400,
		headings:  map[string]float64{"setup": 500, "routing": 900, "deploy": 1400},
	}
	tr := NewTracker(c, pageSections())

	if got := tr.Active(); got != TopSentinel {
		t.Errorf("Active() = %q, want sentinel when nothing qualifies", got)
	}
}

func TestUnrenderedHeadingsAreSkipped(t *testing.T) {
	// routing was computed for another route and is not in the document.
	c := &fakeContainer{
		mounted:   true,
		scrollTop: 400,
		headings:  map[string]float64{"setup": 50},
	}
	tr := NewTracker(c, pageSections())

	if got := tr.Active(); got != "setup" {
		t.Errorf("Active() = %q, want %q", got, "setup")
	}
}

func TestUnmountedContainerIsNoOp(t *testing.T) {
	c := &fakeContainer{mounted: false}
	tr := NewTracker(c, pageSections())

	if got := tr.Active(); got != TopSentinel {
		t.Errorf("Active() = %q, want sentinel before mount", got)
	}

	tr.HandleScroll()
	if got := tr.Active(); got != TopSentinel {
		t.Errorf("Active() = %q, want sentinel after no-op scroll", got)
	}
}

func TestScrollEvaluationTransitions(t *testing.T) {
	c := &fakeContainer{
		mounted:  true,
		headings: map[string]float64{"setup": 300, "routing": 700, "deploy": 1100},
	}
	tr := NewTracker(c, pageSections())

	steps := []struct {
		scrollTop float64
		headings  map[string]float64
		want      string
	}{
		{0, map[string]float64{"setup": 300, "routing": 700, "deploy": 1100}, TopSentinel},
		{49, map[string]float64{"setup": 251, "routing": 651, "deploy": 1051}, TopSentinel},
		{150, map[string]float64{"setup": 150, "routing": 550, "deploy": 950}, "setup"},
		{560, map[string]float64{"setup": -260, "routing": 140, "deploy": 540}, "routing"},
		{1000, map[string]float64{"setup": -700, "routing": -300, "deploy": 100}, "deploy"},
		{20, map[string]float64{"setup": 280, "routing": 680, "deploy": 1080}, TopSentinel},
	}

	for _, step := range steps {
		c.scrollTop = step.scrollTop
		c.headings = step.headings
		tr.HandleScroll()
		if got := tr.Active(); got != step.want {
			t.Errorf("at scrollTop %.0f: Active() = %q, want %q", step.scrollTop, got, step.want)
		}
	}
}

func TestOnChangeFiresOnlyOnTransitions(t *testing.T) {
	c := &fakeContainer{
		mounted:   true,
		scrollTop: 400,
		headings:  map[string]float64{"setup": 50},
	}

	var seen []string
	tr := NewTracker(c, pageSections(), WithOnChange(func(id string) {
		seen = append(seen, id)
	}))

	// Initial evaluation lands on setup.
	tr.HandleScroll() // same position, no transition
	tr.HandleScroll()
	c.scrollTop = 5
	tr.HandleScroll()

	want := []string{"setup", TopSentinel}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("onChange sequence = %v, want %v", seen, want)
	}
	if tr.Active() != TopSentinel {
		t.Errorf("Active() = %q, want sentinel", tr.Active())
	}
}

func TestSetSectionsReevaluates(t *testing.T) {
	c := &fakeContainer{
		mounted:   true,
		scrollTop: 400,
		headings:  map[string]float64{"intro": 100},
	}
	tr := NewTracker(c, pageSections())
	if tr.Active() != TopSentinel {
		t.Fatalf("Active() = %q before section change", tr.Active())
	}

	tr.SetSections(WithTop("Top", []Section{{ID: "intro", Title: "Intro"}}))
	if got := tr.Active(); got != "intro" {
		t.Errorf("Active() = %q after SetSections, want %q", got, "intro")
	}
}

func TestScrollToSectionSentinel(t *testing.T) {
	c := &fakeContainer{
		mounted:   true,
		scrollTop: 400,
		headings:  map[string]float64{"setup": 50},
	}
	tr := NewTracker(c, pageSections())
	before := tr.Active()

	tr.ScrollToSection(TopSentinel)

	if len(c.scrolledTo) != 1 || c.scrolledTo[0] != 0 {
		t.Errorf("scrolledTo = %v, want [0]", c.scrolledTo)
	}
	// ScrollToSection never sets the active section itself.
	if tr.Active() != before {
		t.Errorf("Active() changed to %q during scroll-to", tr.Active())
	}
}

func TestScrollToSectionUnmountedContainer(t *testing.T) {
	tr := NewTracker(&fakeContainer{mounted: false}, pageSections())

	// Must not panic with the container unmounted.
	tr.ScrollToSection(TopSentinel)
	tr.ScrollToSection("setup")
}

func TestScrollToSectionNilContainer(t *testing.T) {
	tr := NewTracker(nil, pageSections())
	tr.ScrollToSection(TopSentinel)
	tr.ScrollToSection("setup")
	tr.HandleScroll()
}

func TestScrollToSectionHeading(t *testing.T) {
	c := &fakeContainer{
		mounted:   true,
		scrollTop: 400,
		headings:  map[string]float64{"setup": 50, "deploy": 900},
	}
	tr := NewTracker(c, pageSections())

	tr.ScrollToSection("deploy")
	if len(c.viewed) != 1 || c.viewed[0] != "deploy" {
		t.Errorf("viewed = %v, want [deploy]", c.viewed)
	}

	// Unrendered heading: silent no-op.
	tr.ScrollToSection("routing")
	if len(c.viewed) != 1 {
		t.Errorf("viewed = %v after scrolling to missing heading", c.viewed)
	}
}

func TestCustomThresholds(t *testing.T) {
	c := &fakeContainer{
		mounted:   true,
		scrollTop: 80,
		headings:  map[string]float64{"setup": 90},
	}
	tr := NewTracker(c, pageSections(), WithThresholds(100, 100))

	// 80 < 100: still counts as top despite the qualifying heading.
	if got := tr.Active(); got != TopSentinel {
		t.Errorf("Active() = %q, want sentinel with raised top threshold", got)
	}

	c.scrollTop = 120
	tr.HandleScroll()
	if got := tr.Active(); got != "setup" {
		t.Errorf("Active() = %q, want %q", got, "setup")
	}
}
