package sections

// Section is one navigable heading within a content page. Sections are
// built when a page's content is loaded and are immutable afterwards.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// TopSentinel is the reserved id of the synthetic top-of-page section that
// leads every page's section list. Content headings never use this id.
const TopSentinel = "__top__"

// WithTop returns the section list with the top-of-page sentinel prepended.
// The title is the label shown for the scroll-to-top entry in the sidebar.
// Lists that already start with the sentinel are returned as-is.
func WithTop(title string, secs []Section) []Section {
	if len(secs) > 0 && secs[0].ID == TopSentinel {
		return secs
	}
	out := make([]Section, 0, len(secs)+1)
	out = append(out, Section{ID: TopSentinel, Title: title})
	return append(out, secs...)
}
