package omzthemes

// Rejection records a candidate block that was not admitted.
type Rejection struct {
	// Index is the zero-based position of the block among the candidates.
	Index int
	Name  string
	Err   error
}

// ExtractResult holds the outcome of one extraction pass.
type ExtractResult struct {
	// Themes are the admitted themes in document order.
	Themes []*Theme

	// Candidates is the number of candidate blocks examined.
	Candidates int

	// Fallback is true when no direct-child blocks were found and the
	// descendant-wide query was used instead.
	Fallback bool

	Rejected []Rejection
}

// StructureDrift reports whether candidate blocks were found but none of
// them produced a theme. This usually means the page markup changed.
func (r *ExtractResult) StructureDrift() bool {
	return r.Candidates > 0 && len(r.Themes) == 0
}

// Extractor derives themes from the HTML of the themes page.
type Extractor interface {
	// Extract parses raw HTML and returns the admitted themes.
	// Returns ENOTFOUND if the page has no main content region.
	Extract(html string) (*ExtractResult, error)
}
