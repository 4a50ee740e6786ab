// Package goquery implements the themes page extractor on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/omzthemes"
	"golang.org/x/net/html"
)

const (
	// DefaultBaseURL is the origin used to resolve relative links on the wiki.
	DefaultBaseURL = "https://github.com"

	// ContentSelector identifies the rendered wiki body.
	ContentSelector = "div#wiki-body"

	// ThemeLinkMarker identifies links pointing at theme source files.
	ThemeLinkMarker = ".zsh-theme"
)

// Ensure Extractor implements omzthemes.Extractor at compile time.
var _ omzthemes.Extractor = (*Extractor)(nil)

// Extractor derives themes from the Oh My Zsh themes wiki page.
// Each paragraph of the wiki body is treated as one candidate theme entry.
type Extractor struct {
	baseURL string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithBaseURL sets the origin used to resolve relative links.
// Defaults to DefaultBaseURL if not specified.
func WithBaseURL(baseURL string) Option {
	return func(e *Extractor) {
		e.baseURL = baseURL
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses raw HTML and returns the themes found in it.
func (e *Extractor) Extract(rawHTML string) (*omzthemes.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, omzthemes.Errorf(omzthemes.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, omzthemes.Errorf(omzthemes.EINVALID, "failed to parse HTML: %v", err)
	}

	return e.ExtractDocument(doc)
}

// ExtractNode runs the extraction on an already parsed document tree.
func (e *Extractor) ExtractNode(root *html.Node) (*omzthemes.ExtractResult, error) {
	if root == nil {
		return nil, omzthemes.Errorf(omzthemes.EINVALID, "nil document")
	}
	return e.ExtractDocument(goquery.NewDocumentFromNode(root))
}

// ExtractDocument locates the content region, selects candidate blocks and
// admits every block that yields a complete, well-formed, unique theme.
// Returns ENOTFOUND if the document has no content region.
func (e *Extractor) ExtractDocument(doc *goquery.Document) (*omzthemes.ExtractResult, error) {
	base, err := url.Parse(e.baseURL)
	if err != nil {
		return nil, omzthemes.Errorf(omzthemes.EINVALID, "invalid base URL: %v", err)
	}

	region := doc.Find(ContentSelector).First()
	if region.Length() == 0 {
		return nil, omzthemes.Errorf(omzthemes.ENOTFOUND, "content region %q not found", ContentSelector)
	}

	blocks, fallback := candidateBlocks(region)
	result := &omzthemes.ExtractResult{
		Candidates: blocks.Length(),
		Fallback:   fallback,
	}

	var catalog omzthemes.Catalog
	blocks.Each(func(i int, block *goquery.Selection) {
		cand := scanBlock(base, block)
		if err := catalog.Admit(cand); err != nil {
			result.Rejected = append(result.Rejected, omzthemes.Rejection{
				Index: i,
				Name:  cand.Name,
				Err:   err,
			})
		}
	})

	result.Themes = catalog.Themes()
	return result, nil
}

// candidateBlocks returns the paragraphs directly under the content region.
// The wiki does not always render them as direct children, so when there
// are none every nested paragraph is used and fallback is true.
func candidateBlocks(region *goquery.Selection) (blocks *goquery.Selection, fallback bool) {
	blocks = region.ChildrenFiltered("p")
	if blocks.Length() > 0 {
		return blocks, false
	}
	return region.Find("p"), true
}

// scanBlock derives a candidate from a single paragraph.
func scanBlock(base *url.URL, block *goquery.Selection) omzthemes.Candidate {
	var cand omzthemes.Candidate

	link := block.Find("a[href]").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		return strings.Contains(href, ThemeLinkMarker)
	}).First()
	if link.Length() > 0 {
		href, _ := link.Attr("href")
		cand.SourceFileURL = resolveURL(base, href)
		cand.Name = omzthemes.CleanName(link.Text())
	}

	if img := block.Find("img").First(); img.Length() > 0 {
		cand.PreviewImageURL = imageURL(base, img)
	}

	return cand
}

// imageURL returns the absolute preview URL of an image, preferring src and
// falling back to the lazy-load data-src attribute.
func imageURL(base *url.URL, img *goquery.Selection) string {
	src := strings.TrimSpace(img.AttrOr("src", ""))
	if src == "" {
		src = strings.TrimSpace(img.AttrOr("data-src", ""))
	}
	if src == "" {
		return ""
	}
	return resolveURL(base, src)
}

// resolveURL resolves href against base. An href that already names its
// scheme is returned verbatim. Returns empty string if a relative href
// cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if isAbsolute(href) {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// schemePrefix matches the scheme of an absolute URL (RFC 3986 section 3.1).
var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// isAbsolute reports whether s already carries a URL scheme.
// Protocol-relative references have none and are resolved against the base.
func isAbsolute(s string) bool {
	return schemePrefix.MatchString(s)
}
