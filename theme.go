package omzthemes

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Theme is a single entry of the themes catalog.
type Theme struct {
	Name            string `json:"name"`
	PreviewImageURL string `json:"preview_image_url"`
	SourceFileURL   string `json:"source_file_url,omitempty"`
}

// Validate returns an error if the theme contains invalid fields.
func (t *Theme) Validate() error {
	c := Candidate(*t)
	return c.Validate()
}

// trailingRemark matches a parenthetical at the end of a theme link text,
// e.g. "Agnoster (screenshot)".
var trailingRemark = regexp.MustCompile(`\s*\(.*\)\s*$`)

// CleanName trims a theme link text and strips one trailing parenthetical.
// Parentheticals that are not at the end of the text are preserved.
func CleanName(text string) string {
	name := strings.TrimSpace(text)
	name = trailingRemark.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// Candidate holds whatever a single candidate block yielded.
// Any field may be empty.
type Candidate struct {
	Name            string
	PreviewImageURL string
	SourceFileURL   string
}

// HasName reports whether a theme link supplied a name.
func (c *Candidate) HasName() bool {
	return c.Name != ""
}

// HasPreview reports whether a usable preview image was found.
func (c *Candidate) HasPreview() bool {
	return c.PreviewImageURL != ""
}

// WellFormedName reports whether the name looks like a theme name rather
// than a stray character or leaked markup.
func (c *Candidate) WellFormedName() bool {
	name := strings.TrimSpace(c.Name)
	return utf8.RuneCountInString(name) > 1 && !strings.HasPrefix(name, "<")
}

// Validate returns an EINVALID error naming the first admission rule the
// candidate fails. Uniqueness is checked by Catalog.
func (c *Candidate) Validate() error {
	switch {
	case !c.HasName():
		return Errorf(EINVALID, "theme name required")
	case !c.HasPreview():
		return Errorf(EINVALID, "theme %q has no preview image", c.Name)
	case !c.WellFormedName():
		return Errorf(EINVALID, "theme name %q is malformed", c.Name)
	}
	return nil
}

// Catalog accumulates admitted themes in order, keyed by exact name.
// The zero value is ready to use. A Catalog is not safe for concurrent use.
type Catalog struct {
	themes []*Theme
	seen   map[string]struct{}
}

// Admit validates c and appends it unless a theme with the same name was
// admitted before. The first occurrence of a name always wins.
func (c *Catalog) Admit(cand Candidate) error {
	if err := cand.Validate(); err != nil {
		return err
	}
	if c.Seen(cand.Name) {
		return Errorf(ECONFLICT, "duplicate theme %q", cand.Name)
	}
	if c.seen == nil {
		c.seen = make(map[string]struct{})
	}
	c.seen[cand.Name] = struct{}{}
	c.themes = append(c.themes, &Theme{
		Name:            cand.Name,
		PreviewImageURL: cand.PreviewImageURL,
		SourceFileURL:   cand.SourceFileURL,
	})
	return nil
}

// Seen returns true if a theme with the given name has been admitted.
func (c *Catalog) Seen(name string) bool {
	_, ok := c.seen[name]
	return ok
}

// Len returns the number of admitted themes.
func (c *Catalog) Len() int {
	return len(c.themes)
}

// Themes returns the admitted themes in admission order. Never nil.
func (c *Catalog) Themes() []*Theme {
	if c.themes == nil {
		return []*Theme{}
	}
	return c.themes
}
