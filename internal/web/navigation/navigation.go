// Package navigation builds the page title, active menu section and
// breadcrumb trail passed to the layout template.
package navigation

// Crumb is one breadcrumb link. The last crumb of a trail is active.
type Crumb struct {
	Title  string
	URL    string
	Active bool
}

// Page is the navigation state of a rendered page.
type Page struct {
	Title   string
	Section string
	Crumbs  []Crumb
}

// New returns a Page with a Home crumb pointing at homeURL.
func New(title, section, homeURL string) *Page {
	p := &Page{Title: title, Section: section}

	return p.Crumb("Home", homeURL)
}

// Crumb appends a breadcrumb and marks it as the active one.
func (p *Page) Crumb(title, url string) *Page {
	for i := range p.Crumbs {
		p.Crumbs[i].Active = false
	}

	p.Crumbs = append(p.Crumbs, Crumb{Title: title, URL: url, Active: true})

	return p
}

// InSection reports whether section is the active menu section.
func (p *Page) InSection(section string) bool {
	return p.Section == section
}
