package render

import "html/template"

// Target is the page being rendered: a set of named containers and the base path
// used to prefix generated links when the site is served from a sub path
type Target interface {
	Container(id string) (Container, bool)
	BasePath() string
}

// Container is a named element of the page whose content can be replaced
type Container interface {
	SetHTML(content template.HTML)
}

// Document is an in memory Target, one per rendered page variant
// it is not safe for concurrent writes, panels are rendered from a single goroutine
type Document struct {
	basePath string
	order    []string
	elements map[string]*Element
}

// Element is a Document container
type Element struct {
	id      string
	content template.HTML
	writes  int
}

// NewDocument creates a document holding only the given containers
func NewDocument(basePath string, containerIDs ...string) *Document {
	doc := &Document{
		basePath: basePath,
		order:    make([]string, 0, len(containerIDs)),
		elements: make(map[string]*Element, len(containerIDs)),
	}

	for _, id := range containerIDs {
		if _, exists := doc.elements[id]; exists {
			continue
		}

		doc.order = append(doc.order, id)
		doc.elements[id] = &Element{id: id}
	}

	return doc
}

func (d *Document) Container(id string) (Container, bool) {
	el, found := d.elements[id]
	if !found {
		return nil, false
	}

	return el, true
}

func (d *Document) BasePath() string {
	return d.basePath
}

// Element returns the concrete element for inspection
func (d *Document) Element(id string) (*Element, bool) {
	el, found := d.elements[id]
	return el, found
}

// Elements returns every element in declaration order
func (d *Document) Elements() []*Element {
	elements := make([]*Element, 0, len(d.order))

	for _, id := range d.order {
		elements = append(elements, d.elements[id])
	}

	return elements
}

func (e *Element) SetHTML(content template.HTML) {
	e.content = content
	e.writes++
}

func (e *Element) ID() string {
	return e.id
}

func (e *Element) HTML() template.HTML {
	return e.content
}

// Writes returns how many times the content has been replaced
func (e *Element) Writes() int {
	return e.writes
}
