package forms

import (
	"errors"
	"fmt"

	"nexus/admin/internal/content"
)

var ErrUnknownCollection = errors.New("unknown collection")

// Editor owns the admin session's document plus the editable projection of
// it: one flat field set for the scalar sections and one row arena per
// collection. All mutation of the document funnels through CollectAll.
type Editor struct {
	doc    *content.Document
	fields Fields
	rows   map[string]RowList
}

func NewEditor(doc *content.Document) *Editor {
	e := &Editor{doc: content.Normalize(doc)}
	e.PopulateAll()
	return e
}

// Document returns the underlying document. Callers that need in-flight
// edits reflected must CollectAll first.
func (e *Editor) Document() *content.Document {
	return e.doc
}

func (e *Editor) Fields() Fields {
	return e.fields
}

func (e *Editor) Rows() map[string]RowList {
	return e.rows
}

// SetDocument replaces the document wholesale and rebuilds the editable
// state. Any uncollected edits are discarded, so callers collect first.
func (e *Editor) SetDocument(doc *content.Document) {
	e.doc = content.Normalize(doc)
	e.PopulateAll()
}

// PopulateAll projects the document onto the editable fields and rows.
// Idempotent: populating twice from the same document yields the same state.
func (e *Editor) PopulateAll() {
	existing := e.rows
	e.fields = Fields{}
	populateSettings(e.doc.Settings, e.fields)
	populateHero(e.doc.Hero, e.fields)
	populateCountdown(e.doc.Countdown, e.fields)
	populateAbout(e.doc.About, e.fields)
	populateProjectsMeta(e.doc.Projects, e.fields)
	populateContact(e.doc.Contact, e.fields)

	e.rows = map[string]RowList{
		ColServices: populateServices(e.doc.Services, existing[ColServices]),
		ColFeatures: populateFeatures(e.doc.About.Features, existing[ColFeatures]),
		ColTeam:     populateTeam(e.doc.Team, existing[ColTeam]),
		ColBlog:     populateBlog(e.doc.Blog, existing[ColBlog]),
		ColChannels: populateChannels(e.doc.Contact.Channels, existing[ColChannels]),
		ColProjects: populateProjects(e.doc.Projects.Items, existing[ColProjects]),
	}
}

// CollectAll reads every editable field and row back into the document and
// returns it. Idempotent, and the sole path by which edited UI state
// re-enters the document.
func (e *Editor) CollectAll() *content.Document {
	collectSettings(e.fields, e.doc.Settings)
	collectHero(e.fields, e.doc.Hero)
	collectCountdown(e.fields, e.doc.Countdown)
	collectAbout(e.fields, e.doc.About)
	collectProjectsMeta(e.fields, e.doc.Projects)
	collectContact(e.fields, e.doc.Contact)

	e.doc.Services = collectServices(e.rows[ColServices])
	e.doc.About.Features = collectFeatures(e.rows[ColFeatures])
	e.doc.Team = collectTeam(e.rows[ColTeam])
	e.doc.Blog = collectBlog(e.rows[ColBlog])
	e.doc.Contact.Channels = collectChannels(e.rows[ColChannels])
	e.doc.Projects.Items = collectProjects(e.rows[ColProjects], e.doc.Projects.Items)
	return e.doc
}

// Apply overlays submitted UI state onto the editor. Scalar fields replace
// matching entries; collection rows are merged by key so hidden per-row
// state survives. Call before CollectAll when handling a save.
func (e *Editor) Apply(fields Fields, rows map[string]RowList) {
	for id, value := range fields {
		e.fields[id] = value
	}
	for name, posted := range rows {
		current, ok := e.rows[name]
		if !ok {
			continue
		}
		e.rows[name] = current.merge(posted)
	}
}

// AddRow collects current edits, appends a new element with defaults to the
// collection, and re-populates. Returns the new element's row.
func (e *Editor) AddRow(collection string) (Row, error) {
	e.CollectAll()
	switch collection {
	case ColServices:
		e.doc.Services = append(e.doc.Services, defaultService())
	case ColFeatures:
		e.doc.About.Features = append(e.doc.About.Features, defaultFeature())
	case ColTeam:
		e.doc.Team = append(e.doc.Team, defaultMember())
	case ColBlog:
		e.doc.Blog = append(e.doc.Blog, defaultPost())
	case ColChannels:
		e.doc.Contact.Channels = append(e.doc.Contact.Channels, defaultChannel())
	case ColProjects:
		e.doc.Projects.Items = append(e.doc.Projects.Items, defaultProject())
	default:
		return Row{}, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	e.PopulateAll()
	rows := e.rows[collection]
	return rows[len(rows)-1], nil
}

// RemoveRow collects current edits first, then removes the element whose row
// carries the given key, then re-populates. Collect-before-splice: removing
// row k with an unsaved edit on row k+1 must preserve that edit.
func (e *Editor) RemoveRow(collection, key string) error {
	rows, ok := e.rows[collection]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	i := rows.index(key)
	if i < 0 {
		return fmt.Errorf("row %q not found in %s", key, collection)
	}

	e.CollectAll()

	switch collection {
	case ColServices:
		e.doc.Services = append(e.doc.Services[:i], e.doc.Services[i+1:]...)
	case ColFeatures:
		e.doc.About.Features = append(e.doc.About.Features[:i], e.doc.About.Features[i+1:]...)
	case ColTeam:
		e.doc.Team = append(e.doc.Team[:i], e.doc.Team[i+1:]...)
	case ColBlog:
		e.doc.Blog = append(e.doc.Blog[:i], e.doc.Blog[i+1:]...)
	case ColChannels:
		e.doc.Contact.Channels = append(e.doc.Contact.Channels[:i], e.doc.Contact.Channels[i+1:]...)
	case ColProjects:
		e.doc.Projects.Items = append(e.doc.Projects.Items[:i], e.doc.Projects.Items[i+1:]...)
	}

	e.rows[collection] = append(rows[:i], rows[i+1:]...)
	e.PopulateAll()
	return nil
}
