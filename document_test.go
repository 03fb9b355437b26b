package sitesearch_test

import (
	"testing"

	"github.com/fwojciec/sitesearch"
	"github.com/stretchr/testify/assert"
)

func TestDocumentField(t *testing.T) {
	t.Parallel()

	doc := &sitesearch.Document{
		Title:     "Install Foo",
		Text:      "foo",
		Component: "component-a",
		Version:   "2.0",
		Name:      "install-foo",
		Keyword:   "install, foo",
	}

	assert.Equal(t, "Install Foo", doc.Field("title"))
	assert.Equal(t, "foo", doc.Field("text"))
	assert.Equal(t, "component-a", doc.Field("component"))
	assert.Equal(t, "2.0", doc.Field("version"))
	assert.Equal(t, "install-foo", doc.Field("name"))
	assert.Equal(t, "install, foo", doc.Field("keyword"))
	assert.Empty(t, doc.Field("unknown"))
}

func TestDocumentSectionByID(t *testing.T) {
	t.Parallel()

	doc := &sitesearch.Document{
		Titles: []sitesearch.SectionTitle{
			{Text: "Where to begin", Hash: "where-to-begin", ID: 1},
			{Text: "Where_to_begin", Hash: "where-to-begin", ID: 2},
		},
	}

	section := doc.SectionByID(2)
	if assert.NotNil(t, section) {
		assert.Equal(t, "Where_to_begin", section.Text)
	}
	assert.Nil(t, doc.SectionByID(3))
}
