package scrape

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const samplePage = `
<html>
  <body>
    <form>
      <select id="abundance_dataset" name="abundance_dataset">
        <option value="">-- select a dataset --</option>
        <option value="1">Dataset One</option>
        <option value="2">Dataset Two</option>
      </select>
      <select id="other"><option value="x">Other</option></select>
    </form>
  </body>
</html>`

func parsePage(t *testing.T, page string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	return doc
}

func TestSelectOptions(t *testing.T) {
	doc := parsePage(t, samplePage)

	options := SelectOptions(doc, "abundance_dataset")
	if len(options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(options))
	}

	if options[0].Value != "" || options[0].Text != "-- select a dataset --" {
		t.Errorf("unexpected placeholder option: %+v", options[0])
	}
	if options[1].Text != "Dataset One" || options[2].Text != "Dataset Two" {
		t.Errorf("unexpected option texts: %+v", options[1:])
	}
}

func TestSelectOptionsMissing(t *testing.T) {
	doc := parsePage(t, "<html><body><p>No select here</p></body></html>")

	if options := SelectOptions(doc, "abundance_dataset"); options != nil {
		t.Errorf("expected nil for missing select, got %+v", options)
	}
}

func TestSelectOptionsIgnoresOtherSelects(t *testing.T) {
	doc := parsePage(t, samplePage)

	options := SelectOptions(doc, "other")
	if len(options) != 1 || options[0].Text != "Other" {
		t.Errorf("unexpected options for #other: %+v", options)
	}
}

func TestElementByID(t *testing.T) {
	doc := parsePage(t, samplePage)

	if n := ElementByID(doc, "select", "abundance_dataset"); n == nil {
		t.Error("expected to find select#abundance_dataset")
	}
	if n := ElementByID(doc, "div", "abundance_dataset"); n != nil {
		t.Error("tag name should be part of the match")
	}
}
