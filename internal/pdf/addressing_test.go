package pdf

import "testing"

func TestPageForResultRoundTrip(t *testing.T) {
	report := &SearchReport{
		Query:    "term",
		Filename: "doc.pdf",
		Matches: []SearchMatch{
			{Page: 3, Context: "term on an early page"},
			{Page: 14, Context: "mentions term: twice, with a colon"},
			{Page: 14, Context: "same page again"},
			{Page: 159, Context: "1. looks like a numbered list item with term"},
		},
	}

	rendered := report.Render()

	for i, m := range report.Matches {
		page, err := PageForResult(rendered, i+1)
		if err != nil {
			t.Fatalf("PageForResult(rendered, %d) error = %v", i+1, err)
		}
		if page != m.Page {
			t.Errorf("PageForResult(rendered, %d) = %d, want %d", i+1, page, m.Page)
		}
	}
}

func TestPageForResultIndexOutOfRange(t *testing.T) {
	report := &SearchReport{
		Query:    "term",
		Filename: "doc.pdf",
		Matches: []SearchMatch{
			{Page: 1, Context: "only one match"},
		},
	}

	_, err := PageForResult(report.Render(), 2)
	if err == nil {
		t.Fatal("PageForResult() with out-of-range index should fail")
	}
	if KindOf(err) != KindResultNotFound {
		t.Errorf("error kind = %v, want KindResultNotFound", KindOf(err))
	}
	want := "Result 2 not found. Check search results first."
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestPageForResultNoResultsRendering(t *testing.T) {
	report := &SearchReport{Query: "missing", Filename: "doc.pdf"}

	_, err := PageForResult(report.Render(), 1)
	if err == nil {
		t.Fatal("PageForResult() over a no-results rendering should fail")
	}
	if KindOf(err) != KindResultNotFound {
		t.Errorf("error kind = %v, want KindResultNotFound", KindOf(err))
	}
}

func TestPageForResultGarbageInput(t *testing.T) {
	tests := []struct {
		name     string
		rendered string
	}{
		{"empty string", ""},
		{"unrelated text", "nothing here resembles a result line"},
		{"result line without page marker", "1. no page marker on this line"},
		{"page marker without colon", "1. Page 7 but no colon"},
		{"non-numeric page", "1. Page seven: context"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PageForResult(tt.rendered, 1)
			if err == nil {
				t.Fatal("PageForResult() should fail")
			}
			if KindOf(err) != KindResultNotFound {
				t.Errorf("error kind = %v, want KindResultNotFound", KindOf(err))
			}
		})
	}
}

func TestPageForResultIgnoresLeadingWhitespace(t *testing.T) {
	page, err := PageForResult("   2. Page 42: ...indented context...", 2)
	if err != nil {
		t.Fatalf("PageForResult() error = %v", err)
	}
	if page != 42 {
		t.Errorf("PageForResult() = %d, want 42", page)
	}
}
