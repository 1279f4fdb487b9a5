package arxiv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/MnacsM/papnt/internal/record"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name    string
		doi     string
		want    string
		wantErr bool
	}{
		{"datacite style", "10.48550/arXiv.2101.00001", "2101.00001", false},
		{"double slash collapsed", "10.48550//arXiv.2101.00001", "2101.00001", false},
		{"old style id", "10.48550/arXiv.math/0211159", "math/0211159", false},
		{"no marker", "10.1000/plain.doi", "", true},
		{"marker without id", "10.48550/arXiv.", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractID(tt.doi)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractID(%q) error = %v, wantErr %v", tt.doi, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractID(%q) = %q, want %q", tt.doi, got, tt.want)
			}
		})
	}
}

func TestIsArxivDOI(t *testing.T) {
	if !IsArxivDOI("10.48550/arXiv.2101.00001") {
		t.Error("IsArxivDOI() = false for arXiv DOI")
	}
	if IsArxivDOI("10.1000/xyz123") {
		t.Error("IsArxivDOI() = true for plain DOI")
	}
}

func TestMapResult(t *testing.T) {
	res := Result{
		Title:     "Deep Learning for Beetles",
		Authors:   []string{"Ada Lovelace", "Jan van der Waals", "Madonna"},
		Published: time.Date(2021, 3, 14, 15, 9, 26, 0, time.UTC),
	}
	rec := MapResult("10.48550/arXiv.2103.01234", res)

	if rec.Type != "journal-article" {
		t.Errorf("Type = %q, want journal-article", rec.Type)
	}
	if rec.ContainerTitle[0] != "arXiv" {
		t.Errorf("ContainerTitle = %v, want [arXiv]", rec.ContainerTitle)
	}
	if rec.Source != record.SourceArxiv {
		t.Errorf("Source = %q", rec.Source)
	}
	wantAuthors := []record.Person{
		{Given: "Ada", Family: "Lovelace"},
		// Whitespace split: multi-word family names land in Given.
		{Given: "Jan van der", Family: "Waals"},
		{Given: "", Family: "Madonna"},
	}
	if !reflect.DeepEqual(rec.Authors, wantAuthors) {
		t.Errorf("Authors = %+v, want %+v", rec.Authors, wantAuthors)
	}
	wantDate := &record.Date{Year: 2021, Month: 3, Day: 14}
	if !reflect.DeepEqual(rec.Published, wantDate) {
		t.Errorf("Published = %+v, want %+v", rec.Published, wantDate)
	}
}

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/2103.01234v1</id>
    <title>Deep Learning
  for Beetles</title>
    <published>2021-03-14T15:09:26Z</published>
    <author><name>Ada Lovelace</name></author>
    <author><name>Grace Hopper</name></author>
  </entry>
</feed>`

const errorFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/api/errors#incorrect_id_format</id>
    <title>Error</title>
  </entry>
</feed>`

func TestClientLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("id_list") {
		case "2103.01234":
			w.Write([]byte(sampleFeed))
		case "bad-id":
			w.Write([]byte(errorFeed))
		default:
			w.Write([]byte(`<feed xmlns="http://www.w3.org/2005/Atom"></feed>`))
		}
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(1000))
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		res, err := c.Lookup(ctx, "2103.01234")
		if err != nil {
			t.Fatalf("Lookup() error = %v", err)
		}
		if res.Title != "Deep Learning for Beetles" {
			t.Errorf("Title = %q", res.Title)
		}
		if len(res.Authors) != 2 || res.Authors[1] != "Grace Hopper" {
			t.Errorf("Authors = %v", res.Authors)
		}
		if res.Published.Year() != 2021 {
			t.Errorf("Published = %v", res.Published)
		}
	})

	t.Run("error entry", func(t *testing.T) {
		_, err := c.Lookup(ctx, "bad-id")
		if !record.IsNotFound(err) {
			t.Errorf("Lookup() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("empty feed", func(t *testing.T) {
		_, err := c.Lookup(ctx, "unknown")
		if !record.IsNotFound(err) {
			t.Errorf("Lookup() error = %v, want ErrNotFound", err)
		}
	})
}
