package jalc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/MnacsM/papnt/internal/record"
)

func TestMapResponse_LocalePreference(t *testing.T) {
	meta := Metadata{
		TitleList: []Title{
			{Lang: "en", Title: "English Title"},
			{Lang: "ja", Title: "日本語タイトル"},
		},
		CreatorList: []Creator{
			{Names: []CreatorName{
				{Lang: "en", FirstName: "Yamada", LastName: "Taro"},
				{Lang: "ja", FirstName: "山田", LastName: "太郎"},
			}},
		},
		JournalTitleList: []JournalTitle{
			{Lang: "en", Type: "full", Name: "Journal of Tests"},
			{Lang: "ja", Type: "full", Name: "試験学会誌"},
			{Lang: "ja", Type: "abbreviation", Name: "試験誌"},
		},
		PublisherList: []Publisher{
			{Lang: "en", Name: "Test Society"},
			{Lang: "ja", Name: "試験学会"},
		},
	}

	rec := MapResponse("10.1234/jalc.1", meta)

	if rec.Title[0] != "日本語タイトル" {
		t.Errorf("Title = %q, want Japanese variant", rec.Title[0])
	}
	// JaLC's first_name carries the family name.
	want := record.Person{Family: "山田", Given: "太郎"}
	if !reflect.DeepEqual(rec.Authors[0], want) {
		t.Errorf("Authors[0] = %+v, want %+v", rec.Authors[0], want)
	}
	if rec.ContainerTitle[0] != "試験学会誌" {
		t.Errorf("ContainerTitle = %q, want Japanese full title", rec.ContainerTitle[0])
	}
	if rec.Publisher != "試験学会" {
		t.Errorf("Publisher = %q, want Japanese variant", rec.Publisher)
	}
}

func TestMapResponse_EnglishFallback(t *testing.T) {
	meta := Metadata{
		TitleList: []Title{{Lang: "en", Title: "English Only"}},
		CreatorList: []Creator{
			{Names: []CreatorName{{Lang: "en", FirstName: "Suzuki", LastName: "Hanako"}}},
		},
	}
	rec := MapResponse("10.1234/jalc.2", meta)
	if rec.Title[0] != "English Only" {
		t.Errorf("Title = %q, want English fallback", rec.Title[0])
	}
	if rec.Authors[0].Family != "Suzuki" {
		t.Errorf("Authors[0] = %+v", rec.Authors[0])
	}
}

func TestMapResponse_PageAndDate(t *testing.T) {
	tests := []struct {
		name        string
		first, last string
		want        string
	}{
		{"both endpoints", "10", "25", "10–25"},
		{"first only", "10", "", "10"},
		{"absent", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := MapResponse("10.1/x", Metadata{FirstPage: tt.first, LastPage: tt.last})
			if rec.Page != tt.want {
				t.Errorf("Page = %q, want %q", rec.Page, tt.want)
			}
		})
	}

	rec := MapResponse("10.1/x", Metadata{Date: "2022-11-05"})
	wantDate := &record.Date{Year: 2022, Month: 11, Day: 5}
	if !reflect.DeepEqual(rec.Published, wantDate) {
		t.Errorf("Published = %+v, want %+v", rec.Published, wantDate)
	}

	rec = MapResponse("10.1/x", Metadata{Date: "unparseable"})
	if rec.Published != nil {
		t.Errorf("Published = %+v, want nil for unparseable date", rec.Published)
	}
}

func TestArticleType(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"pub", "journal-article"},
		{"dataset", "dataset"},
		{"book", "book"},
		{"conference-paper", "proceedings-article"},
		{"poster", "posted-content"},
		{"something-else", "article"},
		{"", "article"},
	}
	for _, tt := range tests {
		if got := articleType(tt.raw); got != tt.want {
			t.Errorf("articleType(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestClientLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dois/10.1234/found":
			w.Write([]byte(`{"data":{"title_list":[{"lang":"ja","title":"タイトル"}],"article_type":"pub"}}`))
		case "/dois/10.1234/empty":
			w.Write([]byte(`{"data":{}}`))
		case "/dois/10.1234/broken":
			w.Write([]byte(`{"data":`))
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(1000))
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		meta, err := c.Lookup(ctx, "10.1234/found")
		if err != nil {
			t.Fatalf("Lookup() error = %v", err)
		}
		if meta.TitleList[0].Title != "タイトル" {
			t.Errorf("TitleList = %+v", meta.TitleList)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := c.Lookup(ctx, "10.1234/empty")
		if !record.IsNotFound(err) {
			t.Errorf("Lookup() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := c.Lookup(ctx, "10.1234/broken")
		if !errors.Is(err, record.ErrMalformedResponse) {
			t.Errorf("Lookup() error = %v, want ErrMalformedResponse", err)
		}
	})

	t.Run("http failure", func(t *testing.T) {
		_, err := c.Lookup(ctx, "10.1234/gone")
		var upstream *record.UpstreamError
		if !errors.As(err, &upstream) || upstream.Status != http.StatusNotFound {
			t.Errorf("Lookup() error = %v, want UpstreamError with status 404", err)
		}
	})
}
