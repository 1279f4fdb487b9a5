// Package jalc fetches DOI metadata from the Japan Link Center API and
// maps it into canonical records, preferring Japanese-language field
// variants with English fallback.
package jalc

// Metadata is the "data" payload of a JaLC DOI response. Every name-like
// field arrives as a list of language-tagged variants.
type Metadata struct {
	TitleList        []Title        `json:"title_list"`
	CreatorList      []Creator      `json:"creator_list"`
	Date             string         `json:"date"` // YYYY-MM-DD
	JournalTitleList []JournalTitle `json:"journal_title_name_list"`
	PublisherList    []Publisher    `json:"publisher_list"`
	FirstPage        string         `json:"first_page"`
	LastPage         string         `json:"last_page"`
	Volume           string         `json:"volume"`
	Issue            string         `json:"issue"`
	ArticleType      string         `json:"article_type"`
}

// Title is one language-tagged title variant.
type Title struct {
	Lang  string `json:"lang"`
	Title string `json:"title"`
}

// Creator is one author with language-tagged name variants.
type Creator struct {
	Names []CreatorName `json:"names"`
}

// CreatorName is one language-tagged name variant. In the JaLC schema the
// first_name field carries the family name and last_name the given name.
type CreatorName struct {
	Lang      string `json:"lang"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// JournalTitle is one language-tagged venue-name variant. Type
// distinguishes full titles from abbreviations.
type JournalTitle struct {
	Lang string `json:"lang"`
	Type string `json:"type"`
	Name string `json:"journal_title_name"`
}

// Publisher is one language-tagged publisher-name variant.
type Publisher struct {
	Lang string `json:"lang"`
	Name string `json:"publisher_name"`
}
