package domain

// Legislation is a consolidated norm as returned by the BOE API.
type Legislation struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Date       string     `json:"date"`
	URL        string     `json:"url"`
	NormType   string     `json:"norm_type"`
	Number     string     `json:"number"`
	Department string     `json:"department"`
	Range      string     `json:"range"`
	IsActive   bool       `json:"is_active"`
	Text       string     `json:"text"`
	Structure  *Structure `json:"structure"`
}

// Structure is the flat outline of a norm. Order follows the upstream response.
type Structure struct {
	Titles   []Heading `json:"titles"`
	Chapters []Heading `json:"chapters"`
	Articles []Article `json:"articles"`
}

type Heading struct {
	Number string `json:"number"`
	Title  string `json:"title"`
}

type Article struct {
	Number  string `json:"number"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Complexity is the total number of titles, chapters and articles.
// A nil structure has complexity 0.
func (s *Structure) Complexity() int {
	if s == nil {
		return 0
	}
	return len(s.Titles) + len(s.Chapters) + len(s.Articles)
}

// LawOptions selects the optional parts requested for a single law.
type LawOptions struct {
	IncludeMetadata bool
	IncludeAnalysis bool
	IncludeFullText bool
}
