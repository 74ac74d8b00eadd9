package model

import "github.com/google/uuid"

type TitleKind string

const (
	KindMovie  TitleKind = "Movie"
	KindSeries TitleKind = "Series"
)

const EmptyTitle string = ""

type CastMember struct {
	Name     string
	Role     string
	PhotoURL string
}

type OTTLink struct {
	Platform string
	URL      string
}

type Movie struct {
	ID          uuid.UUID
	Title       string
	Year        int
	Duration    int
	Description string
	PosterURL   string
	TrailerURL  string
	Language    string
	Kind        TitleKind

	Genres   []string
	Cast     []CastMember
	OTTLinks []OTTLink

	// Cached AI digest of the top-liked reviews. Empty until generated.
	AISummary string
}

type Poster struct {
	Filename string
	Content  []byte

	MovieID string
}

func (p Poster) GetFilename() string {
	return p.Filename
}

func (p Poster) GetContent() []byte {
	return p.Content
}

func (p Poster) GetParent() string {
	return p.MovieID
}

func (p *Poster) NewFromData(content []byte, name string) FileObject {
	return &Poster{
		Content:  content,
		Filename: name,
	}
}

type Banner struct {
	ID       uuid.UUID
	MovieID  uuid.UUID
	ImageURL string
	Headline string
}

type BannerImage struct {
	Filename string
	Content  []byte

	BannerID string
}

func (b BannerImage) GetFilename() string {
	return b.Filename
}

func (b BannerImage) GetContent() []byte {
	return b.Content
}

func (b BannerImage) GetParent() string {
	return b.BannerID
}

func (b *BannerImage) NewFromData(content []byte, name string) FileObject {
	return &BannerImage{
		Content:  content,
		Filename: name,
	}
}
