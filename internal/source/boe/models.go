package boe

// Wire models for the BOE open-data API. Field names follow the upstream
// JSON; encoding/json matches them case-insensitively and ignores extras.

type legislationDoc struct {
	ID         string        `json:"id"`
	Title      string        `json:"titulo"`
	Date       string        `json:"fecha"`
	URL        string        `json:"url"`
	NormType   string        `json:"tipo_norma"`
	Number     string        `json:"numero"`
	Department string        `json:"departamento"`
	Range      string        `json:"rango"`
	IsActive   bool          `json:"vigente"`
	Text       string        `json:"texto"`
	Structure  *structureDoc `json:"estructura"`
}

type structureDoc struct {
	Titles   []headingDoc `json:"titulos"`
	Chapters []headingDoc `json:"capitulos"`
	Articles []articleDoc `json:"articulos"`
}

type headingDoc struct {
	Number string `json:"numero"`
	Title  string `json:"titulo"`
}

type articleDoc struct {
	Number  string `json:"numero"`
	Title   string `json:"titulo"`
	Content string `json:"contenido"`
}

type summaryDoc struct {
	ID           string `json:"id"`
	Title        string `json:"titulo"`
	Date         string `json:"fecha"`
	URL          string `json:"url"`
	Section      string `json:"seccion"`
	Issuer       string `json:"emisor"`
	Pages        string `json:"paginas"`
	DocumentType string `json:"tipo_documento"`
}

type auxiliaryDoc struct {
	Code        string `json:"codigo"`
	Description string `json:"descripcion"`
	Type        string `json:"tipo"`
}
