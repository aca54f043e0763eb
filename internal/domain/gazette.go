package domain

import "time"

// SummaryItem is one entry of a daily BOE or BORME summary.
type SummaryItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	URL          string `json:"url"`
	Section      string `json:"section"`
	Issuer       string `json:"issuer"`
	Pages        string `json:"pages"`
	DocumentType string `json:"document_type"`
}

// AuxiliaryItem is a row of one of the lookup tables (departments, legal
// ranges, arbitrary codes).
type AuxiliaryItem struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

const (
	GazetteBOE   = "BOE"
	GazetteBORME = "BORME"
)

// DigestStats holds statistics about a digest run. Tracked counts the
// gazette's items still remembered as published once the run ends.
type DigestStats struct {
	Gazette   string
	Date      string
	Fetched   int
	Skipped   int
	Published int
	Errors    int
	Tracked   int
	Duration  time.Duration
}

// GazetteMessage announces a newly published gazette item downstream.
type GazetteMessage struct {
	ID        string      `json:"id"`
	Gazette   string      `json:"gazette"`
	Date      string      `json:"date"`
	Item      SummaryItem `json:"item"`
	Timestamp time.Time   `json:"timestamp"`
}
