package contract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidRequest is wrapped by every request validation failure.
var ErrInvalidRequest = errors.New("invalid request")

var datePattern = regexp.MustCompile(`^\d{8}$`)

// notBlank rejects strings made only of whitespace. Empty values are left
// to validation.Required.
var notBlank = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return errors.New("must not be blank")
	}
	return nil
})

// between requires an int in [lo, hi]. Zero is rejected when lo > 0.
func between(lo, hi int) []validation.Rule {
	msg := fmt.Sprintf("must be between %d and %d", lo, hi)
	rules := []validation.Rule{validation.Min(lo).Error(msg), validation.Max(hi).Error(msg)}
	if lo > 0 {
		rules = append([]validation.Rule{validation.Required.Error(msg)}, rules...)
	}
	return rules
}

var yyyymmdd = []validation.Rule{
	validation.Required,
	validation.Match(datePattern).Error("must be in YYYYMMDD format"),
}

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}

// SearchLegislationRequest searches consolidated legislation.
type SearchLegislationRequest struct {
	Query  string `json:"query"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

func NewSearchLegislationRequest() SearchLegislationRequest {
	return SearchLegislationRequest{Limit: 10}
}

func (r SearchLegislationRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Required, notBlank, validation.RuneLength(1, 500)),
		validation.Field(&r.Limit, between(1, 100)...),
		validation.Field(&r.Offset, validation.Min(0).Error("must be non-negative")),
	))
}

// GetLawRequest fetches one consolidated law.
type GetLawRequest struct {
	LawID           string `json:"law_id"`
	IncludeMetadata bool   `json:"include_metadata"`
	IncludeAnalysis bool   `json:"include_analysis"`
	IncludeFullText bool   `json:"include_full_text"`
}

func NewGetLawRequest() GetLawRequest {
	return GetLawRequest{IncludeMetadata: true}
}

func (r GetLawRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.LawID, validation.Required, notBlank),
	))
}

type GetLawStructureRequest struct {
	LawID string `json:"law_id"`
}

func (r GetLawStructureRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.LawID, validation.Required, notBlank),
	))
}

// SummaryRequest asks for a dated BOE or BORME summary.
type SummaryRequest struct {
	Date     string `json:"date"`
	MaxItems int    `json:"max_items"`
}

func NewSummaryRequest() SummaryRequest {
	return SummaryRequest{MaxItems: 50}
}

func (r SummaryRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Date, yyyymmdd...),
		validation.Field(&r.MaxItems, between(1, 1000)...),
	))
}

type SearchRecentRequest struct {
	DaysBack    int      `json:"days_back"`
	SearchTerms []string `json:"search_terms"`
}

func NewSearchRecentRequest() SearchRecentRequest {
	return SearchRecentRequest{DaysBack: 7}
}

func (r SearchRecentRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.DaysBack, between(1, 30)...),
		validation.Field(&r.SearchTerms,
			validation.Required.Error("at least one search term is required"),
			validation.Each(validation.Required, notBlank),
		),
	))
}

type GetDepartmentsRequest struct {
	SearchTerm string `json:"search_term"`
	Limit      int    `json:"limit"`
}

func NewGetDepartmentsRequest() GetDepartmentsRequest {
	return GetDepartmentsRequest{Limit: 100}
}

func (r GetDepartmentsRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Limit, between(1, 1000)...),
	))
}

// GetLegalRangesRequest carries a date that is echoed back; the upstream
// ranges table is not dated.
type GetLegalRangesRequest struct {
	Date  string `json:"date"`
	Limit int    `json:"limit"`
}

func NewGetLegalRangesRequest() GetLegalRangesRequest {
	return GetLegalRangesRequest{Limit: 100}
}

func (r GetLegalRangesRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Date, yyyymmdd...),
		validation.Field(&r.Limit, between(1, 1000)...),
	))
}

type GetCodeDescriptionRequest struct {
	Code string `json:"code"`
}

func (r GetCodeDescriptionRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required, notBlank),
	))
}

type GetCodeDescriptionsRequest struct {
	Codes []string `json:"codes"`
}

func (r GetCodeDescriptionsRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Codes,
			validation.Required.Error("at least one code is required"),
			validation.Each(validation.Required, notBlank),
		),
	))
}

type SearchAuxiliaryRequest struct {
	Query string `json:"query"`
}

func (r SearchAuxiliaryRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Required, notBlank, validation.RuneLength(1, 200)),
	))
}
