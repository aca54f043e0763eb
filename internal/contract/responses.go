package contract

import "boe_gateway/internal/domain"

type SearchLegislationResponse struct {
	Results         []domain.Legislation `json:"results"`
	TotalResults    int                  `json:"total_results"`
	Query           string               `json:"query"`
	ExecutionTimeMs float64              `json:"execution_time_ms"`
}

// GetLawResponse carries an absent law as a nil Law. Metadata and Analysis
// are only filled when requested.
type GetLawResponse struct {
	Law      *domain.Legislation `json:"law"`
	Metadata map[string]any      `json:"metadata"`
	Analysis map[string]any      `json:"analysis"`
}

type GetLawStructureResponse struct {
	Structure *domain.Structure `json:"structure"`
	LawID     string            `json:"law_id"`
}

type SummaryResponse struct {
	Summaries  []domain.SummaryItem `json:"summaries"`
	Date       string               `json:"date"`
	Type       string               `json:"type"`
	TotalItems int                  `json:"total_items"`
}

type SearchRecentResponse struct {
	Results      []domain.SummaryItem `json:"results"`
	SearchTerms  []string             `json:"search_terms"`
	DaysSearched int                  `json:"days_searched"`
	TotalMatches int                  `json:"total_matches"`
}

type AuxiliaryDataResponse struct {
	Data       []domain.AuxiliaryItem `json:"data"`
	Type       string                 `json:"type"`
	TotalItems int                    `json:"total_items"`
	SearchTerm string                 `json:"search_term"`
}

type CodeDescriptionResponse struct {
	Code           string         `json:"code"`
	Description    string         `json:"description"`
	Type           string         `json:"type"`
	AdditionalInfo map[string]any `json:"additional_info"`
}

type CodeDescriptionsResponse struct {
	Descriptions []CodeDescriptionResponse `json:"descriptions"`
	TotalCodes   int                       `json:"total_codes"`
	FoundCodes   int                       `json:"found_codes"`
}

type DepartmentsResponse struct {
	Departments []domain.AuxiliaryItem `json:"departments"`
	TotalCount  int                    `json:"total_count"`
}

type LegalRangesResponse struct {
	Ranges     []domain.AuxiliaryItem `json:"ranges"`
	Date       string                 `json:"date"`
	TotalCount int                    `json:"total_count"`
}
