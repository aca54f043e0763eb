package boe

import (
	"encoding/json"
	"fmt"
)

type envelopeKind int

const (
	// envelopeBare is a single object at the top level.
	envelopeBare envelopeKind = iota
	// envelopeResults wraps a list under "resultados".
	envelopeResults
	// envelopeItems wraps a list under "items".
	envelopeItems
)

type operation string

const (
	opSearchLegislation operation = "search_legislation"
	opGetLaw            operation = "get_law"
	opGetLawStructure   operation = "get_law_structure"
	opBOESummary        operation = "boe_summary"
	opBORMESummary      operation = "borme_summary"
	opSearchRecent      operation = "search_recent"
	opDepartments       operation = "departments"
	opLegalRanges       operation = "legal_ranges"
	opGetCode           operation = "get_code"
	opSearchAuxiliary   operation = "search_auxiliary"
)

var envelopes = map[operation]envelopeKind{
	opSearchLegislation: envelopeResults,
	opGetLaw:            envelopeBare,
	opGetLawStructure:   envelopeBare,
	opBOESummary:        envelopeItems,
	opBORMESummary:      envelopeItems,
	opSearchRecent:      envelopeItems,
	opDepartments:       envelopeItems,
	opLegalRanges:       envelopeItems,
	opGetCode:           envelopeBare,
	opSearchAuxiliary:   envelopeItems,
}

// decodeList unwraps the list envelope registered for op. A missing or null
// list decodes to an empty slice.
func decodeList[T any](op operation, body []byte) ([]T, error) {
	var items []T

	switch envelopes[op] {
	case envelopeResults:
		var env struct {
			Results []T `json:"resultados"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		items = env.Results
	case envelopeItems:
		var env struct {
			Items []T `json:"items"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		items = env.Items
	default:
		return nil, fmt.Errorf("operation %s has no list envelope", op)
	}

	if items == nil {
		items = []T{}
	}
	return items, nil
}

// decodeOne decodes a bare object response.
func decodeOne[T any](op operation, body []byte) (*T, error) {
	if kind, ok := envelopes[op]; !ok || kind != envelopeBare {
		return nil, fmt.Errorf("operation %s has no bare envelope", op)
	}

	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &v, nil
}
