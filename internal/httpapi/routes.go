package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"boe_gateway/internal/contract"
)

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, contract.OK(map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   h.opts.Version,
	}))
}

func (h *Handler) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, contract.OK(map[string]any{
		"name":        "boe-gateway",
		"description": "HTTP API over the BOE (Boletín Oficial del Estado) open-data service",
		"version":     h.opts.Version,
		"endpoints": map[string][]string{
			"legislation": {
				"POST /api/legislation/search - Search consolidated legislation",
				"GET /api/legislation/{lawID} - Get a consolidated law",
				"GET /api/legislation/{lawID}/structure - Get a law structure",
			},
			"summary": {
				"POST /api/summary/boe - Get the BOE summary for a date",
				"POST /api/summary/borme - Get the BORME summary for a date",
				"POST /api/summary/search - Search recent publications",
			},
			"auxiliary": {
				"GET /api/auxiliary/departments - List departments",
				"POST /api/auxiliary/departments/search - Search the departments table",
				"POST /api/auxiliary/legal-ranges - Get legal ranges for a date",
				"GET /api/auxiliary/legal-ranges/table - Get the legal ranges table",
				"POST /api/auxiliary/codes - Describe several codes",
				"GET /api/auxiliary/codes/{code} - Describe one code",
				"POST /api/auxiliary/search - Search auxiliary tables",
			},
			"system": {
				"GET /api/health - Health check",
				"GET /api/info - API information",
			},
		},
	}))
}

func (h *Handler) handleSearchLegislation(w http.ResponseWriter, r *http.Request) {
	req := contract.NewSearchLegislationRequest()
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	resp, err := h.legislation.Search(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(resp))
}

func (h *Handler) handleGetLaw(w http.ResponseWriter, r *http.Request) {
	req := contract.NewGetLawRequest()
	lawID, err := pathParam(r, "lawID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req.LawID = lawID

	q := r.URL.Query()
	for name, dst := range map[string]*bool{
		"includeMetadata": &req.IncludeMetadata,
		"includeAnalysis": &req.IncludeAnalysis,
		"includeFullText": &req.IncludeFullText,
	} {
		if err := parseBool(q.Get(name), dst); err != nil {
			h.fail(w, r, fmt.Errorf("%w: %s: %w", contract.ErrInvalidRequest, name, err))
			return
		}
	}

	resp, err := h.legislation.GetLaw(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if resp.Law == nil {
		writeJSON(w, http.StatusNotFound, contract.Fail("law not found: "+req.LawID))
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(resp))
}

func (h *Handler) handleGetLawStructure(w http.ResponseWriter, r *http.Request) {
	lawID, err := pathParam(r, "lawID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req := contract.GetLawStructureRequest{LawID: lawID}

	resp, err := h.legislation.GetStructure(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if resp.Structure == nil {
		writeJSON(w, http.StatusNotFound, contract.Fail("law structure not found: "+req.LawID))
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(resp))
}

func (h *Handler) handleBOESummary(w http.ResponseWriter, r *http.Request) {
	req := contract.NewSummaryRequest()
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	resp, err := h.summary.GetBOESummary(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(resp))
}

func (h *Handler) handleBORMESummary(w http.ResponseWriter, r *http.Request) {
	req := contract.NewSummaryRequest()
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	resp, err := h.summary.GetBORMESummary(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(resp))
}

func (h *Handler) handleSearchRecent(w http.ResponseWriter, r *http.Request) {
	req := contract.NewSearchRecentRequest()
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	resp, err := h.summary.SearchRecent(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(resp))
}

func (h *Handler) handleDepartments(w http.ResponseWriter, r *http.Request) {
	resp, err := h.auxiliary.GetDepartments(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(resp))
}

func (h *Handler) handleDepartmentsTable(w http.ResponseWriter, r *http.Request) {
	req := contract.NewGetDepartmentsRequest()
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	resp, err := h.auxiliary.GetDepartmentsTable(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(resp))
}

func (h *Handler) handleLegalRanges(w http.ResponseWriter, r *http.Request) {
	req := contract.NewGetLegalRangesRequest()
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	resp, err := h.auxiliary.GetLegalRanges(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(resp))
}

func (h *Handler) handleLegalRangesTable(w http.ResponseWriter, r *http.Request) {
	req := contract.NewGetLegalRangesRequest()
	q := r.URL.Query()
	req.Date = q.Get("date")
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(w, r, fmt.Errorf("%w: limit: must be an integer", contract.ErrInvalidRequest))
			return
		}
		req.Limit = limit
	}

	resp, err := h.auxiliary.GetLegalRangesTable(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(resp))
}

func (h *Handler) handleCodeDescriptions(w http.ResponseWriter, r *http.Request) {
	var req contract.GetCodeDescriptionsRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	resp, err := h.auxiliary.GetCodeDescriptions(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(resp))
}

func (h *Handler) handleCodeDescription(w http.ResponseWriter, r *http.Request) {
	code, err := pathParam(r, "code")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req := contract.GetCodeDescriptionRequest{Code: code}

	resp, err := h.auxiliary.GetCodeDescription(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(resp))
}

func (h *Handler) handleSearchAuxiliary(w http.ResponseWriter, r *http.Request) {
	var req contract.SearchAuxiliaryRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	resp, err := h.auxiliary.SearchAuxiliary(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(resp))
}

// parseBool leaves dst untouched when raw is empty.
func parseBool(raw string, dst *bool) error {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// pathParam returns the decoded value of a route parameter. chi matches on
// RawPath when the request carries one, leaving its params still escaped.
func pathParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", contract.ErrInvalidRequest, key, err)
	}
	return decoded, nil
}
