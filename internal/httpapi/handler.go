package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"boe_gateway/internal/contract"
	"boe_gateway/internal/transport"
)

const maxBodyBytes = 1 << 20

type Legislation interface {
	Search(ctx context.Context, req contract.SearchLegislationRequest) (*contract.SearchLegislationResponse, error)
	GetLaw(ctx context.Context, req contract.GetLawRequest) (*contract.GetLawResponse, error)
	GetStructure(ctx context.Context, req contract.GetLawStructureRequest) (*contract.GetLawStructureResponse, error)
}

type Summary interface {
	GetBOESummary(ctx context.Context, req contract.SummaryRequest) (*contract.SummaryResponse, error)
	GetBORMESummary(ctx context.Context, req contract.SummaryRequest) (*contract.SummaryResponse, error)
	SearchRecent(ctx context.Context, req contract.SearchRecentRequest) (*contract.SearchRecentResponse, error)
}

type Auxiliary interface {
	GetDepartments(ctx context.Context) (*contract.DepartmentsResponse, error)
	GetLegalRanges(ctx context.Context, req contract.GetLegalRangesRequest) (*contract.LegalRangesResponse, error)
	GetCodeDescriptions(ctx context.Context, req contract.GetCodeDescriptionsRequest) (*contract.CodeDescriptionsResponse, error)
	GetDepartmentsTable(ctx context.Context, req contract.GetDepartmentsRequest) (*contract.AuxiliaryDataResponse, error)
	GetLegalRangesTable(ctx context.Context, req contract.GetLegalRangesRequest) (*contract.AuxiliaryDataResponse, error)
	GetCodeDescription(ctx context.Context, req contract.GetCodeDescriptionRequest) (*contract.CodeDescriptionResponse, error)
	SearchAuxiliary(ctx context.Context, req contract.SearchAuxiliaryRequest) (*contract.AuxiliaryDataResponse, error)
}

type Options struct {
	Version        string
	RequestTimeout time.Duration
}

type Handler struct {
	legislation Legislation
	summary     Summary
	auxiliary   Auxiliary
	opts        Options
	logger      *slog.Logger
}

func NewHandler(legislation Legislation, summary Summary, auxiliary Auxiliary, opts Options, logger *slog.Logger) *Handler {
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Handler{
		legislation: legislation,
		summary:     summary,
		auxiliary:   auxiliary,
		opts:        opts,
		logger:      logger.With("component", "httpapi"),
	}
}

// Router mounts every endpoint under /api.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	if h.opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(h.opts.RequestTimeout))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Get("/info", h.handleInfo)

		r.Route("/legislation", func(r chi.Router) {
			r.Post("/search", h.handleSearchLegislation)
			r.Get("/{lawID}", h.handleGetLaw)
			r.Get("/{lawID}/structure", h.handleGetLawStructure)
		})

		r.Route("/summary", func(r chi.Router) {
			r.Post("/boe", h.handleBOESummary)
			r.Post("/borme", h.handleBORMESummary)
			r.Post("/search", h.handleSearchRecent)
		})

		r.Route("/auxiliary", func(r chi.Router) {
			r.Get("/departments", h.handleDepartments)
			r.Post("/departments/search", h.handleDepartmentsTable)
			r.Post("/legal-ranges", h.handleLegalRanges)
			r.Get("/legal-ranges/table", h.handleLegalRangesTable)
			r.Post("/codes", h.handleCodeDescriptions)
			r.Get("/codes/{code}", h.handleCodeDescription)
			r.Post("/search", h.handleSearchAuxiliary)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, contract.Fail("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, contract.Fail("method not allowed"))
	})

	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.logger.Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// decode reads a JSON body into dst, which should already hold defaults.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body", contract.ErrInvalidRequest)
	}
	return nil
}

// fail maps err to a status and writes a failure envelope. Server-side
// details are logged, not returned.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := classify(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	}
	writeJSON(w, status, contract.Fail(msg))
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, contract.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, transport.ErrTransport):
		return http.StatusBadGateway, "upstream service unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "upstream request cancelled or timed out"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
