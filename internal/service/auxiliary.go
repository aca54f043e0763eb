package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"boe_gateway/internal/contract"
	"boe_gateway/internal/domain"
)

const allDepartmentsLimit = 1000

const (
	typeDepartments   = "departments"
	typeLegalRanges   = "legal_ranges"
	typeSearchResults = "search_results"
)

type AuxiliaryService struct {
	upstream Upstream
	logger   *slog.Logger
}

func NewAuxiliaryService(upstream Upstream, logger *slog.Logger) *AuxiliaryService {
	return &AuxiliaryService{
		upstream: upstream,
		logger:   logger.With("component", "auxiliary"),
	}
}

// GetDepartments returns the whole departments table.
func (s *AuxiliaryService) GetDepartments(ctx context.Context) (*contract.DepartmentsResponse, error) {
	s.logger.Info("getting departments list")

	departments, err := s.upstream.GetDepartments(ctx, "", allDepartmentsLimit)
	if err != nil {
		s.logger.Error("get departments failed", "error", err)
		return nil, fmt.Errorf("get departments: %w", err)
	}

	return &contract.DepartmentsResponse{
		Departments: departments,
		TotalCount:  len(departments),
	}, nil
}

// GetLegalRanges returns the legal ranges table. The upstream table is not
// dated; the requested date is echoed back.
func (s *AuxiliaryService) GetLegalRanges(ctx context.Context, req contract.GetLegalRangesRequest) (*contract.LegalRangesResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("getting legal ranges", "date", req.Date, "limit", req.Limit)

	ranges, err := s.upstream.GetLegalRanges(ctx, req.Limit)
	if err != nil {
		s.logger.Error("get legal ranges failed", "date", req.Date, "error", err)
		return nil, fmt.Errorf("get legal ranges: %w", err)
	}

	return &contract.LegalRangesResponse{
		Ranges:     ranges,
		Date:       req.Date,
		TotalCount: len(ranges),
	}, nil
}

// GetCodeDescriptions looks codes up one at a time. A code that fails or is
// not found is skipped; only cancellation of ctx stops the batch.
func (s *AuxiliaryService) GetCodeDescriptions(ctx context.Context, req contract.GetCodeDescriptionsRequest) (*contract.CodeDescriptionsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("getting code descriptions", "count", len(req.Codes))

	descriptions := make([]contract.CodeDescriptionResponse, 0, len(req.Codes))
	for _, code := range req.Codes {
		item, err := s.upstream.GetCode(ctx, code)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("get code descriptions: %w", ctxErr)
			}
			s.logger.Warn("failed to get code description", "code", code, "error", err)
			continue
		}
		if item == nil {
			s.logger.Debug("code not found", "code", code)
			continue
		}

		descriptions = append(descriptions, contract.CodeDescriptionResponse{
			Code:           code,
			Description:    item.Description,
			Type:           item.Type,
			AdditionalInfo: additionalInfo(item, time.Now().UTC()),
		})
	}

	return &contract.CodeDescriptionsResponse{
		Descriptions: descriptions,
		TotalCodes:   len(req.Codes),
		FoundCodes:   len(descriptions),
	}, nil
}

func (s *AuxiliaryService) GetDepartmentsTable(ctx context.Context, req contract.GetDepartmentsRequest) (*contract.AuxiliaryDataResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("getting departments table", "search_term", req.SearchTerm, "limit", req.Limit)

	items, err := s.upstream.GetDepartments(ctx, req.SearchTerm, req.Limit)
	if err != nil {
		s.logger.Error("get departments table failed", "search_term", req.SearchTerm, "error", err)
		return nil, fmt.Errorf("get departments table: %w", err)
	}

	return auxiliaryData(items, typeDepartments, req.SearchTerm), nil
}

func (s *AuxiliaryService) GetLegalRangesTable(ctx context.Context, req contract.GetLegalRangesRequest) (*contract.AuxiliaryDataResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("getting legal ranges table", "limit", req.Limit)

	items, err := s.upstream.GetLegalRanges(ctx, req.Limit)
	if err != nil {
		s.logger.Error("get legal ranges table failed", "error", err)
		return nil, fmt.Errorf("get legal ranges table: %w", err)
	}

	return auxiliaryData(items, typeLegalRanges, ""), nil
}

// GetCodeDescription looks a single code up. An unknown code is answered
// with a placeholder description rather than an error.
func (s *AuxiliaryService) GetCodeDescription(ctx context.Context, req contract.GetCodeDescriptionRequest) (*contract.CodeDescriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("getting code description", "code", req.Code)

	item, err := s.upstream.GetCode(ctx, req.Code)
	if err != nil {
		s.logger.Error("get code description failed", "code", req.Code, "error", err)
		return nil, fmt.Errorf("get code %s: %w", req.Code, err)
	}

	if item == nil {
		s.logger.Warn("code not found", "code", req.Code)
		return &contract.CodeDescriptionResponse{
			Code:        req.Code,
			Description: "Code not found",
			Type:        "unknown",
		}, nil
	}

	return &contract.CodeDescriptionResponse{
		Code:           req.Code,
		Description:    item.Description,
		Type:           item.Type,
		AdditionalInfo: additionalInfo(item, time.Now().UTC()),
	}, nil
}

func (s *AuxiliaryService) SearchAuxiliary(ctx context.Context, req contract.SearchAuxiliaryRequest) (*contract.AuxiliaryDataResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("searching auxiliary data", "query", req.Query)

	items, err := s.upstream.SearchAuxiliary(ctx, req.Query)
	if err != nil {
		s.logger.Error("auxiliary search failed", "query", req.Query, "error", err)
		return nil, fmt.Errorf("search auxiliary data: %w", err)
	}

	return auxiliaryData(items, typeSearchResults, req.Query), nil
}

func auxiliaryData(items []domain.AuxiliaryItem, kind, searchTerm string) *contract.AuxiliaryDataResponse {
	return &contract.AuxiliaryDataResponse{
		Data:       items,
		Type:       kind,
		TotalItems: len(items),
		SearchTerm: searchTerm,
	}
}

func additionalInfo(item *domain.AuxiliaryItem, now time.Time) map[string]any {
	return map[string]any{
		"code":         item.Code,
		"type":         item.Type,
		"category":     Classify(item.Type),
		"retrieved_at": now,
	}
}

// Classify maps an auxiliary type tag to a coarse category.
func Classify(itemType string) string {
	switch strings.ToLower(itemType) {
	case "department", "departamento":
		return "government_department"
	case "range", "rango":
		return "legal_range"
	default:
		return "general"
	}
}
