package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"boe_gateway/internal/domain"
)

// Upstream is the BOE open-data client as seen by the façades.
type Upstream interface {
	SearchLegislation(ctx context.Context, query string, limit, offset int) ([]domain.Legislation, error)
	GetLaw(ctx context.Context, lawID string, opts domain.LawOptions) (*domain.Legislation, error)
	GetLawStructure(ctx context.Context, lawID string) (*domain.Structure, error)
	GetBOESummary(ctx context.Context, date string, maxItems int) ([]domain.SummaryItem, error)
	GetBORMESummary(ctx context.Context, date string, maxItems int) ([]domain.SummaryItem, error)
	SearchRecent(ctx context.Context, daysBack int, terms []string) ([]domain.SummaryItem, error)
	GetDepartments(ctx context.Context, searchTerm string, limit int) ([]domain.AuxiliaryItem, error)
	GetLegalRanges(ctx context.Context, limit int) ([]domain.AuxiliaryItem, error)
	GetCode(ctx context.Context, code string) (*domain.AuxiliaryItem, error)
	SearchAuxiliary(ctx context.Context, query string) ([]domain.AuxiliaryItem, error)
}
