package digest

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"boe_gateway/internal/contract"
	"boe_gateway/internal/domain"
)

type SummaryFetcher interface {
	GetBOESummary(ctx context.Context, req contract.SummaryRequest) (*contract.SummaryResponse, error)
	GetBORMESummary(ctx context.Context, req contract.SummaryRequest) (*contract.SummaryResponse, error)
}

type Publisher interface {
	Publish(ctx context.Context, msg *domain.GazetteMessage) error
}

type SeenCache interface {
	Seen(gazette, id string) bool
	Mark(gazette, id string)
	Tracked(gazette string) int
}
