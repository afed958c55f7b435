package content

import (
	"context"

	"github.com/galleryroom/vr-gallery/internal/model"
)

// PageFetcher defines the interface for paginated content retrieval.
type PageFetcher interface {
	FetchPage(ctx context.Context, offset int) (*model.Page, error)
}
