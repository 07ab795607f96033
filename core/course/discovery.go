package course

//go:generate mockery --name=DiscoveryRepository -r --case underscore --with-expecter --structname DiscoveryRepository --filename discovery_repository.go --output=./mocks
import (
	"context"
)

type DiscoveryRepository interface {
	Search(ctx context.Context, cfg SearchCriteria) (SearchHits, error)
	Suggest(ctx context.Context, prefix string) ([]string, error)
	BulkUpsert(ctx context.Context, courses []Course) error
	Upsert(ctx context.Context, c Course) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

//go:generate mockery --name=Dataset -r --case underscore --with-expecter --structname Dataset --filename dataset.go --output=./mocks

// Dataset is the source of the bootstrap courses
type Dataset interface {
	Load(ctx context.Context) ([]Course, error)
}
