package usecase

import (
	"property-listing-service/internal/listing/repository"
	"property-listing-service/internal/model"
	"property-listing-service/internal/refdata"
	"property-listing-service/pkg/cache"
	pkgLog "property-listing-service/pkg/log"
)

// defaultDefectCode is the remote status code observed to correlate with
// the service's data-shape defect. It is overridable through config
// because the upstream bug may be fixed or change code independently.
const defaultDefectCode = 500

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	dir        refdata.Directory
	bulkCache  *cache.Store[[]model.Listing]
	defectCode int
}

// New creates a new listing UseCase instance. defectCode is the remote
// HTTP status treated as the known-defect signal that triggers the
// bulk-fetch fallback; 0 selects the default.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dir refdata.Directory,
	bulkCache *cache.Store[[]model.Listing],
	defectCode int,
) *implUseCase {
	if defectCode == 0 {
		defectCode = defaultDefectCode
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		dir:        dir,
		bulkCache:  bulkCache,
		defectCode: defectCode,
	}
}
