package catalog

import (
	"context"

	serviceRepo "bookify/database/repository/service"
	"bookify/models"
	"bookify/utils"
)

// CatalogService resolves and validates service catalog entries for the
// booking engine. Catalog management itself happens elsewhere.
type CatalogService interface {
	// ServiceExists resolves a service id to its owning provider.
	ServiceExists(ctx context.Context, serviceID string) (string, bool, error)
	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	ListProviderServices(ctx context.Context, providerID string) ([]models.Service, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}

func (s *DefaultCatalogService) ServiceExists(ctx context.Context, serviceID string) (string, bool, error) {
	svc, err := s.Repo.GetByID(ctx, serviceID)
	if err != nil {
		if err == serviceRepo.ErrNotFound {
			return "", false, nil
		}
		return "", false, err
	}
	return svc.ProviderID, true, nil
}

func (s *DefaultCatalogService) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, serviceID)
	if err != nil {
		if err == serviceRepo.ErrNotFound {
			return nil, utils.NotFoundf("service %s does not exist", serviceID)
		}
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) ListProviderServices(ctx context.Context, providerID string) ([]models.Service, error) {
	return s.Repo.ListByProvider(ctx, providerID)
}
