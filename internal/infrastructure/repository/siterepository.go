package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tongpass/internal/domain/site"
	"tongpass/internal/infrastructure/persistence/mappers"
	"tongpass/internal/infrastructure/persistence/models"
	"tongpass/internal/shared/errors"
)

type SiteRepository struct {
	db     *gorm.DB
	mapper mappers.SiteMapper
}

func NewSiteRepository(db *gorm.DB) site.Repository {
	return &SiteRepository{
		db:     db,
		mapper: mappers.NewSiteMapper(),
	}
}

func (r *SiteRepository) GetByID(ctx context.Context, id uint) (*site.Site, error) {
	var model models.SiteModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("site not found")
		}
		return nil, fmt.Errorf("failed to get site by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *SiteRepository) ListAutoCheckout(ctx context.Context) ([]*site.Site, error) {
	var siteModels []models.SiteModel
	// The underscore needs escaping or LIKE treats it as a one-char
	// wildcard.
	err := r.db.WithContext(ctx).
		Where(`checkout_policy LIKE ? ESCAPE '\'`, `AUTO\_%`).
		Find(&siteModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list auto-checkout sites: %w", err)
	}

	sites := make([]*site.Site, len(siteModels))
	for i := range siteModels {
		sites[i] = r.mapper.ToDomain(&siteModels[i])
	}
	return sites, nil
}
