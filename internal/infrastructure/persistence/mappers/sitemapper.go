package mappers

import (
	"tongpass/internal/domain/site"
	"tongpass/internal/infrastructure/persistence/models"
)

// SiteMapper handles the conversion between Site domain entities and persistence models.
type SiteMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *site.Site) *models.SiteModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.SiteModel) *site.Site
}

// SiteMapperImpl is the concrete implementation of SiteMapper.
type SiteMapperImpl struct{}

// NewSiteMapper creates a new SiteMapper.
func NewSiteMapper() SiteMapper {
	return &SiteMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *SiteMapperImpl) ToModel(entity *site.Site) *models.SiteModel {
	if entity == nil {
		return nil
	}
	return &models.SiteModel{
		ID:                 entity.ID,
		Name:               entity.Name,
		WorkDayStartHour:   entity.WorkDayStartHour,
		CheckoutPolicy:     entity.CheckoutPolicyRaw,
		AutoCheckoutHours:  entity.AutoHours,
		SeniorAgeThreshold: entity.SeniorAgeThreshold,
		CreatedAt:          entity.CreatedAt,
		UpdatedAt:          entity.UpdatedAt,
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *SiteMapperImpl) ToDomain(model *models.SiteModel) *site.Site {
	if model == nil {
		return nil
	}
	return &site.Site{
		ID:                 model.ID,
		Name:               model.Name,
		WorkDayStartHour:   model.WorkDayStartHour,
		CheckoutPolicyRaw:  model.CheckoutPolicy,
		AutoHours:          model.AutoCheckoutHours,
		SeniorAgeThreshold: model.SeniorAgeThreshold,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}
