package mappers

import (
	"ispdesk/internal/domain/shared"
	"ispdesk/internal/infrastructure/persistence/models"
)

// clientRef projects a joined client row. gorm leaves a zero struct behind
// when a LEFT JOIN finds nothing, so an empty ID means no relation.
func clientRef(model *models.ClientModel) *shared.Ref {
	if model == nil || model.ID == "" {
		return nil
	}
	return &shared.Ref{ID: model.ID, Name: model.Name}
}

func technicianRef(model *models.TechnicianModel) *shared.Ref {
	if model == nil || model.ID == "" {
		return nil
	}
	return &shared.Ref{ID: model.ID, Name: model.Name}
}
