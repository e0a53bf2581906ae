package dto

import "ispdesk/internal/domain/shared"

// ToRefOption projects a joined relation for display. A missing relation
// stays nil so the field serializes as null.
func ToRefOption(r *shared.Ref) *Option {
	if r == nil {
		return nil
	}
	return &Option{ID: r.ID, Name: r.Name}
}
