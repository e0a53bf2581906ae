package mappers

import (
	"ispdesk/internal/domain/ticket"
	vo "ispdesk/internal/domain/ticket/valueobjects"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/mapper"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	ToDomainList(items []*models.TicketModel) ([]*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *ticket.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:           t.ID(),
		TicketNumber: t.Number(),
		ClientID:     t.ClientID(),
		TechnicianID: t.TechnicianID(),
		Title:        t.Title(),
		Description:  t.Description(),
		Priority:     t.Priority().String(),
		Status:       t.Status().String(),
		ResolvedAt:   t.ResolvedAt(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

// ToDomain converts the ticket row and whichever relations were joined.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}
	return ticket.ReconstructTicket(
		model.ID,
		model.TicketNumber,
		model.ClientID,
		model.TechnicianID,
		model.Title,
		model.Description,
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		model.ResolvedAt,
		model.CreatedAt,
		model.UpdatedAt,
		clientRef(model.Client),
		technicianRef(model.Technician),
	)
}

func (m *TicketMapperImpl) ToDomainList(items []*models.TicketModel) ([]*ticket.Ticket, error) {
	return mapper.MapSliceWithError(items, m.ToDomain)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		Comment:   c.Comment(),
		CreatedBy: c.CreatedBy(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.Comment,
		model.CreatedBy,
		model.CreatedAt,
	)
}
