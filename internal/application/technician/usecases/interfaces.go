package usecases

import (
	"context"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/application/technician/dto"
)

type CreateTechnicianExecutor interface {
	Execute(ctx context.Context, cmd CreateTechnicianCommand) (*dto.TechnicianDTO, error)
}

type ListTechniciansExecutor interface {
	Execute(ctx context.Context, query ListTechniciansQuery) (*commondto.ListResult[*dto.TechnicianDTO], error)
}

type UpdateTechnicianStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateTechnicianStatusCommand) (*dto.TechnicianDTO, error)
}

type ListAvailableTechniciansExecutor interface {
	Execute(ctx context.Context) ([]commondto.Option, error)
}
