package usecases

import (
	"context"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/application/device/dto"
)

type CreateDeviceExecutor interface {
	Execute(ctx context.Context, cmd CreateDeviceCommand) (*dto.DeviceDTO, error)
}

type ListDevicesExecutor interface {
	Execute(ctx context.Context, query ListDevicesQuery) (*commondto.ListResult[*dto.DeviceDTO], error)
}

type UpdateDeviceStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateDeviceStatusCommand) (*dto.DeviceDTO, error)
}
