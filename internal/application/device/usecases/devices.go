package usecases

import (
	"context"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/application/device/dto"
	"ispdesk/internal/domain/device"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type CreateDeviceCommand struct {
	Name      string `json:"name" validate:"required,min=3,max=100"`
	IPAddress string `json:"ip_address" validate:"required,min=7,ip"`
	Type      string `json:"type" validate:"required,oneof=router switch ap radio server"`
	Model     string `json:"model" validate:"max=100"`
	Location  string `json:"location" validate:"max=255"`
	Status    string `json:"status" validate:"omitempty,oneof=active inactive maintenance warning"`
}

type CreateDeviceUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewCreateDeviceUseCase(deviceRepo device.Repository, logger logger.Interface) *CreateDeviceUseCase {
	return &CreateDeviceUseCase{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (uc *CreateDeviceUseCase) Execute(ctx context.Context, cmd CreateDeviceCommand) (*dto.DeviceDTO, error) {
	uc.logger.Infow("executing create device use case", "name", cmd.Name, "ip_address", cmd.IPAddress)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	status, err := device.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	d, err := device.NewDevice(
		cmd.Name,
		cmd.IPAddress,
		device.Type(cmd.Type),
		utils.NilIfEmpty(cmd.Model),
		utils.NilIfEmpty(cmd.Location),
		status,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.deviceRepo.Create(ctx, d); err != nil {
		uc.logger.Errorw("failed to create device", "error", err)
		return nil, errors.NewInternalError("failed to create device")
	}

	uc.logger.Infow("device created successfully", "device_id", d.ID())
	return dto.ToDeviceDTO(d), nil
}

type ListDevicesQuery struct {
	Search string
}

type ListDevicesUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewListDevicesUseCase(deviceRepo device.Repository, logger logger.Interface) *ListDevicesUseCase {
	return &ListDevicesUseCase{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (uc *ListDevicesUseCase) Execute(ctx context.Context, query ListDevicesQuery) (*commondto.ListResult[*dto.DeviceDTO], error) {
	devices, err := uc.deviceRepo.List(ctx)
	if err != nil {
		uc.logger.WithContext(ctx).Errorw("failed to load devices", "error", err)
		return nil, errors.NewInternalError("failed to load devices")
	}
	return commondto.NewListResult(devices, query.Search, dto.SearchFields, dto.ToDeviceDTO), nil
}

type UpdateDeviceStatusCommand struct {
	DeviceID string `json:"-" validate:"required,uuid"`
	Status   string `json:"status" validate:"required,oneof=active inactive maintenance warning"`
}

type UpdateDeviceStatusUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewUpdateDeviceStatusUseCase(deviceRepo device.Repository, logger logger.Interface) *UpdateDeviceStatusUseCase {
	return &UpdateDeviceStatusUseCase{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (uc *UpdateDeviceStatusUseCase) Execute(ctx context.Context, cmd UpdateDeviceStatusCommand) (*dto.DeviceDTO, error) {
	uc.logger.Infow("executing update device status use case", "device_id", cmd.DeviceID, "status", cmd.Status)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	d, err := uc.deviceRepo.GetByID(ctx, cmd.DeviceID)
	if err != nil {
		uc.logger.Errorw("failed to get device", "error", err, "device_id", cmd.DeviceID)
		return nil, errors.NewInternalError("failed to get device")
	}
	if d == nil {
		return nil, errors.NewNotFoundError("device not found", cmd.DeviceID)
	}

	if err := d.ChangeStatus(device.Status(cmd.Status)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.deviceRepo.UpdateStatus(ctx, d); err != nil {
		uc.logger.Errorw("failed to update device status", "error", err, "device_id", cmd.DeviceID)
		return nil, errors.NewInternalError("failed to update device status")
	}

	updated, err := uc.deviceRepo.GetByID(ctx, cmd.DeviceID)
	if err != nil || updated == nil {
		uc.logger.Errorw("failed to reload device", "error", err, "device_id", cmd.DeviceID)
		return nil, errors.NewInternalError("failed to reload device")
	}
	return dto.ToDeviceDTO(updated), nil
}
