package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ispdesk/internal/domain/device"
	"ispdesk/internal/infrastructure/persistence/mappers"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/db"
	"ispdesk/internal/shared/logger"
)

type DeviceRepositoryImpl struct {
	db     *gorm.DB
	retry  *db.Retrier
	mapper mappers.DeviceMapper
	logger logger.Interface
}

func NewDeviceRepository(gormDB *gorm.DB, retry *db.Retrier, logger logger.Interface) device.Repository {
	return &DeviceRepositoryImpl{
		db:     gormDB,
		retry:  retry,
		mapper: mappers.NewDeviceMapper(),
		logger: logger,
	}
}

func (r *DeviceRepositoryImpl) Create(ctx context.Context, d *device.Device) error {
	model := r.mapper.ToModel(d)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create network device", "error", err, "name", d.Name())
		return fmt.Errorf("failed to create network device: %w", err)
	}

	r.logger.Infow("network device created successfully", "device_id", model.ID, "ip_address", model.IPAddress)
	return nil
}

func (r *DeviceRepositoryImpl) GetByID(ctx context.Context, id string) (*device.Device, error) {
	var model models.NetworkDeviceModel
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get network device by ID", "error", err, "device_id", id)
		return nil, fmt.Errorf("failed to get network device: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *DeviceRepositoryImpl) List(ctx context.Context) ([]*device.Device, error) {
	var deviceModels []*models.NetworkDeviceModel
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		deviceModels = nil
		return db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&deviceModels).Error
	})
	if err != nil {
		r.logger.Errorw("failed to list network devices", "error", err)
		return nil, fmt.Errorf("failed to list network devices: %w", err)
	}

	return r.mapper.ToEntities(deviceModels)
}

func (r *DeviceRepositoryImpl) UpdateStatus(ctx context.Context, d *device.Device) error {
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return db.GetTxFromContext(ctx, r.db).
			Model(&models.NetworkDeviceModel{}).
			Where("id = ?", d.ID()).
			Updates(map[string]interface{}{
				"status":     d.Status().String(),
				"updated_at": d.UpdatedAt(),
			}).Error
	})
	if err != nil {
		r.logger.Errorw("failed to update network device status", "error", err, "device_id", d.ID())
		return fmt.Errorf("failed to update network device status: %w", err)
	}

	r.logger.Infow("network device status updated", "device_id", d.ID(), "status", d.Status())
	return nil
}
