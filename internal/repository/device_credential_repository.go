package repository

import (
	"rs9w-bridge/internal/model"

	"gorm.io/gorm"
)

type DeviceCredentialRepository interface {
	FindBySerial(deviceSN string) (*model.DeviceCredential, error)
	Save(cred *model.DeviceCredential) error
}

type deviceCredentialRepository struct {
	db *gorm.DB
}

func NewDeviceCredentialRepository(db *gorm.DB) DeviceCredentialRepository {
	return &deviceCredentialRepository{db}
}

func (r *deviceCredentialRepository) FindBySerial(deviceSN string) (*model.DeviceCredential, error) {
	var cred model.DeviceCredential
	err := r.db.Where("device_sn = ?", deviceSN).First(&cred).Error
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *deviceCredentialRepository) Save(cred *model.DeviceCredential) error {
	return r.db.Save(cred).Error
}
