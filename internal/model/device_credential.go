package model

import "gorm.io/gorm"

// DeviceCredential records one enrolled terminal. Token is the signed
// per-device bearer token handed out at enrollment; re-enrolling a serial
// replaces it.
type DeviceCredential struct {
	gorm.Model
	DeviceSN string `json:"device_sn" gorm:"column:device_sn;type:varchar(64);unique;not null"`
	Token    string `json:"token" gorm:"type:text"`
	JTI      string `json:"jti" gorm:"column:jti"`
}
