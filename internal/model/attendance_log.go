package model

import "gorm.io/gorm"

// AttendanceLog is one punch pushed by a terminal. The composite unique
// index is the natural dedup key: a terminal retrying after a timeout must
// not produce a second row.
type AttendanceLog struct {
	gorm.Model
	EmployeeCode string `json:"employee_code" gorm:"column:employee_code;type:varchar(64);uniqueIndex:idx_punch_natural"`
	LogDatetime  string `json:"log_datetime" gorm:"column:log_datetime;type:varchar(32);uniqueIndex:idx_punch_natural"` // YYYY-MM-DD HH:MM:SS, naive local
	LogTime      string `json:"log_time"`
	DeviceSN     string `json:"device_sn" gorm:"column:device_sn;type:varchar(64);uniqueIndex:idx_punch_natural"`
	DownloadedAt string `json:"downloaded_at"`
}

func (AttendanceLog) TableName() string {
	return "attendance_logs"
}
