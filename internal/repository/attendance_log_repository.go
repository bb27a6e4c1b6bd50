package repository

import (
	"errors"

	"rs9w-bridge/internal/model"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDuplicatePunch means the store already holds a row for the same
// (employee_code, device_sn, log_datetime). Terminals retry pushes after
// timeouts, so callers treat this as success.
var ErrDuplicatePunch = errors.New("punch already recorded")

type AttendanceLogRepository interface {
	Create(punch *model.AttendanceLog) error
	Recent(limit int) ([]model.AttendanceLog, error)
	CountByEmployee(code string) (int64, error)
}

type attendanceLogRepository struct {
	db *gorm.DB
}

func NewAttendanceLogRepository(db *gorm.DB) AttendanceLogRepository {
	return &attendanceLogRepository{db}
}

func (r *attendanceLogRepository) Create(punch *model.AttendanceLog) error {
	err := r.db.Create(punch).Error
	if err == nil {
		return nil
	}
	if isDuplicateKey(err) {
		return ErrDuplicatePunch
	}
	return err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Raw driver error in case the dialector did not translate it.
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func (r *attendanceLogRepository) Recent(limit int) ([]model.AttendanceLog, error) {
	var punches []model.AttendanceLog
	err := r.db.Order("created_at desc").Limit(limit).Find(&punches).Error
	return punches, err
}

func (r *attendanceLogRepository) CountByEmployee(code string) (int64, error) {
	var count int64
	err := r.db.Model(&model.AttendanceLog{}).Where("employee_code = ?", code).Count(&count).Error
	return count, err
}
