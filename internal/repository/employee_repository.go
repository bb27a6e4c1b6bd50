package repository

import (
	"rs9w-bridge/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	GetActive() ([]model.Employee, error)
	FindByCode(code string) (*model.Employee, error)
	Create(employee *model.Employee) error
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

// GetActive returns the snapshot source: Active employees only, ordered by
// employee_id so every terminal sees the same stable listing.
func (r *employeeRepository) GetActive() ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Where("status = ?", "Active").Order("employee_id asc").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) FindByCode(code string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Where("employee_id = ?", code).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}
