package model

import "gorm.io/gorm"

// Employee is the directory record the RS9W terminals sync against.
// EmployeeID doubles as the device-facing employee_code.
type Employee struct {
	gorm.Model
	EmployeeID  string `json:"employee_id" gorm:"column:employee_id;type:varchar(64);unique;not null"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Phone       string `json:"phone"`
	Status      string `json:"status" gorm:"default:Active"` // Active/Inactive/Left
	// Kept as a plain string: the DSN enables parseTime, and a DATE
	// column would come back from the driver as time.Time.
	HireDate string `json:"hire_date" gorm:"type:varchar(16)"`
}
