package config

import (
	"fmt"
	"rs9w-bridge/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func ConnectDB(cfg Config) *gorm.DB {
	// TranslateError lets the repositories detect duplicate-key violations
	// without caring about the driver.
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(fmt.Sprintf("failed to connect to database: %v", err))
	}

	fmt.Println("Database connection established")

	// Auto Migration: creates the tables from the structs in internal/model
	db.AutoMigrate(&model.Employee{})
	db.AutoMigrate(&model.AttendanceLog{})
	db.AutoMigrate(&model.DeviceCredential{})

	return db
}
