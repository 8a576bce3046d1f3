package database

import (
	"fmt"

	"olympus-app/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// Open connects to the configured database. The driver switch mirrors the
// deployment options: postgres in production, mysql/sqlserver kept for the
// on-prem installs. The reporting and search endpoints use postgres SQL
// (ILIKE, to_char, ||), so the other drivers only cover the core CRUD paths.
func Open() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch config.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, config.DBName, config.DBPort)
		dialector = postgres.Open(dsn)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, config.DBName)
		dialector = mysql.Open(dsn)
	case "mssql":
		dsn := "sqlserver://" + config.DBUser + ":" + config.DBPassword + "@" + config.DBHost + ":" + config.DBPort + "?database=" + config.DBName
		dialector = sqlserver.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", config.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
