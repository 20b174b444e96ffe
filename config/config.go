package config

import (
	"database/sql"
	"fmt"
	"github.com/yourusername/go-exam-gen/db/schemas/exam/models"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func LoadDBConfig() DBConfig {
	_ = godotenv.Load()

	return DBConfig{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   os.Getenv("DB_NAME"),
	}
}

// Configured reports whether a database host was provided at all.
func (cfg DBConfig) Configured() bool {
	return cfg.Host != ""
}

// DSN returns the postgres connection string for dbName.
func (cfg DBConfig) DSN(dbName string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, dbName,
	)
}

func DropAndRecreateDatabase(cfg DBConfig) error {
	adminDB, err := sql.Open("postgres", cfg.DSN("postgres"))
	if err != nil {
		return fmt.Errorf("failed to connect to admin DB: %w", err)
	}
	defer adminDB.Close()

	// Terminate any active connections
	_, _ = adminDB.Exec(`
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid();`, cfg.DBName)

	quotedDBName := fmt.Sprintf(`"%s"`, cfg.DBName)

	if _, err = adminDB.Exec(`DROP DATABASE IF EXISTS ` + quotedDBName); err != nil {
		return fmt.Errorf("failed to drop database: %w", err)
	}
	if _, err = adminDB.Exec(`CREATE DATABASE ` + quotedDBName); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	log.Printf("✅ Dropped and recreated database %s\n", cfg.DBName)
	return nil
}

// Open connects to the configured database with gorm logging silenced.
func Open(cfg DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN(cfg.DBName)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func ResetDatabase(db *gorm.DB) error {
	if err := ResetSchema(db); err != nil {
		return err
	}
	if err := ResetSessionConfig(db); err != nil {
		return err
	}
	if err := ConfirmNoTables(db); err != nil {
		return err
	}
	return Migrate(db)
}

// Migrate creates the exam and load_runs tables if they are missing.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Exam{}, &models.LoadRun{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// TruncateExams empties the exam table so a file can be loaded again.
func TruncateExams(db *gorm.DB) error {
	if err := db.Exec("TRUNCATE TABLE exam").Error; err != nil {
		return fmt.Errorf("truncate exam: %w", err)
	}
	return nil
}

func ResetSchema(db *gorm.DB) error {
	if err := db.Exec("DROP SCHEMA public CASCADE").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE SCHEMA public").Error; err != nil {
		return err
	}
	log.Println("✅ Dropped and recreated public schema")
	return nil
}

func ResetSessionConfig(db *gorm.DB) error {
	if err := db.Exec(`DISCARD ALL;`).Error; err != nil {
		return err
	}
	log.Println("✅ DISCARD ALL executed")
	if err := db.Exec("RESET ALL").Error; err != nil {
		return err
	}
	log.Println("✅ RESET ALL executed")
	return nil
}

func ConfirmNoTables(db *gorm.DB) error {
	var tables []string
	if err := db.Raw(`SELECT tablename FROM pg_tables WHERE schemaname = 'public'`).Scan(&tables).Error; err != nil {
		return fmt.Errorf("failed to query tables: %w", err)
	}
	if len(tables) > 0 {
		return fmt.Errorf("❌ tables still exist after reset: %v", tables)
	}
	log.Println("✅ Verified: no user-defined tables remain")
	return nil
}
