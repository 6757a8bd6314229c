package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"hospital-assist-service/internal/config"
	"hospital-assist-service/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// doctors_full_schema joins doctors to their department and hospital; it is
// provided for ad-hoc inspection and never read by the API.
const doctorsFullSchemaView = `
CREATE VIEW IF NOT EXISTS doctors_full_schema AS
SELECT
    d.id AS doctor_id,
    d.first_name,
    d.last_name,
    d.phone AS doctor_phone,
    d.speciality,
    d.created_at AS doctor_created_at,
    d.updated_at AS doctor_updated_at,
    dep.id AS department_id,
    dep.name AS department_name,
    dep.phone AS department_phone,
    dep.description AS department_description,
    h.id AS hospital_id,
    h.name AS hospital_name,
    h.city AS hospital_city,
    h.state AS hospital_state,
    h.phone AS hospital_phone
FROM doctors d
JOIN departments dep ON d.department_id = dep.id
JOIN hospitals h ON d.hospital_id = h.id;
`

const usersFullSchemaView = `
CREATE VIEW IF NOT EXISTS users_full_schema AS
SELECT
    id,
    first_name,
    last_name,
    date_of_birth,
    state,
    address,
    phone,
    email,
    gender,
    created_at,
    updated_at
FROM users;
`

func main() {
	cfg := config.LoadConfig()

	dataDir := os.Getenv("SEED_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}

	seedHospitalStore(cfg.Database.HospitalPath, dataDir)
	seedUsersStore(cfg.Database.UsersPath, dataDir)
}

func seedHospitalStore(dbPath, dataDir string) {
	db := open(dbPath)

	if err := db.AutoMigrate(&models.Hospital{}, &models.Department{}, &models.Doctor{}); err != nil {
		log.Fatalf("Failed to migrate hospital store: %v", err)
	}

	var hospitals []models.Hospital
	loadJSON(filepath.Join(dataDir, "hospitals.json"), &hospitals)
	var departments []models.Department
	loadJSON(filepath.Join(dataDir, "departments.json"), &departments)
	var doctors []models.Doctor
	loadJSON(filepath.Join(dataDir, "doctors.json"), &doctors)

	insert(db, "hospitals", &hospitals)
	insert(db, "departments", &departments)
	insert(db, "doctors", &doctors)

	if err := db.Exec(doctorsFullSchemaView).Error; err != nil {
		log.Fatalf("Failed to create doctors_full_schema view: %v", err)
	}
	log.Println("Created doctors_full_schema view")

	verifyCount(db, &models.Hospital{}, "hospitals")
	verifyCount(db, &models.Department{}, "departments")
	verifyCount(db, &models.Doctor{}, "doctors")

	log.Printf("Hospital store ready at %s", dbPath)
}

func seedUsersStore(dbPath, dataDir string) {
	db := open(dbPath)

	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to migrate users store: %v", err)
	}

	var users []models.User
	loadJSON(filepath.Join(dataDir, "users.json"), &users)
	insert(db, "users", &users)

	if err := db.Exec(usersFullSchemaView).Error; err != nil {
		log.Fatalf("Failed to create users_full_schema view: %v", err)
	}
	log.Println("Created users_full_schema view")

	verifyCount(db, &models.User{}, "users")

	log.Printf("Users store ready at %s", dbPath)
}

func open(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", path, err)
	}
	log.Printf("Connected to database: %s", path)
	return db
}

func loadJSON(path string, out interface{}) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read fixture %s: %v", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Fatalf("Failed to decode fixture %s: %v", path, err)
	}
}

func insert(db *gorm.DB, table string, records interface{}) {
	result := db.Create(records)
	if result.Error != nil {
		log.Fatalf("Failed to insert into %s: %v", table, result.Error)
	}
	log.Printf("Inserted %d records into %s", result.RowsAffected, table)
}

func verifyCount(db *gorm.DB, model interface{}, table string) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count %s: %v", table, err)
	}
	log.Printf("Total records in %s: %d", table, count)
}
