package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		gormDB, err := openGorm(db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			clearSeedData(gormDB)
		}

		seedPositions(gormDB)
		seedUsersAndEmployees(gormDB)
		seedMeeting(gormDB)
		seedOverrides(gormDB)
	},
}

func clearSeedData(db *gorm.DB) {
	for _, table := range []string{"meeting_participants", "meetings", "user_permissions", "employees", "users", "positions"} {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			log.Fatalf("failed to clear %s: %v", table, err)
		}
	}
	fmt.Println("Cleared existing data")
}

func seedPositions(db *gorm.DB) {
	positions := []struct {
		name                                                               string
		canCreateMeeting, canApprovePermits, canAccessTahfidz, koordinator int
	}{
		{"Kepala Sekolah", 1, 1, 1, 0},
		{"Koordinator Tahfidz", 1, 0, 1, 1},
		{"Guru", 0, 0, 0, 0},
		{"Staf TU", 0, 0, 0, 0},
	}

	for _, p := range positions {
		var exists int
		row := db.Raw("SELECT 1 FROM positions WHERE name = ?", p.name).Row()
		if err := row.Scan(&exists); err == nil {
			continue
		}
		err := db.Exec(
			"INSERT INTO positions (name, can_create_meeting, can_approve_permits, can_access_tahfidz, is_koordinator, created_at) VALUES (?, ?, ?, ?, ?, now())",
			p.name, p.canCreateMeeting, p.canApprovePermits, p.canAccessTahfidz, p.koordinator,
		).Error
		if err != nil {
			log.Fatalf("failed to insert position %s: %v", p.name, err)
		}
		fmt.Println("Seeded position:", p.name)
	}
}

func seedUsersAndEmployees(db *gorm.DB) {
	password := "password"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	users := []struct {
		email, name, position string
	}{
		{"ahmad@sekolah.sch.id", "Ahmad Fauzi", "Kepala Sekolah"},
		{"siti@sekolah.sch.id", "Siti Rahma", "Koordinator Tahfidz"},
		{"budi@sekolah.sch.id", "Budi Santoso", "Guru"},
	}

	for _, u := range users {
		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE email = ?", u.email).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("user already exists:", u.email)
			continue
		}

		if err := db.Exec(
			"INSERT INTO users (email, name, password_hash, is_active, created_at, updated_at) VALUES (?, ?, ?, true, now(), now())",
			u.email, u.name, string(hash),
		).Error; err != nil {
			log.Fatalf("failed to insert user %s: %v", u.email, err)
		}

		if err := db.Exec(
			`INSERT INTO employees (user_id, name, position_id, created_at, updated_at)
			 SELECT u.id, ?, p.id, now(), now() FROM users u, positions p WHERE u.email = ? AND p.name = ?`,
			u.name, u.email, u.position,
		).Error; err != nil {
			log.Fatalf("failed to insert employee %s: %v", u.name, err)
		}
		fmt.Println("Seeded user and employee:", u.email)
	}
}

func seedMeeting(db *gorm.DB) {
	title := "Rapat Koordinasi Mingguan"

	var exists int
	row := db.Raw("SELECT 1 FROM meetings WHERE title = ?", title).Row()
	if err := row.Scan(&exists); err == nil {
		fmt.Println("meeting already exists:", title)
		return
	}

	if err := db.Exec(
		"INSERT INTO meetings (title, meeting_date, location, created_at) VALUES (?, now(), 'Ruang Rapat Utama', now())",
		title,
	).Error; err != nil {
		log.Fatalf("failed to insert meeting: %v", err)
	}

	// invite every seeded user; employee_id carries the user id
	if err := db.Exec(
		`INSERT INTO meeting_participants (meeting_id, employee_id, status, created_at)
		 SELECT m.id, u.id, 'invited', now() FROM meetings m, users u WHERE m.title = ?`,
		title,
	).Error; err != nil {
		log.Fatalf("failed to insert participants: %v", err)
	}
	fmt.Println("Seeded meeting with participants:", title)
}

func seedOverrides(db *gorm.DB) {
	// Budi is a plain Guru but covers tahfidz this term
	email := "budi@sekolah.sch.id"

	var exists int
	row := db.Raw(
		"SELECT 1 FROM user_permissions up JOIN users u ON up.user_id = u.id WHERE u.email = ?", email,
	).Row()
	if err := row.Scan(&exists); err == nil {
		fmt.Println("override already exists for:", email)
		return
	}

	if err := db.Exec(
		`INSERT INTO user_permissions (user_id, permission_name, is_granted, created_at)
		 SELECT id, 'can_access_tahfidz', 1, now() FROM users WHERE email = ?`,
		email,
	).Error; err != nil {
		log.Fatalf("failed to insert override: %v", err)
	}
	fmt.Println("Seeded permission override for:", email)
}
