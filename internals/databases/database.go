package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	campusModel "eduportal_backend/internals/features/academics/campus/model"
	courseModel "eduportal_backend/internals/features/academics/courses/model"
	semesterModel "eduportal_backend/internals/features/academics/semesters/model"
	attendanceModel "eduportal_backend/internals/features/attendance/model"
	commentModel "eduportal_backend/internals/features/comments/model"
	enrollmentModel "eduportal_backend/internals/features/enrollments/model"
	noticeModel "eduportal_backend/internals/features/notices/model"
	resourceModel "eduportal_backend/internals/features/resources/model"
	studentModel "eduportal_backend/internals/features/students/model"
	userModel "eduportal_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=eduportal&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // pgbouncer-safe
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")

	if err := AutoMigrate(DB); err != nil {
		log.Fatalf("❌ auto migrate failed: %v", err)
	}
}

// AutoMigrate keeps the schema in sync; ordered parents-first so FK
// constraints resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&campusModel.CampusModel{},
		&semesterModel.SemesterModel{},
		&courseModel.CourseModel{},
		&courseModel.CourseSlotModel{},
		&courseModel.SubGroupModel{},
		&studentModel.StudentModel{},
		&enrollmentModel.EnrollmentModel{},
		&attendanceModel.AttendanceModel{},
		&noticeModel.ClassNoticeModel{},
		&resourceModel.LearningResourceModel{},
		&resourceModel.LearningResourceItemModel{},
		&commentModel.CommentModel{},
	)
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("⚠️ pool tuning skipped: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(15)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}
