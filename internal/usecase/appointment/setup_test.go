package appointment

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aupetservices/petcare-scheduler/internal/audit"
	"github.com/aupetservices/petcare-scheduler/internal/infra/repository"
	"github.com/aupetservices/petcare-scheduler/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// uma única conexão: o banco em memória não é compartilhado
	// entre conexões, e os use cases fazem leituras concorrentes
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Tutor{},
		&models.Pet{},
		&models.Provider{},
		&models.Service{},
		&models.Appointment{},
		&models.ChatRoom{},
		&models.ChatRoomParticipant{},
		&models.Message{},
		&models.Review{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func newRepo(t *testing.T) (*gorm.DB, *repository.AppointmentGormRepository) {
	t.Helper()
	db := setupTestDB(t)
	return db, repository.NewAppointmentGormRepository(db)
}

// recorderReporter captura eventos de auditoria de forma síncrona.
type recorderReporter struct {
	events []audit.Event
}

func (r *recorderReporter) Dispatch(ev audit.Event) {
	r.events = append(r.events, ev)
}

func (r *recorderReporter) actions() []string {
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

// --------------------------------------------------
// seeds
// --------------------------------------------------

func seedUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	u := models.User{Name: name, Email: name + "@example.com", PasswordHash: "x"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedTutor(t *testing.T, db *gorm.DB, name, userID string) models.Tutor {
	t.Helper()
	tu := models.Tutor{Name: name, UserID: userID}
	if err := db.Create(&tu).Error; err != nil {
		t.Fatalf("seed tutor: %v", err)
	}
	return tu
}

func seedPet(t *testing.T, db *gorm.DB, tutorID, name string) models.Pet {
	t.Helper()
	p := models.Pet{TutorID: tutorID, Name: name, Species: "dog"}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed pet: %v", err)
	}
	return p
}

func seedProvider(t *testing.T, db *gorm.DB, name string, userID *string) models.Provider {
	t.Helper()
	p := models.Provider{Name: name, UserID: userID}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed provider: %v", err)
	}
	return p
}

func seedAppointment(t *testing.T, db *gorm.DB, ap models.Appointment) models.Appointment {
	t.Helper()
	if ap.Status == "" {
		ap.Status = "pending"
	}
	if err := db.Create(&ap).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return ap
}

func at(base time.Time, offset time.Duration) time.Time {
	return base.Add(offset)
}
