package models

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&Service{}, &Appointment{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestParsePaymentMethod(t *testing.T) {
	for _, s := range []string{"stripe", "paypal", "cod"} {
		m, err := ParsePaymentMethod(s)
		if err != nil {
			t.Errorf("ParsePaymentMethod(%q) error = %v, want nil", s, err)
		}
		if string(m) != s {
			t.Errorf("ParsePaymentMethod(%q) = %v, want %v", s, m, s)
		}
	}
	for _, s := range []string{"", "bitcoin", "STRIPE", "card"} {
		if _, err := ParsePaymentMethod(s); err == nil {
			t.Errorf("ParsePaymentMethod(%q) error = nil, want error", s)
		}
	}
}

func TestAppointmentDefaultsToPending(t *testing.T) {
	db := testDB(t)
	appt := Appointment{Name: "Jo", Email: "jo@example.com", Date: "2026-09-01", StartTime: "09:00", EndTime: "09:30"}
	if err := db.Create(&appt).Error; err != nil {
		t.Fatalf("failed to create appointment: %v", err)
	}
	if appt.Status != StatusPending {
		t.Errorf("Appointment.Status = %v, want %v", appt.Status, StatusPending)
	}
}

func TestAppointmentConfirm(t *testing.T) {
	db := testDB(t)
	appt := Appointment{Email: "jo@example.com", Date: "2026-09-01", StartTime: "09:00", EndTime: "09:30"}
	if err := db.Create(&appt).Error; err != nil {
		t.Fatalf("failed to create appointment: %v", err)
	}

	if err := appt.Confirm(db, PaymentMethodCOD, PaymentPaid); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}

	var got Appointment
	if err := db.First(&got, appt.ID).Error; err != nil {
		t.Fatalf("failed to reload appointment: %v", err)
	}
	if got.Status != StatusConfirmed {
		t.Errorf("Status = %v, want %v", got.Status, StatusConfirmed)
	}
	if got.PaymentMethod != PaymentMethodCOD {
		t.Errorf("PaymentMethod = %v, want %v", got.PaymentMethod, PaymentMethodCOD)
	}
	if got.PaymentStatus != PaymentPaid {
		t.Errorf("PaymentStatus = %v, want %v", got.PaymentStatus, PaymentPaid)
	}
}

func TestAppointmentConfirmStripeLeavesPaymentPending(t *testing.T) {
	db := testDB(t)
	appt := Appointment{Email: "jo@example.com", Date: "2026-09-01", StartTime: "09:00", EndTime: "09:30"}
	if err := db.Create(&appt).Error; err != nil {
		t.Fatalf("failed to create appointment: %v", err)
	}

	if err := appt.Confirm(db, PaymentMethodStripe, PaymentPending); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if appt.PaymentStatus != PaymentPending {
		t.Errorf("PaymentStatus = %v, want %v", appt.PaymentStatus, PaymentPending)
	}
}

// Cancel has no guard: canceling twice, or canceling after confirm, both
// succeed and leave the status canceled.
func TestAppointmentCancelIsUnguarded(t *testing.T) {
	db := testDB(t)
	appt := Appointment{Email: "jo@example.com", Date: "2026-09-01", StartTime: "09:00", EndTime: "09:30"}
	if err := db.Create(&appt).Error; err != nil {
		t.Fatalf("failed to create appointment: %v", err)
	}

	if err := appt.Confirm(db, PaymentMethodPaypal, PaymentPaid); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if err := appt.Cancel(db); err != nil {
		t.Fatalf("Cancel() after confirm: error = %v", err)
	}
	if err := appt.Cancel(db); err != nil {
		t.Fatalf("Cancel() twice: error = %v", err)
	}

	var got Appointment
	if err := db.First(&got, appt.ID).Error; err != nil {
		t.Fatalf("failed to reload appointment: %v", err)
	}
	if got.Status != StatusCanceled {
		t.Errorf("Status = %v, want %v", got.Status, StatusCanceled)
	}
}
