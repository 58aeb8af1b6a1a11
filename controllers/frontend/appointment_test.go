package frontend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brightsmile/booking-app/db"
	"github.com/brightsmile/booking-app/models"
)

// setupApp points the package-global DB at a fresh in-memory sqlite
// instance and registers the frontend handlers without the JWT middleware;
// authenticated identity is injected per route.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(
		&models.User{}, &models.Service{}, &models.BusinessHour{},
		&models.Appointment{}, &models.Review{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.DB = gdb

	app := fiber.New()
	app.Get("/available-slots", GetAvailableSlots)
	app.Post("/appointments", CreateAppointment)
	app.Get("/appointments/:id", GetAppointment)
	app.Patch("/appointments/:id/confirm", ConfirmAppointment)
	app.Patch("/appointments/:id/update-status", UpdateAppointmentStatus)
	app.Post("/appointments/cancel", CancelAppointment)
	app.Get("/latest-featured-reviews", LatestFeaturedReviews)
	app.Get("/myappointments", func(c *fiber.Ctx) error {
		c.Locals("email", "jo@example.com")
		return GetUserAppointments(c)
	})
	return app
}

func seedService(t *testing.T, duration int) models.Service {
	t.Helper()
	service := models.Service{Name: "Checkup", Duration: duration, Cost: 50}
	if err := db.DB.Create(&service).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}
	return service
}

func seedBusinessHours(t *testing.T, day, open, close string) {
	t.Helper()
	if err := db.DB.Create(&models.BusinessHour{Day: day, OpenTime: open, CloseTime: close}).Error; err != nil {
		t.Fatalf("failed to seed business hours: %v", err)
	}
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("failed to decode response %q: %v", raw, err)
		}
	}
	return resp, out
}

func TestGetAvailableSlotsNoBusinessHours(t *testing.T) {
	app := setupApp(t)
	seedService(t, 30)

	// 2026-09-07 is a Monday; no hours are configured for it
	resp, body := doJSON(t, app, "GET", "/available-slots?date=2026-09-07&service_id=1", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %v, want %v", resp.StatusCode, http.StatusNotFound)
	}
	if body["message"] != "Business hours not set for this day" {
		t.Errorf("message = %v, want business-hours error", body["message"])
	}
}

func TestGetAvailableSlotsUnknownService(t *testing.T) {
	app := setupApp(t)
	seedBusinessHours(t, "Monday", "09:00", "11:00")

	resp, body := doJSON(t, app, "GET", "/available-slots?date=2026-09-07&service_id=99", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %v, want %v", resp.StatusCode, http.StatusNotFound)
	}
	if body["message"] != "Service not found" {
		t.Errorf("message = %v, want service error", body["message"])
	}
}

func TestGetAvailableSlotsExcludesBooked(t *testing.T) {
	app := setupApp(t)
	service := seedService(t, 30)
	seedBusinessHours(t, "Monday", "09:00", "11:00")

	appt := models.Appointment{
		Email: "jo@example.com", ServiceID: service.ID,
		Date: "2026-09-07", StartTime: "09:30", EndTime: "10:00",
	}
	if err := db.DB.Create(&appt).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}

	req := httptest.NewRequest("GET", fmt.Sprintf("/available-slots?date=2026-09-07&service_id=%d", service.ID), nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %v, want %v", resp.StatusCode, http.StatusOK)
	}

	var slots []struct {
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&slots); err != nil {
		t.Fatalf("failed to decode slots: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3: %v", len(slots), slots)
	}
	for _, s := range slots {
		if s.StartTime == "09:30" {
			t.Errorf("booked slot 09:30 was returned")
		}
	}
}

// Canceled appointments still block their slot: the overlap query does not
// filter by status.
func TestGetAvailableSlotsCanceledStillBlocks(t *testing.T) {
	app := setupApp(t)
	service := seedService(t, 30)
	seedBusinessHours(t, "Monday", "09:00", "11:00")

	appt := models.Appointment{
		Email: "jo@example.com", ServiceID: service.ID,
		Date: "2026-09-07", StartTime: "09:30", EndTime: "10:00",
		Status: models.StatusCanceled,
	}
	if err := db.DB.Create(&appt).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}

	req := httptest.NewRequest("GET", fmt.Sprintf("/available-slots?date=2026-09-07&service_id=%d", service.ID), nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var slots []map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&slots); err != nil {
		t.Fatalf("failed to decode slots: %v", err)
	}
	if len(slots) != 3 {
		t.Errorf("got %d slots, want 3 (canceled appointment should still block)", len(slots))
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "POST", "/appointments", map[string]any{
		"name": "Jo",
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %v, want %v", resp.StatusCode, http.StatusUnprocessableEntity)
	}
	errs, _ := body["errors"].(map[string]any)
	for _, field := range []string{"email", "phone", "service_id", "date", "start_time", "end_time"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("errors missing field %q: %v", field, errs)
		}
	}
}

func TestCreateAppointmentRejectsInvertedTimes(t *testing.T) {
	app := setupApp(t)
	service := seedService(t, 30)

	resp, body := doJSON(t, app, "POST", "/appointments", map[string]any{
		"name": "Jo", "email": "jo@example.com", "phone": "5551234",
		"service_id": service.ID, "date": "2026-09-07",
		"start_time": "10:00", "end_time": "09:30",
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %v, want %v", resp.StatusCode, http.StatusUnprocessableEntity)
	}
	errs, _ := body["errors"].(map[string]any)
	if _, ok := errs["end_time"]; !ok {
		t.Errorf("errors missing end_time: %v", errs)
	}
}

func TestCreateAppointmentRoundTrip(t *testing.T) {
	app := setupApp(t)
	service := seedService(t, 30)

	resp, body := doJSON(t, app, "POST", "/appointments", map[string]any{
		"name": "Jo", "email": "jo@example.com", "phone": "5551234",
		"service_id": service.ID, "date": "2026-09-07",
		"start_time": "09:00", "end_time": "09:30",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %v, want %v (body %v)", resp.StatusCode, http.StatusCreated, body)
	}
	if body["token"] == "" || body["token"] == nil {
		t.Error("response has no access token")
	}
	created, _ := body["appointment"].(map[string]any)
	if created["status"] != string(models.StatusPending) {
		t.Errorf("status = %v, want pending", created["status"])
	}
	if created["is_new_user"] != true {
		t.Errorf("is_new_user = %v, want true", created["is_new_user"])
	}

	// The user was provisioned as a customer
	var user models.User
	if err := db.DB.Where("email = ?", "jo@example.com").First(&user).Error; err != nil {
		t.Fatalf("provisioned user not found: %v", err)
	}
	if user.Role != models.RoleCustomer {
		t.Errorf("user role = %v, want %v", user.Role, models.RoleCustomer)
	}
	if user.Password == "" {
		t.Error("provisioned user has no password hash")
	}

	// Reading it back returns the submitted fields unchanged
	id := int(created["ID"].(float64))
	resp, got := doJSON(t, app, "GET", fmt.Sprintf("/appointments/%d", id), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %v, want %v", resp.StatusCode, http.StatusOK)
	}
	if got["date"] != "2026-09-07" || got["start_time"] != "09:00" || got["end_time"] != "09:30" {
		t.Errorf("round-trip mismatch: %v", got)
	}
	if int(got["service_id"].(float64)) != int(service.ID) {
		t.Errorf("service_id = %v, want %d", got["service_id"], service.ID)
	}
}

func TestCreateAppointmentExistingUserNotReprovisioned(t *testing.T) {
	app := setupApp(t)
	service := seedService(t, 30)
	if err := db.DB.Create(&models.User{Name: "Jo", Email: "jo@example.com", Password: "hash", Role: models.RoleCustomer}).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	resp, body := doJSON(t, app, "POST", "/appointments", map[string]any{
		"name": "Jo", "email": "jo@example.com", "phone": "5551234",
		"service_id": service.ID, "date": "2026-09-07",
		"start_time": "09:00", "end_time": "09:30",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %v, want %v", resp.StatusCode, http.StatusCreated)
	}
	created, _ := body["appointment"].(map[string]any)
	if created["is_new_user"] != false {
		t.Errorf("is_new_user = %v, want false", created["is_new_user"])
	}

	var count int64
	db.DB.Model(&models.User{}).Where("email = ?", "jo@example.com").Count(&count)
	if count != 1 {
		t.Errorf("user count = %d, want 1", count)
	}
}

func TestConfirmUnknownAppointment(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "PATCH", "/appointments/999/confirm", map[string]any{
		"payment_method": "cod",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %v, want %v", resp.StatusCode, http.StatusNotFound)
	}
	if body["message"] != "Appointment not found" {
		t.Errorf("message = %v, want not-found error", body["message"])
	}
}

func TestConfirmRejectsUnknownPaymentMethod(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, "PATCH", "/appointments/1/confirm", map[string]any{
		"payment_method": "bitcoin",
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %v, want %v", resp.StatusCode, http.StatusUnprocessableEntity)
	}
}

func TestConfirmWithCOD(t *testing.T) {
	app := setupApp(t)
	service := seedService(t, 30)
	appt := models.Appointment{
		Email: "jo@example.com", ServiceID: service.ID,
		Date: "2026-09-07", StartTime: "09:00", EndTime: "09:30",
		Status: models.StatusPending,
	}
	if err := db.DB.Create(&appt).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}

	resp, body := doJSON(t, app, "PATCH", fmt.Sprintf("/appointments/%d/confirm", appt.ID), map[string]any{
		"payment_method": "cod",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %v, want %v (body %v)", resp.StatusCode, http.StatusOK, body)
	}
	if body["message"] != "Appointment confirmed with Cash on Delivery" {
		t.Errorf("message = %v", body["message"])
	}

	var got models.Appointment
	db.DB.First(&got, appt.ID)
	if got.Status != models.StatusConfirmed {
		t.Errorf("status = %v, want confirmed", got.Status)
	}
	if got.PaymentMethod != models.PaymentMethodCOD || got.PaymentStatus != models.PaymentPaid {
		t.Errorf("payment = %v/%v, want cod/paid", got.PaymentMethod, got.PaymentStatus)
	}
}

func TestConfirmWithPaypal(t *testing.T) {
	app := setupApp(t)
	service := seedService(t, 30)
	appt := models.Appointment{
		Email: "jo@example.com", ServiceID: service.ID,
		Date: "2026-09-07", StartTime: "09:00", EndTime: "09:30",
	}
	if err := db.DB.Create(&appt).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}

	resp, body := doJSON(t, app, "PATCH", fmt.Sprintf("/appointments/%d/confirm", appt.ID), map[string]any{
		"payment_method": "paypal",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %v, want %v (body %v)", resp.StatusCode, http.StatusOK, body)
	}

	var got models.Appointment
	db.DB.First(&got, appt.ID)
	if got.Status != models.StatusConfirmed || got.PaymentStatus != models.PaymentPaid {
		t.Errorf("state = %v/%v, want confirmed/paid", got.Status, got.PaymentStatus)
	}
}

// update-status overwrites payment_status but leaves payment_method alone,
// even though the request requires one.
func TestUpdateStatusIgnoresPaymentMethod(t *testing.T) {
	app := setupApp(t)
	service := seedService(t, 30)
	appt := models.Appointment{
		Email: "jo@example.com", ServiceID: service.ID,
		Date: "2026-09-07", StartTime: "09:00", EndTime: "09:30",
		Status:        models.StatusConfirmed,
		PaymentMethod: models.PaymentMethodStripe,
		PaymentStatus: models.PaymentPending,
	}
	if err := db.DB.Create(&appt).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}

	resp, body := doJSON(t, app, "PATCH", fmt.Sprintf("/appointments/%d/update-status", appt.ID), map[string]any{
		"payment_status": "paid",
		"payment_method": "paypal",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %v, want %v (body %v)", resp.StatusCode, http.StatusOK, body)
	}
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}

	var got models.Appointment
	db.DB.First(&got, appt.ID)
	if got.PaymentStatus != models.PaymentPaid {
		t.Errorf("PaymentStatus = %v, want paid", got.PaymentStatus)
	}
	if got.PaymentMethod != models.PaymentMethodStripe {
		t.Errorf("PaymentMethod = %v, want stripe (request value must not be applied)", got.PaymentMethod)
	}
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, "PATCH", "/appointments/999/update-status", map[string]any{
		"payment_status": "paid",
		"payment_method": "cod",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %v, want %v", resp.StatusCode, http.StatusNotFound)
	}
}

func TestCancelAppointment(t *testing.T) {
	app := setupApp(t)
	service := seedService(t, 30)
	appt := models.Appointment{
		Email: "jo@example.com", ServiceID: service.ID,
		Date: "2026-09-07", StartTime: "09:00", EndTime: "09:30",
	}
	if err := db.DB.Create(&appt).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}

	resp, body := doJSON(t, app, "POST", "/appointments/cancel", map[string]any{"id": appt.ID})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %v, want %v (body %v)", resp.StatusCode, http.StatusOK, body)
	}

	// Canceling again succeeds as well; the status just stays canceled
	resp, _ = doJSON(t, app, "POST", "/appointments/cancel", map[string]any{"id": appt.ID})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("second cancel status = %v, want %v", resp.StatusCode, http.StatusOK)
	}

	var got models.Appointment
	db.DB.First(&got, appt.ID)
	if got.Status != models.StatusCanceled {
		t.Errorf("status = %v, want canceled", got.Status)
	}
}

func TestCancelUnknownAppointment(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, "POST", "/appointments/cancel", map[string]any{"id": 999})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %v, want %v", resp.StatusCode, http.StatusNotFound)
	}
}

func TestGetUserAppointmentsScopedToCaller(t *testing.T) {
	app := setupApp(t)
	service := seedService(t, 30)
	for _, email := range []string{"jo@example.com", "other@example.com", "jo@example.com"} {
		appt := models.Appointment{
			Email: email, ServiceID: service.ID,
			Date: "2026-09-07", StartTime: "09:00", EndTime: "09:30",
		}
		if err := db.DB.Create(&appt).Error; err != nil {
			t.Fatalf("failed to seed appointment: %v", err)
		}
	}

	resp, body := doJSON(t, app, "GET", "/myappointments", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %v, want %v", resp.StatusCode, http.StatusOK)
	}
	appointments, _ := body["appointments"].([]any)
	if len(appointments) != 2 {
		t.Errorf("got %d appointments, want 2", len(appointments))
	}
}
