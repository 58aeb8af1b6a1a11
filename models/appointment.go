package models

import (
	"fmt"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// PaymentMethod is a closed set: stripe, paypal or cod. Wire values are
// parsed through ParsePaymentMethod so handlers dispatch on the enum, never
// on a raw string.
type PaymentMethod string

const (
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodPaypal PaymentMethod = "paypal"
	PaymentMethodCOD    PaymentMethod = "cod"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case PaymentMethodStripe, PaymentMethodPaypal, PaymentMethodCOD:
		return m, nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

type Appointment struct {
	gorm.Model
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	ServiceID     uint              `json:"service_id"`
	Service       Service           `json:"service" gorm:"foreignKey:ServiceID"`
	Date          string            `json:"date"`       // Format "YYYY-MM-DD"
	StartTime     string            `json:"start_time"` // Format "HH:MM" in 24h
	EndTime       string            `json:"end_time"`   // Format "HH:MM" in 24h
	Status        AppointmentStatus `json:"status"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	IsNewUser     bool              `json:"is_new_user"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// Confirm marks the appointment confirmed with the given payment details.
// Stripe confirmations pass PaymentPending (the gateway settles later);
// paypal and cod pass PaymentPaid.
func (a *Appointment) Confirm(tx *gorm.DB, method PaymentMethod, payment PaymentStatus) error {
	a.Status = StatusConfirmed
	a.PaymentMethod = method
	a.PaymentStatus = payment
	return tx.Save(a).Error
}

// Cancel sets the status to canceled unconditionally. There is no guard
// against an already confirmed or already canceled appointment.
func (a *Appointment) Cancel(tx *gorm.DB) error {
	a.Status = StatusCanceled
	return tx.Save(a).Error
}
