package models

import (
	"fmt"
	"time"
)

const (
	ResidentialStatusOpen  = "open"
	ServiceStatusRequested = "Requested"
)

// ResidentialRequestNumberFor formats a residential request sequence value.
func ResidentialRequestNumberFor(seq int64) string {
	return fmt.Sprintf("RR-%04d", seq)
}

// ServiceRequestNumberFor builds RQR-<year>-<last 6 digits of unix millis>.
func ServiceRequestNumberFor(t time.Time) string {
	return fmt.Sprintf("RQR-%d-%06d", t.Year(), t.UnixMilli()%1000000)
}

// TechContact is a resolved technician reference.
type TechContact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EmailNotification records the outcome of notifying an assigned technician.
type EmailNotification struct {
	Sent       bool      `json:"sent"`
	Reason     string    `json:"reason,omitempty"`
	MessageID  string    `json:"messageId,omitempty"`
	NotifiedAt time.Time `json:"notifiedAt"`
}

type ResidentialRequest struct {
	ID                string             `json:"id"`
	RequestNumber     string             `json:"requestNumber"`
	Customer          CustomerInfo       `json:"customer"`
	Description       string             `json:"description"`
	AssignedTech      string             `json:"assignedTech"`
	AssignedTechID    string             `json:"assignedTechId"`
	AssignedTechEmail string             `json:"assignedTechEmail"`
	Status            string             `json:"status"`
	EmailNotification *EmailNotification `json:"emailNotification,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

type ResidentialRequestInput struct {
	Customer       CustomerInfo `json:"customer"`
	Description    string       `json:"description"`
	AssignedTech   string       `json:"assignedTech"`
	AssignedTechID string       `json:"assignedTechId"`
	Status         string       `json:"status"`
}

// ResidentialRequestPatch lists the updatable fields; requestNumber is immutable.
type ResidentialRequestPatch struct {
	Customer       *CustomerInfo `json:"customer"`
	Description    *string       `json:"description"`
	AssignedTech   *string       `json:"assignedTech"`
	AssignedTechID *string       `json:"assignedTechId"`
	Status         *string       `json:"status"`
}

type ServiceRequest struct {
	ID                string             `json:"id"`
	RequestNumber     string             `json:"requestNumber"`
	Customer          CustomerInfo       `json:"customer"`
	Description       string             `json:"description"`
	AssignedTechID    string             `json:"assignedTechId"`
	AssignedTechName  string             `json:"assignedTechName"`
	AssignedTechEmail string             `json:"assignedTechEmail,omitempty"`
	Status            string             `json:"status"`
	EmailNotification *EmailNotification `json:"emailNotification,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

type ServiceRequestInput struct {
	Customer         CustomerInfo `json:"customer"`
	Description      string       `json:"description"`
	AssignedTechID   string       `json:"assignedTechId"`
	AssignedTechName string       `json:"assignedTechName"`
	Status           string       `json:"status"`
}

// ServiceRequestPatch merges the customer snapshot field by field.
type ServiceRequestPatch struct {
	Customer         *CustomerPatch `json:"customer"`
	Description      *string        `json:"description"`
	AssignedTechID   *string        `json:"assignedTechId"`
	AssignedTechName *string        `json:"assignedTechName"`
	Status           *string        `json:"status"`
}
