package models

import "time"

type Customer struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	CreditTerms string     `json:"creditTerms"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type CustomerInput struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CreditTerms string `json:"creditTerms"`
}

type CustomerPatch struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	CreditTerms *string `json:"creditTerms"`
}

type Vendor struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type VendorInput struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type VendorPatch struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

// ImportResult summarizes a bulk customer/vendor import.
type ImportResult struct {
	Created int           `json:"created"`
	Skipped int           `json:"skipped"`
	Errors  []ImportError `json:"errors"`
}

type ImportError struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// Technician is stored in both the technicians and service-techs collections.
type Technician struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type TechnicianInput struct {
	Name   string `json:"name" validate:"required"`
	Phone  string `json:"phone"`
	Email  string `json:"email" validate:"omitempty,email"`
	Active *bool  `json:"active"`
}

type TechnicianPatch struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Email  *string `json:"email"`
	Active *bool   `json:"active"`
}

type Quote struct {
	ID                string     `json:"id"`
	CustomerName      string     `json:"customerName"`
	CustomerPhone     string     `json:"customerPhone"`
	Items             []Item     `json:"items"`
	HardwareItem      string     `json:"hardwareItem"`
	HardwarePrice     float64    `json:"hardwarePrice"`
	GrandTotal        float64    `json:"grandTotal"`
	GrandTotalWithTax float64    `json:"grandTotalWithTax"`
	SpecialPricing    bool       `json:"specialPricing"`
	Notes             string     `json:"notes"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

type QuoteInput struct {
	CustomerName      string  `json:"customerName"`
	CustomerPhone     string  `json:"customerPhone"`
	Items             []Item  `json:"items"`
	HardwareItem      string  `json:"hardwareItem"`
	HardwarePrice     float64 `json:"hardwarePrice"`
	GrandTotal        float64 `json:"grandTotal"`
	GrandTotalWithTax float64 `json:"grandTotalWithTax"`
	SpecialPricing    bool    `json:"specialPricing"`
	Notes             string  `json:"notes"`
}

type QuotePatch struct {
	CustomerName      *string  `json:"customerName"`
	CustomerPhone     *string  `json:"customerPhone"`
	Items             *[]Item  `json:"items"`
	HardwareItem      *string  `json:"hardwareItem"`
	HardwarePrice     *float64 `json:"hardwarePrice"`
	GrandTotal        *float64 `json:"grandTotal"`
	GrandTotalWithTax *float64 `json:"grandTotalWithTax"`
	SpecialPricing    *bool    `json:"specialPricing"`
	Notes             *string  `json:"notes"`
}
