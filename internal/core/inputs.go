package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CustomerInput carries the fields of a customer save. A zero or unknown ID
// means insert; an ID matching an existing customer means update in place.
type CustomerInput struct {
	ID          int             `json:"id,omitempty"`
	Name        string          `json:"name"`
	Contact     string          `json:"contact"`
	Address     string          `json:"address,omitempty"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Notes       string          `json:"notes,omitempty"`
}

// Normalize trims whitespace from the free-text fields.
func (in *CustomerInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Contact = strings.TrimSpace(in.Contact)
	in.Address = strings.TrimSpace(in.Address)
	in.Notes = strings.TrimSpace(in.Notes)
}

// Validate rejects the input before any store write happens.
func (in *CustomerInput) Validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: customer name must not be empty", ErrValidation)
	}
	if in.Contact == "" {
		return fmt.Errorf("%w: customer contact must not be empty", ErrValidation)
	}
	if in.CreditLimit.IsNegative() {
		return fmt.Errorf("%w: credit limit must be >= 0, got %s", ErrValidation, in.CreditLimit)
	}
	return nil
}

// CreditInput carries the fields of a credit entry save.
type CreditInput struct {
	ID         int             `json:"id,omitempty"`
	CustomerID int             `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	IssueDate  string          `json:"issue_date"`
	DueDate    string          `json:"due_date"`
	Notes      string          `json:"notes,omitempty"`
}

// Normalize trims field whitespace and defaults a blank issue date to the
// due date, mirroring how a form omits the issue field.
func (in *CreditInput) Normalize() {
	in.IssueDate = strings.TrimSpace(in.IssueDate)
	in.DueDate = strings.TrimSpace(in.DueDate)
	in.Notes = strings.TrimSpace(in.Notes)
	if in.IssueDate == "" && in.DueDate != "" {
		in.IssueDate = in.DueDate
	}
}

// Validate enforces a positive amount and parseable dates. An issue date
// after the due date is expected but deliberately not rejected.
func (in *CreditInput) Validate() error {
	if in.CustomerID <= 0 {
		return fmt.Errorf("%w: credit entry must reference a customer", ErrValidation)
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: credit amount must be > 0, got %s", ErrValidation, in.Amount)
	}
	if in.IssueDate == "" || in.DueDate == "" {
		return fmt.Errorf("%w: credit entry requires both an issue and a due date", ErrValidation)
	}
	if _, err := ParseDate(in.IssueDate); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := ParseDate(in.DueDate); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// PaymentInput carries the fields of a payment entry save.
type PaymentInput struct {
	ID         int             `json:"id,omitempty"`
	CustomerID int             `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Category   string          `json:"category,omitempty"`
	Method     string          `json:"method,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

// Normalize trims field whitespace.
func (in *PaymentInput) Normalize() {
	in.Date = strings.TrimSpace(in.Date)
	in.Category = strings.TrimSpace(in.Category)
	in.Method = strings.TrimSpace(in.Method)
	in.Notes = strings.TrimSpace(in.Notes)
}

// Validate enforces a positive amount and a parseable payment date.
// There is no check against the outstanding balance: overpayment is
// allowed and produces a negative balance.
func (in *PaymentInput) Validate() error {
	if in.CustomerID <= 0 {
		return fmt.Errorf("%w: payment entry must reference a customer", ErrValidation)
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: payment amount must be > 0, got %s", ErrValidation, in.Amount)
	}
	if in.Date == "" {
		return fmt.Errorf("%w: payment entry requires a date", ErrValidation)
	}
	if _, err := ParseDate(in.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
