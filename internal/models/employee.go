package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee identifies the clerk who rang up a bill.
type Employee struct {
	name string
}

// NewEmployee creates an Employee with the given name.
func NewEmployee(name string) Employee {
	return Employee{name: name}
}

// Name returns the employee's name.
func (e Employee) Name() string {
	return e.name
}

// Clerk is a registered employee account.
type Clerk struct {
	// ID is the unique identifier for the clerk (UUID format).
	ID string

	// Name is the login name, also printed on receipts.
	Name string

	// PasswordHash is the bcrypt hash of the clerk's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewClerk creates a clerk account with a fresh ID.
func NewClerk(name, passwordHash string) *Clerk {
	return &Clerk{
		ID:           uuid.New().String(),
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}

// Employee returns the billing identity of this clerk.
func (c *Clerk) Employee() Employee {
	return NewEmployee(c.Name)
}
