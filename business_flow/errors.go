// Package businessflow contains the core business logic and use cases for the scheme portal
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Scheme-related errors
	ErrSchemeNotFound  = errors.New("scheme not found")
	ErrInvalidCategory = errors.New("category is not a valid scheme category")
	ErrInvalidState    = errors.New("state is not a valid scheme state")
	ErrInvalidDate     = errors.New("date is not a valid RFC3339 date")

	// Admin-related errors
	ErrAdminNotFound         = errors.New("admin not found")
	ErrAdminInactive         = errors.New("admin account is inactive")
	ErrIncorrectPassword     = errors.New("incorrect password")
	ErrAdminAlreadyExists    = errors.New("admin with this email or username already exists")
	ErrSetupAlreadyCompleted = errors.New("setup already completed")
	ErrInvalidRole           = errors.New("role is not a valid admin role")
	ErrSelfTargetNotAllowed  = errors.New("operation cannot target your own account")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func IsSchemeNotFound(err error) bool {
	return errors.Is(err, ErrSchemeNotFound)
}

func IsInvalidCategory(err error) bool {
	return errors.Is(err, ErrInvalidCategory)
}

func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

func IsInvalidDate(err error) bool {
	return errors.Is(err, ErrInvalidDate)
}

func IsAdminNotFound(err error) bool {
	return errors.Is(err, ErrAdminNotFound)
}

func IsAdminInactive(err error) bool {
	return errors.Is(err, ErrAdminInactive)
}

func IsIncorrectPassword(err error) bool {
	return errors.Is(err, ErrIncorrectPassword)
}

func IsAdminAlreadyExists(err error) bool {
	return errors.Is(err, ErrAdminAlreadyExists)
}

func IsSetupAlreadyCompleted(err error) bool {
	return errors.Is(err, ErrSetupAlreadyCompleted)
}

func IsInvalidRole(err error) bool {
	return errors.Is(err, ErrInvalidRole)
}

func IsSelfTargetNotAllowed(err error) bool {
	return errors.Is(err, ErrSelfTargetNotAllowed)
}
