package services

import (
	"errors"
	"fmt"
)

// ErrUnserviceableArea is the sentinel for order attempts whose destination
// pin code is not in the serviceable set. No stock is touched when this error
// occurs. Use errors.Is against this sentinel; the concrete
// UnserviceableAreaError carries the rejected code.
var ErrUnserviceableArea = errors.New("delivery is not available for this area")

// UnserviceableAreaError reports which destination code was rejected.
type UnserviceableAreaError struct {
	PinCode string
}

// NewUnserviceableAreaError creates an UnserviceableAreaError for the given code.
func NewUnserviceableAreaError(pinCode string) *UnserviceableAreaError {
	return &UnserviceableAreaError{PinCode: pinCode}
}

// Error implements the error interface.
func (e *UnserviceableAreaError) Error() string {
	return fmt.Sprintf("delivery is not available for this area: %s", e.PinCode)
}

// Unwrap returns ErrUnserviceableArea to support errors.Is.
func (e *UnserviceableAreaError) Unwrap() error {
	return ErrUnserviceableArea
}

// ServiceArea is a domain service that decides whether a destination pin code
// is deliverable. The recognized set is configuration, not an algorithm, so it
// can be swapped for a geographic or range-based rule without changing callers.
//
// Matching is exact and case-sensitive as configured. Unrecognized codes,
// including malformed ones, are simply not serviceable; no error is raised.
//
// Example usage:
//
//	area := services.NewServiceArea([]string{"62701", "SW1A 1AA"})
//	if !area.IsServiceable("99999") {
//	    // reject the order attempt before touching any stock
//	}
type ServiceArea struct {
	codes map[string]struct{}
}

// NewServiceArea creates a ServiceArea recognizing exactly the given codes.
func NewServiceArea(pinCodes []string) ServiceArea {
	codes := make(map[string]struct{}, len(pinCodes))
	for _, code := range pinCodes {
		codes[code] = struct{}{}
	}
	return ServiceArea{codes: codes}
}

// IsServiceable reports whether delivery is permitted for the given pin code.
// Pure function with no side effects.
func (a ServiceArea) IsServiceable(pinCode string) bool {
	_, ok := a.codes[pinCode]
	return ok
}
