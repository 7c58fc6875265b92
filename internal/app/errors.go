package app

import "fmt"

// DomainError is an expected failure with a stable machine-readable code the
// admin UI switches on (INVALID_PASSWORD, GITHUB_USER_NOT_FOUND, ...).
// Anything else surfaces as a generic 500.
type DomainError struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func domainError(status int, code, message string, details any) *DomainError {
	return &DomainError{Status: status, Code: code, Message: message, Details: details}
}
