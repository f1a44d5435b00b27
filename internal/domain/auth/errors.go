package auth

import "errors"

// Auth domain errors. Token issuance lives in the account CRUD layer; the
// scheduling API only verifies tokens and gates by role.
var (
	ErrInvalidToken           = errors.New("invalid or missing token")
	ErrTokenExpired           = errors.New("token expired")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
