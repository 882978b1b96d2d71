package domain

import (
	"errors"
	"fmt"
)

// Taxonomy bases. Specific sentinels below wrap one of these, so callers can
// match either the exact condition or the whole class with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrPermission = errors.New("permission denied")
	ErrNotFound   = errors.New("not found")
	ErrStore      = errors.New("store failure")
)

// ErrInvalidCredentials deliberately sits outside the taxonomy: a failed
// login maps to 401, and must not reveal which field was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

var (
	ErrInvalidAmount      = fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	ErrDescriptionTooLong = fmt.Errorf("%w: description exceeds %d characters", ErrValidation, MaxDescriptionLen)
	ErrUnknownCategory    = fmt.Errorf("%w: category does not exist", ErrValidation)
	ErrInvalidRole        = fmt.Errorf("%w: role must be admin or customer", ErrValidation)
	ErrSelfDelete         = fmt.Errorf("%w: cannot delete your own account", ErrValidation)

	ErrUserExists     = fmt.Errorf("%w: username or email already taken", ErrConflict)
	ErrCategoryExists = fmt.Errorf("%w: category name already exists", ErrConflict)

	ErrUserNotFound     = fmt.Errorf("%w: user", ErrNotFound)
	ErrExpenseNotFound  = fmt.Errorf("%w: expense", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	ErrNotOwner = fmt.Errorf("%w: expense belongs to another user", ErrPermission)
)
