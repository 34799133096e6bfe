package store

import "errors"

var (
	ErrDuplicateEmail   = errors.New("an account with this email already exists")
	ErrNotFound         = errors.New("not found")
	ErrInUse            = errors.New("department is assigned to one or more employees")
	ErrSelfDeletion     = errors.New("you cannot delete your own account")
	ErrEmptyItems       = errors.New("please add at least one item with a name")
	ErrInvalidState     = errors.New("only pending requests can be changed")
	ErrMissingField     = errors.New("required field is empty")
	ErrInvalidRole      = errors.New("unknown role")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	ErrStorageWriteFailed = errors.New("storage write failed")
	ErrStorageCorrupt     = errors.New("storage corrupt")
)
