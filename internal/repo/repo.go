package repo

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrVersionConflict means the cart row changed between read and
	// write; the caller reloads and retries.
	ErrVersionConflict = errors.New("cart version conflict")
)

type GormRepo struct {
	DB *gorm.DB
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
