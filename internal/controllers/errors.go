package controllers

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// isDuplicateKey reports whether err is a unique-constraint violation.
// GORM translates these to ErrDuplicatedKey; the pq code is kept as a
// fallback for drivers without error translation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
