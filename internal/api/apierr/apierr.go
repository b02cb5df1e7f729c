// Package apierr classifies errors returned by the persistence layer so
// handlers can map store-enforced invariants (unique indexes, CHECK and
// foreign-key constraints) to client errors instead of a blanket 500.
//
// gorm translates driver errors when TranslateError is on, but the
// translation coverage differs between the postgres and sqlite drivers,
// so each predicate also falls back to message matching.
package apierr

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsUniqueViolation reports whether err is a duplicate-key failure on a
// unique index (e.g. collection name, blog slug).
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return containsAny(err,
		"duplicate key value",      // postgres
		"unique constraint failed", // sqlite
		"violates unique constraint",
	)
}

// IsCheckViolation reports whether err is a CHECK constraint failure
// (e.g. an invalid consultation service value).
func IsCheckViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	return containsAny(err,
		"violates check constraint", // postgres
		"check constraint failed",   // sqlite
	)
}

// IsFKViolation reports whether err is a foreign-key failure (e.g. an
// interior image pointing at a collection that vanished between the
// handler's existence check and the write).
func IsFKViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return containsAny(err,
		"violates foreign key constraint", // postgres
		"foreign key constraint failed",   // sqlite
	)
}

// IsNotFound reports whether err means the record did not resolve.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func containsAny(err error, needles ...string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}
