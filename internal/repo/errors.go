package repo

import (
	"strings"

	"gorm.io/gorm"
)

// notDeleted is composed into every query so no call site can forget the
// soft-delete filter.
func notDeleted(q *gorm.DB) *gorm.DB {
	return q.Where("is_deleted = ?", false)
}

// isDupKey matches unique-constraint violations across drivers without
// depending on gorm.ErrDuplicatedKey (varies by version and dialect).
func isDupKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}

func isFKViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}
