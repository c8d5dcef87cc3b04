package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/alanalzi/jalin-alam-project/internal/apierror"
	"github.com/alanalzi/jalin-alam-project/internal/model"

	"gorm.io/gorm"
)

// nullIfEmpty normalizes an explicit empty string to NULL. Absent (nil)
// pointers never reach this function — they mean "leave the column alone".
func nullIfEmpty(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}

// setField records a column update for a present request field, applying the
// empty-string → NULL normalization.
func setField(fields map[string]interface{}, column string, value *string) {
	if value == nil {
		return
	}
	if normalized := nullIfEmpty(value); normalized == nil {
		fields[column] = nil
	} else {
		fields[column] = *normalized
	}
}

// parseDatePtr converts an optional wire date string. Empty string means
// NULL; a malformed value is a validation error naming the field.
func parseDatePtr(field string, s *string) (*model.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := model.ParseDate(*s)
	if err != nil {
		return nil, apierror.Validation(fmt.Sprintf("Invalid %s: expected YYYY-MM-DD", field))
	}
	return &d, nil
}

// notFoundOr maps gorm's record-not-found to a 404-kind error and wraps
// everything else as internal.
func notFoundOr(err error, notFoundMsg, internalMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound(notFoundMsg)
	}
	return apierror.Internal(internalMsg, err)
}

// internalErr wraps an unexpected persistence error for the 500 envelope.
func internalErr(msg string, err error) error {
	return apierror.Internal(msg, err)
}

// timeString formats timestamps for responses.
func timeString(t time.Time) string {
	return t.Format(time.RFC3339)
}

// dateString formats an optional date for responses.
func dateString(d *model.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
