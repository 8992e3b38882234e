package common

import (
	"fmt"

	"gorm.io/gorm"

	"parlayPickem/models"
)

// LogError records a server-side fault in the error_logs table for
// operator attention. Logging must never fail the request, so write
// errors are swallowed here and nowhere else.
func LogError(db *gorm.DB, source string, err error) {
	if err == nil {
		return
	}
	errLog := models.ErrorLog{
		Source:  source,
		Message: fmt.Sprintf("%v", err),
	}
	db.Create(&errLog)
}
