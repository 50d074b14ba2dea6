package export

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"smartcarbon/internal/domain"
)

// ContentType returns the MIME type for an export format.
func ContentType(format domain.ExportFormat) string {
	switch format {
	case domain.ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv; charset=utf-8"
	}
}

// BuildFilename returns the Content-Disposition filename for a session export.
// Format: carbon_{first 8 chars of session id}_{YYYY-MM-DD}.{ext}
func BuildFilename(sessionID uuid.UUID, format domain.ExportFormat, now time.Time) string {
	return fmt.Sprintf("carbon_%s_%s.%s", sessionID.String()[:8], now.Format("2006-01-02"), format)
}
