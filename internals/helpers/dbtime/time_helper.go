// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout adalah format tanggal yang diterima dari client.
	DateLayout = "2006-01-02"
	// ISODateTimeLayout dipakai saat render tanggal kehadiran (tanpa zona, seperti isoformat()).
	ISODateTimeLayout = "2006-01-02T15:04:05"
)

// StartOfDay membuang komponen jam, tanggal kalender diambil dari zona t sendiri.
// Hasil selalu tengah malam UTC supaya key (employee_id, date) konsisten di semua store.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate menerima "YYYY-MM-DD" atau RFC3339; jam diabaikan.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return StartOfDay(t), nil
	}
	if t, err := time.Parse(ISODateTimeLayout, s); err == nil {
		return StartOfDay(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

// FormatISO merender tanggal sebagai "YYYY-MM-DDT00:00:00".
func FormatISO(t time.Time) string {
	return StartOfDay(t.UTC()).Format(ISODateTimeLayout)
}
