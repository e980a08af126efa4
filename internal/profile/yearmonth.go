package profile

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// YearMonth is a calendar month-granularity date. The zero value is invalid
// and reported by IsZero.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth parses the wire form "2006-01".
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid year-month %q: %w", s, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// CurrentYearMonth returns the calendar month containing now.
func CurrentYearMonth() YearMonth {
	t := time.Now()
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// String renders the wire form "2006-01".
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// IsZero reports whether ym is the zero value.
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}

// Index returns the absolute month index (year*12 + month-1) used for all
// duration arithmetic.
func (ym YearMonth) Index() int {
	return ym.Year*12 + int(ym.Month) - 1
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	return ym.Index() < other.Index()
}

// MarshalJSON implements json.Marshaler.
func (ym YearMonth) MarshalJSON() ([]byte, error) {
	if ym.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ym.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (ym *YearMonth) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*ym = YearMonth{}
		return nil
	}
	parsed, err := ParseYearMonth(*s)
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}

// Scan implements sql.Scanner. The store persists a YearMonth as the first
// day of its month in a DATE column.
func (ym *YearMonth) Scan(value interface{}) error {
	if value == nil {
		*ym = YearMonth{}
		return nil
	}
	switch v := value.(type) {
	case time.Time:
		*ym = YearMonth{Year: v.Year(), Month: v.Month()}
		return nil
	case string:
		parsed, err := ParseYearMonth(v[:min(len(v), 7)])
		if err != nil {
			return err
		}
		*ym = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into YearMonth", value)
	}
}

// Value implements driver.Valuer.
func (ym YearMonth) Value() (driver.Value, error) {
	if ym.IsZero() {
		return nil, nil
	}
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC), nil
}
