// Tod is a time-of-day column type (Postgres TIME) that round-trips as
// "HH:MM:SS" and marshals the same way in JSON.
package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Tod struct{ time.Time }

// From keeps HH:mm:ss only, dropping date and zone.
func From(t time.Time) Tod {
	return Tod{
		Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC),
	}
}

// Parse builds a Tod from "HH:mm[:ss]".
func Parse(s string) (Tod, error) {
	var tt Tod
	return tt, tt.parse(s)
}

// Scan accepts time.Time or a "HH:MM[:SS]" string.
func (t *Tod) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		t.Time = x
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("tod: unsupported Scan type %T", v)
	}
}

func (t *Tod) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	tt, err := time.Parse("15:04:05", s)
	if err != nil {
		return err
	}
	t.Time = tt
	return nil
}

func (t Tod) Value() (driver.Value, error) {
	if t.Time.IsZero() {
		return "00:00:00", nil
	}
	return t.Format("15:04:05"), nil
}

func (t Tod) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format("15:04:05"))
}

func (t *Tod) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}

// HHMM renders the short display form used in slot labels.
func (t Tod) HHMM() string {
	return t.Format("15:04")
}

// GormDataType tells gorm to create a TIME column.
func (Tod) GormDataType() string { return "time" }
