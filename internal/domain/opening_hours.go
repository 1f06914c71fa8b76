package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Days of the week as stored by the original data, lowercase French,
// Monday first.
var Days = []string{"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche"}

// TimeRange is an open/close pair for one day, times as "HH:MM".
type TimeRange struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// OpeningHours is a two-variant type. The structured variant maps day name to
// a time range, nil meaning closed that day. Rows whose stored JSON does not
// parse into that shape keep the raw string instead of guessing; exactly one
// variant is set at a time.
type OpeningHours struct {
	Structured map[string]*TimeRange
	Raw        string
}

// IsRaw reports whether the value fell back to the raw-string variant.
func (oh OpeningHours) IsRaw() bool {
	return oh.Structured == nil && oh.Raw != ""
}

// IsZero reports whether no opening hours were provided at all.
func (oh OpeningHours) IsZero() bool {
	return oh.Structured == nil && oh.Raw == ""
}

// Display renders the hours for humans. Structured variant: one entry per
// day in week order, "closed" for nil days; raw variant: the string verbatim;
// empty: "non renseigné" as the original pages showed.
func (oh OpeningHours) Display() string {
	if oh.IsZero() {
		return "non renseigné"
	}
	if oh.IsRaw() {
		return oh.Raw
	}

	parts := make([]string, 0, len(oh.Structured))
	for _, day := range Days {
		times, ok := oh.Structured[day]
		if !ok {
			continue
		}
		if times == nil {
			parts = append(parts, fmt.Sprintf("%s: fermé", day))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s - %s", day, times.Open, times.Close))
	}

	// Days outside the known seven still render, after the known ones.
	var extra []string
	for day, times := range oh.Structured {
		if dayIndex(day) >= 0 {
			continue
		}
		if times == nil {
			extra = append(extra, fmt.Sprintf("%s: fermé", day))
		} else {
			extra = append(extra, fmt.Sprintf("%s: %s - %s", day, times.Open, times.Close))
		}
	}
	sort.Strings(extra)
	parts = append(parts, extra...)

	return strings.Join(parts, ", ")
}

func dayIndex(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return -1
}

// MarshalJSON writes the structured map, or the raw string for the fallback
// variant, or null when empty.
func (oh OpeningHours) MarshalJSON() ([]byte, error) {
	if oh.Structured != nil {
		return json.Marshal(oh.Structured)
	}
	if oh.Raw != "" {
		return json.Marshal(oh.Raw)
	}
	return []byte("null"), nil
}

// UnmarshalJSON tries the structured shape first and keeps the raw input when
// it does not fit, instead of failing the whole row decode.
func (oh *OpeningHours) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*oh = OpeningHours{}
		return nil
	}

	var structured map[string]*TimeRange
	if err := json.Unmarshal(data, &structured); err == nil {
		*oh = OpeningHours{Structured: structured}
		return nil
	}

	// A JSON string may itself contain structured JSON (double-encoded rows
	// existed in the original data) or arbitrary text.
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if err := json.Unmarshal([]byte(s), &structured); err == nil {
			*oh = OpeningHours{Structured: structured}
			return nil
		}
		*oh = OpeningHours{Raw: s}
		return nil
	}

	*oh = OpeningHours{Raw: trimmed}
	return nil
}

// Value implements driver.Valuer: stored as JSON, NULL when empty.
func (oh OpeningHours) Value() (driver.Value, error) {
	if oh.IsZero() {
		return nil, nil
	}
	return json.Marshal(oh)
}

// Scan implements sql.Scanner with the same raw-fallback rule as
// UnmarshalJSON.
func (oh *OpeningHours) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*oh = OpeningHours{}
		return nil
	case []byte:
		return oh.UnmarshalJSON(v)
	case string:
		return oh.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("unsupported opening_hours type %T", src)
	}
}
