package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day. It marshals as "2006-01-02" and also accepts
// RFC 3339 timestamps.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current UTC day.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func (d Date) AddMonths(n int) Date {
	return Date{d.AddDate(0, n, 0)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	for _, layout := range []string{DateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = NewDate(t.Year(), t.Month(), t.Day())
			return nil
		}
	}
	return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

// Dated is implemented by inputs that depend on the current date.
type Dated interface {
	SetDefaultAsOf(today Date)
}

func defaultAsOf(asOf *Date, today Date) {
	if asOf.IsZero() {
		*asOf = today
	}
}

func (in *CreditCardInput) SetDefaultAsOf(today Date)      { defaultAsOf(&in.AsOf, today) }
func (in *LoanPayoffInput) SetDefaultAsOf(today Date)      { defaultAsOf(&in.AsOf, today) }
func (in *DividendYieldInput) SetDefaultAsOf(today Date)   { defaultAsOf(&in.AsOf, today) }
func (in *VacationSavingsInput) SetDefaultAsOf(today Date) { defaultAsOf(&in.AsOf, today) }
