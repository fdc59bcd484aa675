package easyappointments

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Admin represents an administrator account.
type Admin struct {
	ID       int            `json:"id,omitempty"       yaml:"id,omitempty"`
	First    string         `json:"firstName"          yaml:"first_name"`
	Last     string         `json:"lastName"           yaml:"last_name"`
	Email    string         `json:"email"              yaml:"email"`
	Mobile   string         `json:"mobile,omitempty"   yaml:"mobile,omitempty"`
	Phone    string         `json:"phone,omitempty"    yaml:"phone,omitempty"`
	Address  string         `json:"address,omitempty"  yaml:"address,omitempty"`
	City     string         `json:"city,omitempty"     yaml:"city,omitempty"`
	State    string         `json:"state,omitempty"    yaml:"state,omitempty"`
	Zip      string         `json:"zip,omitempty"      yaml:"zip,omitempty"`
	Notes    string         `json:"notes,omitempty"    yaml:"notes,omitempty"`
	Timezone string         `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	Language string         `json:"language,omitempty" yaml:"language,omitempty"`
	LdapDN   string         `json:"ldapDn,omitempty"   yaml:"ldap_dn,omitempty"`
	Settings *AdminSettings `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// AdminSettings holds account settings for an administrator.
type AdminSettings struct {
	Username      string `json:"username"           yaml:"username"`
	Password      string `json:"password,omitempty" yaml:"password,omitempty"`
	Notifications bool   `json:"notifications"      yaml:"notifications"`
	CalendarView  string `json:"calendarView"       yaml:"calendar_view"`
}

// Provider represents a service provider.
type Provider struct {
	ID       int               `json:"id,omitempty"       yaml:"id,omitempty"`
	First    string            `json:"firstName"          yaml:"first_name"`
	Last     string            `json:"lastName"           yaml:"last_name"`
	Email    string            `json:"email"              yaml:"email"`
	Mobile   string            `json:"mobile,omitempty"   yaml:"mobile,omitempty"`
	Phone    string            `json:"phone,omitempty"    yaml:"phone,omitempty"`
	Address  string            `json:"address,omitempty"  yaml:"address,omitempty"`
	City     string            `json:"city,omitempty"     yaml:"city,omitempty"`
	State    string            `json:"state,omitempty"    yaml:"state,omitempty"`
	Zip      string            `json:"zip,omitempty"      yaml:"zip,omitempty"`
	Notes    string            `json:"notes,omitempty"    yaml:"notes,omitempty"`
	Timezone string            `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	Language string            `json:"language,omitempty" yaml:"language,omitempty"`
	Services []int             `json:"services,omitempty" yaml:"services,omitempty"`
	Settings *ProviderSettings `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// ProviderSettings holds account settings and the weekly working plan for a
// provider. Password is only sent in requests; the server never returns it.
type ProviderSettings struct {
	Username    string       `json:"username"              yaml:"username"`
	Password    string       `json:"password,omitempty"    yaml:"password,omitempty"`
	WorkingPlan *WorkingPlan `json:"workingPlan,omitempty" yaml:"working_plan,omitempty"`
}

// WorkingPlan describes a provider's weekly schedule. A nil day means the
// provider does not work that day.
type WorkingPlan struct {
	Sunday    *WorkingDay `json:"sunday"    yaml:"sunday"`
	Monday    *WorkingDay `json:"monday"    yaml:"monday"`
	Tuesday   *WorkingDay `json:"tuesday"   yaml:"tuesday"`
	Wednesday *WorkingDay `json:"wednesday" yaml:"wednesday"`
	Thursday  *WorkingDay `json:"thursday"  yaml:"thursday"`
	Friday    *WorkingDay `json:"friday"    yaml:"friday"`
	Saturday  *WorkingDay `json:"saturday"  yaml:"saturday"`
}

// WorkingDay describes the working hours of a single day.
type WorkingDay struct {
	Start  string  `json:"start"  yaml:"start"` // "HH:MM", empty when off
	End    string  `json:"end"    yaml:"end"`
	Breaks []Break `json:"breaks" yaml:"breaks"`
}

// Break is a pause within a working day.
type Break struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end"   yaml:"end"`
}

// Customer represents a customer record.
type Customer struct {
	ID       int               `json:"id,omitempty"       yaml:"id,omitempty"`
	First    string            `json:"firstName"          yaml:"first_name"`
	Last     string            `json:"lastName"           yaml:"last_name"`
	Email    string            `json:"email"              yaml:"email"`
	Phone    string            `json:"phone,omitempty"    yaml:"phone,omitempty"`
	Mobile   string            `json:"mobile,omitempty"   yaml:"mobile,omitempty"`
	Address  string            `json:"address,omitempty"  yaml:"address,omitempty"`
	City     string            `json:"city,omitempty"     yaml:"city,omitempty"`
	State    string            `json:"state,omitempty"    yaml:"state,omitempty"`
	Zip      string            `json:"zipCode,omitempty"  yaml:"zip,omitempty"`
	Notes    string            `json:"notes,omitempty"    yaml:"notes,omitempty"`
	Timezone string            `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	Language string            `json:"language,omitempty" yaml:"language,omitempty"`
	Settings *CustomerSettings `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// CustomerSettings holds notification and display preferences for a customer.
type CustomerSettings struct {
	Username      string `json:"username,omitempty" yaml:"username,omitempty"`
	Notifications bool   `json:"notifications"      yaml:"notifications"`
	Timezone      string `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	CalendarView  string `json:"calendarView"       yaml:"calendar_view"`
	DateFormat    string `json:"dateFormat"         yaml:"date_format"`
}

// AppointmentStatus enumerates the lifecycle states of an appointment.
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "Booked"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// UnmarshalJSON decodes a status case-insensitively. Empty or unrecognized
// values decode to StatusBooked, matching the server's default.
func (s *AppointmentStatus) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("decoding appointment status: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cancelled":
		*s = StatusCancelled
	default:
		*s = StatusBooked
	}

	return nil
}

// Appointment represents a booked time slot between a customer and a
// provider for a given service.
type Appointment struct {
	ID               int               `json:"id,omitempty"               yaml:"id,omitempty"`
	Start            string            `json:"start"                      yaml:"start"` // ISO 8601
	End              string            `json:"end"                        yaml:"end"`
	Location         string            `json:"location,omitempty"         yaml:"location,omitempty"`
	Notes            string            `json:"notes,omitempty"            yaml:"notes,omitempty"`
	CustomerID       int               `json:"customerId"                 yaml:"customer_id"`
	ProviderID       int               `json:"providerId"                 yaml:"provider_id"`
	ServiceID        int               `json:"serviceId"                  yaml:"service_id"`
	Hash             string            `json:"hash,omitempty"             yaml:"hash,omitempty"`
	GoogleCalendarID string            `json:"googleCalendarId,omitempty" yaml:"google_calendar_id,omitempty"`
	Status           AppointmentStatus `json:"status,omitempty"           yaml:"status,omitempty"`
}

// TimeSlot is a bookable interval within a provider's day, both bounds in
// "HH:MM" format.
type TimeSlot struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end"   yaml:"end"`
}

// Availability lists the open time slots for a provider and service on a
// given date.
type Availability struct {
	Available []TimeSlot `json:"available" yaml:"available"`
}

// IsEmpty reports whether no slots are open.
func (a *Availability) IsEmpty() bool {
	return a == nil || len(a.Available) == 0
}

// Validation helpers. These are data-shape contracts only; the request
// layer is agnostic to them and the server remains the authority.

// ValidateClockTime checks the "HH:MM" format used by working plans and
// time slots.
func ValidateClockTime(value string) error {
	_, err := time.Parse("15:04", value)
	if err != nil {
		return fmt.Errorf("time must be in HH:MM format, got %q", value)
	}

	return nil
}

// ValidateTimestamp checks the ISO 8601 format used by appointment bounds.
func ValidateTimestamp(value string) error {
	layouts := []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"}
	for _, layout := range layouts {
		if _, err := time.Parse(layout, value); err == nil {
			return nil
		}
	}

	return fmt.Errorf("timestamp must be in ISO 8601 format, got %q", value)
}

// Validate checks the appointment's required fields and timestamp formats.
func (a *Appointment) Validate() error {
	if err := ValidateTimestamp(a.Start); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	if err := ValidateTimestamp(a.End); err != nil {
		return fmt.Errorf("end: %w", err)
	}

	if a.CustomerID == 0 || a.ProviderID == 0 || a.ServiceID == 0 {
		return ErrAppointmentRefsRequired
	}

	return nil
}

// Validate checks the slot's bounds.
func (t *TimeSlot) Validate() error {
	if err := ValidateClockTime(t.Start); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	if err := ValidateClockTime(t.End); err != nil {
		return fmt.Errorf("end: %w", err)
	}

	return nil
}

// Validate checks every configured day of the plan.
func (w *WorkingPlan) Validate() error {
	days := map[string]*WorkingDay{
		"sunday": w.Sunday, "monday": w.Monday, "tuesday": w.Tuesday,
		"wednesday": w.Wednesday, "thursday": w.Thursday,
		"friday": w.Friday, "saturday": w.Saturday,
	}

	for name, day := range days {
		if day == nil || day.Start == "" {
			continue
		}

		if err := ValidateClockTime(day.Start); err != nil {
			return fmt.Errorf("%s start: %w", name, err)
		}

		if err := ValidateClockTime(day.End); err != nil {
			return fmt.Errorf("%s end: %w", name, err)
		}

		for _, brk := range day.Breaks {
			if err := ValidateClockTime(brk.Start); err != nil {
				return fmt.Errorf("%s break start: %w", name, err)
			}

			if err := ValidateClockTime(brk.End); err != nil {
				return fmt.Errorf("%s break end: %w", name, err)
			}
		}
	}

	return nil
}
