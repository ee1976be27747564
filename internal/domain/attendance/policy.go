package attendance

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// CheckoutMode distinguishes sites that close open records automatically from
// sites where workers must check out themselves.
type CheckoutMode string

const (
	CheckoutModeAuto   CheckoutMode = "AUTO"
	CheckoutModeManual CheckoutMode = "MANUAL"
)

// CheckoutPolicy is a site's parsed checkout policy. The persisted form is
// "MANUAL" or "AUTO_<N>H", e.g. "AUTO_8H".
type CheckoutPolicy struct {
	Mode  CheckoutMode
	Hours int
}

var autoPolicyPattern = regexp.MustCompile(`^AUTO_(\d{1,2})H$`)

// ParseCheckoutPolicy parses the persisted policy string.
func ParseCheckoutPolicy(value string) (CheckoutPolicy, error) {
	if value == "" || value == string(CheckoutModeManual) {
		return CheckoutPolicy{Mode: CheckoutModeManual}, nil
	}

	m := autoPolicyPattern.FindStringSubmatch(value)
	if m == nil {
		return CheckoutPolicy{}, fmt.Errorf("invalid checkout policy: %q", value)
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil || hours <= 0 {
		return CheckoutPolicy{}, fmt.Errorf("invalid checkout policy hours: %q", value)
	}

	return CheckoutPolicy{Mode: CheckoutModeAuto, Hours: hours}, nil
}

// String renders the policy back to its persisted form.
func (p CheckoutPolicy) String() string {
	if p.Mode == CheckoutModeAuto {
		return fmt.Sprintf("AUTO_%dH", p.Hours)
	}
	return string(CheckoutModeManual)
}

// IsAuto reports whether the scheduler should close stale records for this policy.
func (p CheckoutPolicy) IsAuto() bool {
	return p.Mode == CheckoutModeAuto
}

// ShiftLength returns the auto-checkout shift length. Zero for manual sites.
func (p CheckoutPolicy) ShiftLength() time.Duration {
	if !p.IsAuto() {
		return 0
	}
	return time.Duration(p.Hours) * time.Hour
}

// AutoCheckoutTime computes the policy-defined check-out instant for a record
// opened at checkIn.
func (p CheckoutPolicy) AutoCheckoutTime(checkIn time.Time) time.Time {
	return checkIn.Add(p.ShiftLength())
}
