package donations

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"donationtracker/internal/domain"
)

// Submission carries the raw donation form fields.
type Submission struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	Amount  string `validate:"required"`
	Type    string
	Message string
}

// ParseAmount converts a submitted amount into a positive finite number.
func ParseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: amount is required", domain.ErrValidation)
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: amount %q is not a number", domain.ErrValidation, raw)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	return amount, nil
}

// NewDonation builds a record from a submission whose required fields are present.
// The id is a time-ordered UUID and the date is now in UTC.
func NewDonation(sub Submission, now time.Time) (domain.Donation, error) {
	amount, err := ParseAmount(sub.Amount)
	if err != nil {
		return domain.Donation{}, err
	}
	donationType := sub.Type
	if donationType == "" {
		donationType = domain.DefaultDonationType
	}
	return domain.Donation{
		ID:      newID(now),
		Name:    strings.TrimSpace(sub.Name),
		Email:   strings.TrimSpace(sub.Email),
		Amount:  amount,
		Type:    donationType,
		Message: strings.TrimSpace(sub.Message),
		Date:    now.UTC(),
	}, nil
}

func newID(now time.Time) string {
	id, err := uuid.NewV7()
	if err != nil {
		return strconv.FormatInt(now.UnixMilli(), 10)
	}
	return id.String()
}
