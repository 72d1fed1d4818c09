package domain

import "time"

// DefaultDonationType is assigned when a submission does not name a campaign.
const DefaultDonationType = "General"

// AnonymousDonor replaces empty names in the public recent-donations feed.
const AnonymousDonor = "Anonymous"

// RecentDonationsLimit caps the recent-donations feed.
const RecentDonationsLimit = 5

// Donation represents a single supporter contribution. Records are immutable once
// created.
type Donation struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Amount  float64   `json:"amount"`
	Type    string    `json:"type"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// RecentDonation is the public projection of a donation shown on the home page.
type RecentDonation struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

// Stats aggregates the donation collection.
type Stats struct {
	TotalDonors     int
	TotalAmount     float64
	DonationGoal    int
	Progress        float64
	RecentDonations []RecentDonation
}

// Project converts a donation into its public feed entry.
func (d Donation) Project() RecentDonation {
	name := d.Name
	if name == "" {
		name = AnonymousDonor
	}
	return RecentDonation{Name: name, Amount: d.Amount, Type: d.Type}
}

// Progress returns the percentage of goal reached, clamped to 100.
func Progress(total float64, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	p := total / float64(goal) * 100
	if p > 100 {
		return 100
	}
	return p
}
