package handlers

import (
	"net/http"
	"strconv"

	"donationtracker/internal/domain"
)

// statsResponse keeps the amount and progress as two-decimal strings, which is
// what the home page polls for.
type statsResponse struct {
	TotalDonors     int                     `json:"totalDonors"`
	TotalAmount     string                  `json:"totalAmount"`
	DonationGoal    int                     `json:"donationGoal"`
	Progress        string                  `json:"progress"`
	RecentDonations []domain.RecentDonation `json:"recentDonations"`
}

func newStatsResponse(s domain.Stats) statsResponse {
	recent := s.RecentDonations
	if recent == nil {
		recent = []domain.RecentDonation{}
	}
	return statsResponse{
		TotalDonors:     s.TotalDonors,
		TotalAmount:     formatFixed2(s.TotalAmount),
		DonationGoal:    s.DonationGoal,
		Progress:        formatFixed2(s.Progress),
		RecentDonations: recent,
	}
}

func formatFixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func (a *App) Stats(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, newStatsResponse(a.Store.Stats()))
}
