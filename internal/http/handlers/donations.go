package handlers

import (
	"context"
	"errors"
	"net/http"

	"donationtracker/internal/domain"
	"donationtracker/internal/donations"
)

type donationResponse struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Donation domain.Donation `json:"donation"`
}

func (a *App) Donate(w http.ResponseWriter, r *http.Request) {
	fields, err := bindFields(w, r, "name", "email", "amount", "type", "message")
	if err != nil {
		a.logger(r).Debug().Err(err).Msg("rejecting donation payload")
		a.fail(w, r, http.StatusBadRequest, msgInvalidPayload)
		return
	}
	sub := donations.Submission{
		Name:    fields["name"],
		Email:   fields["email"],
		Amount:  fields["amount"],
		Type:    fields["type"],
		Message: fields["message"],
	}
	if err := a.validate.Struct(sub); err != nil {
		a.fail(w, r, http.StatusBadRequest, msgDonationInvalid)
		return
	}
	donation, err := donations.NewDonation(sub, a.Now())
	if err != nil {
		a.fail(w, r, http.StatusBadRequest, msgDonationInvalid)
		return
	}

	log := a.logger(r)
	// The donation is accepted once it is in memory; a failed write is only reported.
	if err := a.Store.Append(context.WithoutCancel(r.Context()), donation); err != nil {
		if !errors.Is(err, domain.ErrPersistence) {
			log.Error().Err(err).Msg("unexpected store error")
		}
		a.Metrics.PersistFailed()
	}
	a.Metrics.DonationReceived(donation.Type)

	log.Info().
		Str("donation_id", donation.ID).
		Str("name", donation.Name).
		Float64("amount", donation.Amount).
		Str("type", donation.Type).
		Msg("new donation received")

	a.json(w, http.StatusOK, donationResponse{
		Success:  true,
		Message:  a.text(r, msgDonationAccepted),
		Donation: donation,
	})
}
