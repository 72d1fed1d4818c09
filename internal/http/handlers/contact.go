package handlers

import (
	"net/http"

	"donationtracker/internal/middleware"
)

type contactRequest struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	Message string `validate:"required"`
}

// Contact logs a visitor message. Messages are not persisted.
func (a *App) Contact(w http.ResponseWriter, r *http.Request) {
	fields, err := bindFields(w, r, "name", "email", "message")
	if err != nil {
		a.fail(w, r, http.StatusBadRequest, msgInvalidPayload)
		return
	}
	req := contactRequest{Name: fields["name"], Email: fields["email"], Message: fields["message"]}
	if err := a.validate.Struct(req); err != nil {
		a.fail(w, r, http.StatusBadRequest, msgContactInvalid)
		return
	}

	a.logger(r).Info().
		Str("name", req.Name).
		Str("email", req.Email).
		Str("body", req.Message).
		Str("country", middleware.CountryFromContext(r.Context())).
		Time("received_at", a.Now().UTC()).
		Msg("new contact message received")
	a.Metrics.ContactReceived()

	a.json(w, http.StatusOK, statusResponse{Success: true, Message: a.text(r, msgContactAccepted)})
}
