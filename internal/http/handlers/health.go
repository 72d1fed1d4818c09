package handlers

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
	Donors        int    `json:"donors"`
}

// Health reports liveness together with process uptime and the donor count.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	uptime := a.Now().Sub(a.started)
	if uptime < 0 {
		uptime = 0
	}
	a.json(w, http.StatusOK, healthResponse{
		Status:        "ok",
		UptimeSeconds: int64(uptime / time.Second),
		Donors:        a.Store.Stats().TotalDonors,
	})
}
