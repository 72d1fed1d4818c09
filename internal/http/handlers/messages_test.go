package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizerFallsBackToEnglish(t *testing.T) {
	l := localizer{cat: newCatalog()}

	assert.Equal(t, msgDonationAccepted, l.text("en", msgDonationAccepted))
	assert.Equal(t, msgDonationAccepted, l.text("fr", msgDonationAccepted))
	assert.Equal(t, msgDonationAccepted, l.text("not a locale", msgDonationAccepted))
	assert.Equal(t, "Donasi berhasil diproses!", l.text("id", msgDonationAccepted))
}
