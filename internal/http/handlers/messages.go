package handlers

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys double as the English text returned to clients.
const (
	msgDonationAccepted = "Donation successfully processed!"
	msgDonationInvalid  = "Invalid or missing required fields: Name, Email, and a positive Amount are required."
	msgContactAccepted  = "Your message has been received. We will get back to you soon."
	msgContactInvalid   = "Please fill in all fields: Name, Email, and Message."
	msgInvalidPayload   = "Invalid request payload."
)

var translations = map[language.Tag]map[string]string{
	language.Indonesian: {
		msgDonationAccepted: "Donasi berhasil diproses!",
		msgDonationInvalid:  "Kolom wajib tidak valid atau kosong: Nama, Email, dan Jumlah positif wajib diisi.",
		msgContactAccepted:  "Pesan Anda telah diterima. Kami akan segera menghubungi Anda.",
		msgContactInvalid:   "Harap isi semua kolom: Nama, Email, dan Pesan.",
		msgInvalidPayload:   "Data permintaan tidak valid.",
	},
}

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, key := range []string{msgDonationAccepted, msgDonationInvalid, msgContactAccepted, msgContactInvalid, msgInvalidPayload} {
		_ = b.SetString(language.English, key, key)
	}
	for tag, entries := range translations {
		for key, text := range entries {
			_ = b.SetString(tag, key, text)
		}
	}
	return b
}

// localizer renders response messages for a negotiated locale.
type localizer struct {
	cat catalog.Catalog
}

func (l localizer) text(locale, key string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag, message.Catalog(l.cat)).Sprintf(key)
}
