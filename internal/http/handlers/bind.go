package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
)

const maxBodyBytes = 1 << 20

// formValue accepts JSON strings and numbers so that clients may post
// {"amount": 50} as well as {"amount": "50"}.
type formValue string

func (v *formValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*v = formValue(data)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("unsupported form value %s", data)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("unsupported form value %s", data)
	}
	*v = formValue(n.String())
	return nil
}

var errUnsupportedBody = errors.New("unsupported request body")

// bindFields reads the named fields from a JSON or url-encoded body. Missing
// fields are returned as empty strings.
func bindFields(w http.ResponseWriter, r *http.Request, names ...string) (map[string]string, error) {
	out := make(map[string]string, len(names))
	mediaType := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUnsupportedBody, err)
		}
		mediaType = mt
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	switch mediaType {
	case "application/json":
		raw := map[string]formValue{}
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", errUnsupportedBody, err)
		}
		for _, name := range names {
			out[name] = string(raw[name])
		}
	case "application/x-www-form-urlencoded", "multipart/form-data", "":
		if mediaType == "multipart/form-data" {
			if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
				return nil, fmt.Errorf("%w: %v", errUnsupportedBody, err)
			}
		} else if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", errUnsupportedBody, err)
		}
		for _, name := range names {
			out[name] = r.PostForm.Get(name)
		}
	default:
		return nil, fmt.Errorf("%w: content type %q", errUnsupportedBody, mediaType)
	}
	return out, nil
}
