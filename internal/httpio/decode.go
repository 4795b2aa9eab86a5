package httpio

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes caps every request body the API accepts.
const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("request body is not valid JSON")

// DecodeAndValidate reads the request body into dst, sanitizes every string
// field, and validates it. The returned error is ready for the Responder:
// decode failures classify to their JSON codes, validation failures carry
// the full field detail list.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return errInvalidBody
		}
		return err
	}

	Sanitize(dst)

	if appErr := Validate(dst); appErr != nil {
		return appErr
	}

	return nil
}
