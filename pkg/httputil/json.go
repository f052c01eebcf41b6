package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	dserrors "github.com/matzehuels/dsaviz/pkg/errors"
)

// MaxBodyBytes caps request bodies read by DecodeJSON.
const MaxBodyBytes = 1 << 20

// validate is shared; validator caches struct metadata per type.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrorBody is the JSON shape of an error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the error code and a user-facing message.
type ErrorDetail struct {
	Code    dserrors.Code `json:"code"`
	Message string `json:"message"`
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteError writes err as an ErrorBody with the status for its code.
func WriteError(w http.ResponseWriter, err error) int {
	status := StatusFor(err)
	code := dserrors.GetCode(err)
	if code == "" {
		code = dserrors.ErrCodeInternal
	}
	msg := dserrors.UserMessage(err)
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	_ = WriteJSON(w, status, ErrorBody{Error: ErrorDetail{Code: code, Message: msg}})
	return status
}

// StatusFor maps an error code to an HTTP status.
func StatusFor(err error) int {
	switch dserrors.GetCode(err) {
	case dserrors.ErrCodeUnknownAlgorithm, dserrors.ErrCodeUnknownTopic:
		return http.StatusNotFound
	case dserrors.ErrCodeInvalidInput, dserrors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// DecodeJSON decodes the request body into v and validates it. All
// failures are INVALID_INPUT errors.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return dserrors.New(dserrors.ErrCodeInvalidInput, "request body is empty")
		}
		return dserrors.Wrap(dserrors.ErrCodeInvalidInput, err, "malformed JSON body")
	}
	return Validate(v)
}

// Validate runs the validate struct tags of v.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return dserrors.New(dserrors.ErrCodeInvalidInput, "field %s failed %q validation", fe.Namespace(), fe.Tag())
	}
	return dserrors.Wrap(dserrors.ErrCodeInvalidInput, err, "invalid request")
}
