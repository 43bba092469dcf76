package common

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MsgAllFieldsRequired is the fixed message for any missing create field.
const MsgAllFieldsRequired = "all fields are required"

var validate = validator.New()

// ValidateAndDecode parses the JSON body into payload and runs its required
// tags. A body that does not decode is a 400; so is any absent field, always
// with the same fixed message.
func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return NewAppError(http.StatusBadRequest, "invalid request body", err)
	}

	if err := validate.Struct(payload); err != nil {
		return NewAppError(http.StatusBadRequest, MsgAllFieldsRequired, err)
	}

	return nil
}
