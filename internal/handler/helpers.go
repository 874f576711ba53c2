package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/threadhub-dev/threadhub/internal/domain"
	"github.com/threadhub-dev/threadhub/internal/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeValidate decodes a JSON body and checks its validate tags. Used for
// create payloads, where the input contract is enforced up front.
func decodeValidate(r io.Reader, body any) error {
	if err := decode(r, body); err != nil {
		return err
	}
	if err := validate.Struct(body); err != nil {
		return errors.Newf(errors.Validation, "invalid request body: %s", err.Error())
	}
	return nil
}

// decode only checks JSON shape. Update payloads go through here so field
// validation can happen after the ownership guard.
func decode(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return errors.New(errors.Validation, "body is invalid json")
	}
	return nil
}

func threadIdParam(r *http.Request) (domain.ThreadId, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New(errors.Validation, "thread id must be an integer")
	}
	return id, nil
}
