package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/gatormarket/internal/server/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type detailResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeDetail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, detailResponse{Detail: msg})
}

// fieldDetail is one entry of a 422 body: loc names where the bad value was,
// e.g. ["body", "email"].
type fieldDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type validationResponse struct {
	Detail []fieldDetail `json:"detail"`
}

func writeValidation(w http.ResponseWriter, where string, verr *validation.Error) {
	out := validationResponse{Detail: make([]fieldDetail, 0, len(verr.Fields))}
	for _, f := range verr.Fields {
		loc := []string{where}
		if f.Field != "" {
			loc = append(loc, f.Field)
		}
		out.Detail = append(out.Detail, fieldDetail{Loc: loc, Msg: f.Message, Type: f.Type})
	}
	writeJSON(w, http.StatusUnprocessableEntity, out)
}

// decodeJSON reads the request body into v. A malformed body is reported
// as a body-level validation error.
func decodeJSON(r *http.Request, v any) *validation.Error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return validation.Single("", "JSON decode error", "json_invalid")
	}
	return nil
}
