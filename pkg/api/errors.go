package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/corkroom/client-go/pkg/errs"
)

// FieldError — одна ошибка валидации уровня поля, как её шлёт сервер.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// APIError — не-2xx ответ сервера. Detail заполняется для плоского
// варианта `{"detail": "..."}`; Fields — для списка ошибок валидации.
// Структура detail отдаётся вызывающему как есть, без схлопывания.
type APIError struct {
	Status int
	Detail string
	Fields []FieldError
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			parts = append(parts, strings.Join(f.Loc, ".")+": "+f.Msg)
		}
		return fmt.Sprintf("api error %d: %s", e.Status, strings.Join(parts, "; "))
	}
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, http.StatusText(e.Status))
}

// Unwrap — чтобы работал errors.Is(err, errs.ErrNotFound) и т.п.
func (e *APIError) Unwrap() error { return errs.FromStatus(e.Status) }

// Тело ошибки сервера: detail — либо строка, либо список FieldError.
type errBody struct {
	Detail json.RawMessage `json:"detail"`
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var eb errBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return apiErr
	}

	var flat string
	if err := json.Unmarshal(eb.Detail, &flat); err == nil {
		apiErr.Detail = flat
		return apiErr
	}

	var fields []FieldError
	if err := json.Unmarshal(eb.Detail, &fields); err == nil {
		apiErr.Fields = fields
	}
	return apiErr
}
