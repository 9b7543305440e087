package models

import "encoding/json"

// ErrorKind classifies a failed operation.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindNotFound     ErrorKind = "not_found"
	KindUnauthorized ErrorKind = "unauthorized"
	KindStore        ErrorKind = "store"
)

// Result is the envelope every BookingStore operation returns instead of an error.
type Result[T any] struct {
	Success bool
	Data    T
	Error   string
	Kind    ErrorKind
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func Fail[T any](kind ErrorKind, message string) Result[T] {
	return Result[T]{Kind: kind, Error: message}
}

// MarshalJSON renders {"success":true, ...payload} or {"success":false,"error":...,"kind":...}.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	out := map[string]any{"success": r.Success}
	if !r.Success {
		out["error"] = r.Error
		if r.Kind != "" {
			out["kind"] = r.Kind
		}
		return json.Marshal(out)
	}

	raw, err := json.Marshal(r.Data)
	if err != nil {
		return nil, err
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Non-object payloads are nested instead of flattened.
		out["data"] = json.RawMessage(raw)
		return json.Marshal(out)
	}
	for k, v := range payload {
		if k == "success" {
			continue
		}
		out[k] = v
	}
	return json.Marshal(out)
}

// Empty is the payload of operations that only report success.
type Empty struct{}

type BookingCreated struct {
	ID string `json:"id"`
}

type BookingList struct {
	Bookings []Booking `json:"bookings"`
}

type BookingPayload struct {
	Booking Booking `json:"booking"`
}

type SlotsPayload struct {
	Date  string               `json:"date"`
	Slots map[string]SlotCount `json:"slots"`
}

type ActivitiesPayload struct {
	Activities map[string]map[string]any `json:"activities"`
}

type AdminSession struct {
	Email     string `json:"email"`
	SessionID string `json:"sessionId"`
}
