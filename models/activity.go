package models

// Activity is an entry of the read-only "activities" collection. Its attributes
// (name, description, price, age range...) are passed through untouched.
type Activity struct {
	ID         string         `json:"id"`
	Attributes map[string]any `json:"attributes"`
}
