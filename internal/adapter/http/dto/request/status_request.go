package request

import "strings"

// StatusRequest is the body of every status-only update. Any other field
// in the payload is ignored.
type StatusRequest struct {
	Status string `json:"status"`
}

func (r StatusRequest) Value() string {
	return strings.TrimSpace(r.Status)
}
