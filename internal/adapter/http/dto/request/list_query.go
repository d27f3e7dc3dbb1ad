package request

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"vetcare/internal/domain/entities"
)

var ErrInvalidQuery = errors.New("invalid query parameter")

// ListQuery holds the listing parameters shared by every collection.
// Dates are RFC 3339.
type ListQuery struct {
	Status string `form:"status"`
	From   string `form:"from"`
	To     string `form:"to"`
	Search string `form:"search"`
	NIC    string `form:"nic"`
	Owner  string `form:"owner"`
	Page   string `form:"page"`
	Limit  string `form:"limit"`
}

func (q ListQuery) Filter() (entities.ListFilter, error) {
	f := entities.ListFilter{
		Status: strings.TrimSpace(q.Status),
		Query:  strings.TrimSpace(q.Search),
		NIC:    strings.TrimSpace(q.NIC),
		Owner:  strings.TrimSpace(q.Owner),
	}
	var err error
	if f.From, err = parseDate("from", q.From); err != nil {
		return entities.ListFilter{}, err
	}
	if f.To, err = parseDate("to", q.To); err != nil {
		return entities.ListFilter{}, err
	}
	return f, nil
}

// PageAndLimit returns 0 for absent values; the use case applies defaults.
func (q ListQuery) PageAndLimit() (page, limit int, err error) {
	if page, err = parseInt("page", q.Page); err != nil {
		return 0, 0, err
	}
	if limit, err = parseInt("limit", q.Limit); err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

func parseDate(name, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, queryError(name)
	}
	return &t, nil
}

func parseInt(name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, queryError(name)
	}
	return n, nil
}

func queryError(name string) error {
	return &QueryError{Param: name}
}

type QueryError struct {
	Param string
}

func (e *QueryError) Error() string {
	return "invalid value for query parameter " + e.Param
}

func (e *QueryError) Unwrap() error {
	return ErrInvalidQuery
}
