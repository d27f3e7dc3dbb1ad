package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vetcare/internal/adapter/http/dto/request"
	"vetcare/internal/adapter/http/dto/response"
	"vetcare/pkg"
)

const DefaultTimeout = 10 * time.Second

// Client talks to one API surface.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Token   string
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// WithToken returns a copy that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.Token = token
	return &cp
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("client: nil client")
	}

	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("client: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		cerr := &Error{Kind: kindForStatus(resp.StatusCode), StatusCode: resp.StatusCode}
		var apiErr pkg.HTTPError
		if json.Unmarshal(raw, &apiErr) == nil {
			cerr.Code = apiErr.Code
			cerr.Message = apiErr.Message
		}
		return cerr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("client: unmarshal json: %w", err)
	}
	return nil
}

func escape(id string) string {
	return url.PathEscape(id)
}

func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/ping", nil, nil, nil)
}

func (c *Client) CreateBooking(ctx context.Context, in request.BookingRequest) (response.BookingResponse, error) {
	var out response.BookingResponse
	err := c.do(ctx, http.MethodPost, "/bookings", nil, in, &out)
	return out, err
}

func (c *Client) GetBooking(ctx context.Context, id string) (response.BookingResponse, error) {
	var out response.BookingResponse
	err := c.do(ctx, http.MethodGet, "/bookings/"+escape(id), nil, nil, &out)
	return out, err
}

// ListBookings accepts status, from, to and limit.
func (c *Client) ListBookings(ctx context.Context, query url.Values) ([]response.BookingResponse, error) {
	var out []response.BookingResponse
	err := c.do(ctx, http.MethodGet, "/bookings", query, nil, &out)
	return out, err
}

func (c *Client) UpdateBookingStatus(ctx context.Context, id, status string) (response.BookingResponse, error) {
	var out response.BookingResponse
	err := c.do(ctx, http.MethodPatch, "/bookings/"+escape(id)+"/status", nil, request.StatusRequest{Status: status}, &out)
	return out, err
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/bookings/"+escape(id), nil, nil, nil)
}

func (c *Client) CreateInvoice(ctx context.Context, in request.InvoiceRequest) (response.InvoiceResponse, error) {
	var out response.InvoiceResponse
	err := c.do(ctx, http.MethodPost, "/invoices", nil, in, &out)
	return out, err
}

func (c *Client) GetInvoice(ctx context.Context, id string) (response.InvoiceResponse, error) {
	var out response.InvoiceResponse
	err := c.do(ctx, http.MethodGet, "/invoices/"+escape(id), nil, nil, &out)
	return out, err
}

// ListInvoices accepts page, limit, status and search.
func (c *Client) ListInvoices(ctx context.Context, query url.Values) (response.InvoicePageResponse, error) {
	var out response.InvoicePageResponse
	err := c.do(ctx, http.MethodGet, "/invoices", query, nil, &out)
	return out, err
}

func (c *Client) UpdateInvoice(ctx context.Context, id string, in request.InvoiceRequest) (response.InvoiceResponse, error) {
	var out response.InvoiceResponse
	err := c.do(ctx, http.MethodPut, "/invoices/"+escape(id), nil, in, &out)
	return out, err
}

func (c *Client) UpdateInvoiceStatus(ctx context.Context, id, status string) (response.InvoiceResponse, error) {
	var out response.InvoiceResponse
	err := c.do(ctx, http.MethodPatch, "/invoices/"+escape(id)+"/status", nil, request.StatusRequest{Status: status}, &out)
	return out, err
}

func (c *Client) PayInvoice(ctx context.Context, id string) (response.InvoiceResponse, error) {
	var out response.InvoiceResponse
	err := c.do(ctx, http.MethodPost, "/invoices/"+escape(id)+"/pay", nil, nil, &out)
	return out, err
}

func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/invoices/"+escape(id), nil, nil, nil)
}

func (c *Client) CreateAppointment(ctx context.Context, in request.AppointmentRequest) (response.AppointmentResponse, error) {
	var out response.AppointmentResponse
	err := c.do(ctx, http.MethodPost, "/appointments", nil, in, &out)
	return out, err
}

func (c *Client) GetAppointment(ctx context.Context, id string) (response.AppointmentResponse, error) {
	var out response.AppointmentResponse
	err := c.do(ctx, http.MethodGet, "/appointments/"+escape(id), nil, nil, &out)
	return out, err
}

// ListAppointments accepts nic, status, from and to.
func (c *Client) ListAppointments(ctx context.Context, query url.Values) ([]response.AppointmentResponse, error) {
	var out []response.AppointmentResponse
	err := c.do(ctx, http.MethodGet, "/appointments", query, nil, &out)
	return out, err
}

func (c *Client) UpdateAppointmentStatus(ctx context.Context, id, status string) (response.AppointmentResponse, error) {
	var out response.AppointmentResponse
	err := c.do(ctx, http.MethodPut, "/appointments/"+escape(id), nil, request.StatusRequest{Status: status}, &out)
	return out, err
}

func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/appointments/"+escape(id), nil, nil, nil)
}

func (c *Client) CreatePet(ctx context.Context, in request.PetRequest) (response.PetResponse, error) {
	var out response.PetResponse
	err := c.do(ctx, http.MethodPost, "/pets", nil, in, &out)
	return out, err
}

func (c *Client) ListPets(ctx context.Context, owner string) ([]response.PetResponse, error) {
	var q url.Values
	if owner != "" {
		q = url.Values{"owner": {owner}}
	}
	var out []response.PetResponse
	err := c.do(ctx, http.MethodGet, "/pets", q, nil, &out)
	return out, err
}

func (c *Client) AddMedicalRecord(ctx context.Context, petID string, in request.MedicalRecordRequest) (response.MedicalRecordResponse, error) {
	var out response.MedicalRecordResponse
	err := c.do(ctx, http.MethodPost, "/pets/"+escape(petID)+"/records", nil, in, &out)
	return out, err
}

func (c *Client) ListMedicalRecords(ctx context.Context, petID string) ([]response.MedicalRecordResponse, error) {
	var out []response.MedicalRecordResponse
	err := c.do(ctx, http.MethodGet, "/pets/"+escape(petID)+"/records", nil, nil, &out)
	return out, err
}
