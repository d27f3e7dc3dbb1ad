package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vetcare/internal/adapter/http/dto/request"
	"vetcare/pkg/client"

	"github.com/spf13/cobra"
)

func clientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Call a running API surface",
	}
	cmd.PersistentFlags().String("url", "http://localhost:8080", "Base URL of the surface")
	cmd.PersistentFlags().String("token", "", "Bearer token")
	cmd.PersistentFlags().Duration("timeout", client.DefaultTimeout, "Request timeout")

	cmd.AddCommand(bookingClientCmd())
	cmd.AddCommand(invoiceClientCmd())
	cmd.AddCommand(appointmentClientCmd())
	return cmd
}

func newClient(cmd *cobra.Command) (*client.Client, error) {
	base, _ := cmd.Flags().GetString("url")
	token, _ := cmd.Flags().GetString("token")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	c, err := client.New(base, timeout)
	if err != nil {
		return nil, err
	}
	if token != "" {
		c = c.WithToken(token)
	}
	return c, nil
}

// printResult writes v as indented JSON, or turns a client error into the
// message meant for a person.
func printResult(cmd *cobra.Command, v any, err error) error {
	if err != nil {
		var cerr *client.Error
		if errors.As(err, &cerr) {
			return errors.New(cerr.UserMessage())
		}
		return err
	}
	if v == nil {
		return nil
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func queryFromFlags(cmd *cobra.Command, names ...string) url.Values {
	q := url.Values{}
	for _, name := range names {
		if v, _ := cmd.Flags().GetString(name); v != "" {
			q.Set(name, v)
		}
	}
	return q
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, raw)
}

func bookingClientCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "booking", Short: "Boarding reservations"}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := request.BookingRequest{}
			in.BoardingType, _ = cmd.Flags().GetString("boarding-type")
			in.AdditionalServices, _ = cmd.Flags().GetString("services")
			in.SpecialNotes, _ = cmd.Flags().GetString("notes")
			in.User, _ = cmd.Flags().GetString("user")
			in.Pet, _ = cmd.Flags().GetString("pet")

			var err error
			checkIn, _ := cmd.Flags().GetString("check-in")
			if in.CheckIn, err = parseDate(checkIn); err != nil {
				return fmt.Errorf("invalid --check-in: %w", err)
			}
			checkOut, _ := cmd.Flags().GetString("check-out")
			if in.CheckOut, err = parseDate(checkOut); err != nil {
				return fmt.Errorf("invalid --check-out: %w", err)
			}

			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			out, err := c.CreateBooking(cmd.Context(), in)
			return printResult(cmd, out, err)
		},
	}
	create.Flags().String("boarding-type", "standard", "standard, deluxe or premium")
	create.Flags().String("check-in", "", "Check-in date (YYYY-MM-DD or RFC 3339)")
	create.Flags().String("check-out", "", "Check-out date (YYYY-MM-DD or RFC 3339)")
	create.Flags().String("services", "", "none, grooming, relaxation or exercise")
	create.Flags().String("notes", "", "Special notes")
	create.Flags().String("user", "", "Owner reference")
	create.Flags().String("pet", "", "Pet reference")
	_ = create.MarkFlagRequired("check-in")
	_ = create.MarkFlagRequired("check-out")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Fetch a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			out, err := c.GetBooking(cmd.Context(), args[0])
			return printResult(cmd, out, err)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			out, err := c.ListBookings(cmd.Context(), queryFromFlags(cmd, "status", "from", "to", "limit"))
			return printResult(cmd, out, err)
		},
	}
	list.Flags().String("status", "", "Status filter")
	list.Flags().String("from", "", "checkIn lower bound (RFC 3339)")
	list.Flags().String("to", "", "checkIn upper bound (RFC 3339)")
	list.Flags().String("limit", "", "Maximum number of bookings")

	status := &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Change a booking's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			out, err := c.UpdateBookingStatus(cmd.Context(), args[0], args[1])
			return printResult(cmd, out, err)
		},
	}

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			return printResult(cmd, nil, c.DeleteBooking(cmd.Context(), args[0]))
		},
	}

	cmd.AddCommand(create, get, list, status, del)
	return cmd
}

// parseItem reads "description:quantity:unitPrice".
func parseItem(raw string) (request.InvoiceItemRequest, error) {
	i := strings.LastIndex(raw, ":")
	j := -1
	if i > 0 {
		j = strings.LastIndex(raw[:i], ":")
	}
	if j < 0 {
		return request.InvoiceItemRequest{}, fmt.Errorf("item %q: want description:quantity:unitPrice", raw)
	}
	qty, err := strconv.Atoi(raw[j+1 : i])
	if err != nil {
		return request.InvoiceItemRequest{}, fmt.Errorf("item %q: quantity: %w", raw, err)
	}
	price, err := strconv.ParseFloat(raw[i+1:], 64)
	if err != nil {
		return request.InvoiceItemRequest{}, fmt.Errorf("item %q: unit price: %w", raw, err)
	}
	return request.InvoiceItemRequest{Description: raw[:j], Quantity: qty, UnitPrice: price}, nil
}

func invoiceClientCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "invoice", Short: "Invoices"}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create an invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := request.InvoiceRequest{}
			in.PatientName, _ = cmd.Flags().GetString("patient")
			in.OwnerName, _ = cmd.Flags().GetString("owner")
			raw, _ := cmd.Flags().GetStringArray("item")
			for _, r := range raw {
				item, err := parseItem(r)
				if err != nil {
					return err
				}
				in.Items = append(in.Items, item)
			}
			if cmd.Flags().Changed("total") {
				total, _ := cmd.Flags().GetFloat64("total")
				in.Total = &total
			}

			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			out, err := c.CreateInvoice(cmd.Context(), in)
			return printResult(cmd, out, err)
		},
	}
	create.Flags().String("patient", "", "Patient name")
	create.Flags().String("owner", "", "Owner name")
	create.Flags().StringArray("item", nil, "Line item as description:quantity:unitPrice (repeatable)")
	create.Flags().Float64("total", 0, "Explicit total; defaults to the sum of the items")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Fetch an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			out, err := c.GetInvoice(cmd.Context(), args[0])
			return printResult(cmd, out, err)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List invoices, one page at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			out, err := c.ListInvoices(cmd.Context(), queryFromFlags(cmd, "page", "limit", "status", "search"))
			return printResult(cmd, out, err)
		},
	}
	list.Flags().String("page", "", "Page, starting at 1")
	list.Flags().String("limit", "", "Page size")
	list.Flags().String("status", "", "Status filter")
	list.Flags().String("search", "", "Substring of patient or owner name")

	status := &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Change an invoice's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			out, err := c.UpdateInvoiceStatus(cmd.Context(), args[0], args[1])
			return printResult(cmd, out, err)
		},
	}

	pay := &cobra.Command{
		Use:   "pay ID",
		Short: "Mark an unpaid invoice as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			out, err := c.PayInvoice(cmd.Context(), args[0])
			return printResult(cmd, out, err)
		},
	}

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			return printResult(cmd, nil, c.DeleteInvoice(cmd.Context(), args[0]))
		},
	}

	cmd.AddCommand(create, get, list, status, pay, del)
	return cmd
}

func appointmentClientCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "appointment", Short: "Appointments (companion surface)"}

	create := &cobra.Command{
		Use:   "create",
		Short: "Request an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := request.AppointmentRequest{}
			in.Name, _ = cmd.Flags().GetString("name")
			in.Contact, _ = cmd.Flags().GetString("contact")
			in.Email, _ = cmd.Flags().GetString("email")
			in.NIC, _ = cmd.Flags().GetString("nic")
			in.PetID, _ = cmd.Flags().GetString("pet")
			in.AppointmentType, _ = cmd.Flags().GetString("type")

			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			out, err := c.CreateAppointment(cmd.Context(), in)
			return printResult(cmd, out, err)
		},
	}
	create.Flags().String("name", "", "Owner name")
	create.Flags().String("contact", "", "Phone number")
	create.Flags().String("email", "", "Email address")
	create.Flags().String("nic", "", "Owner national id")
	create.Flags().String("pet", "", "Pet id")
	create.Flags().String("type", "", "Appointment type")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Fetch an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			out, err := c.GetAppointment(cmd.Context(), args[0])
			return printResult(cmd, out, err)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			out, err := c.ListAppointments(cmd.Context(), queryFromFlags(cmd, "nic", "status", "from", "to"))
			return printResult(cmd, out, err)
		},
	}
	list.Flags().String("nic", "", "Owner national id")
	list.Flags().String("status", "", "Status filter")
	list.Flags().String("from", "", "createdAt lower bound (RFC 3339)")
	list.Flags().String("to", "", "createdAt upper bound (RFC 3339)")

	status := &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Confirm or reject an appointment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			out, err := c.UpdateAppointmentStatus(cmd.Context(), args[0], args[1])
			return printResult(cmd, out, err)
		},
	}

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			return printResult(cmd, nil, c.DeleteAppointment(cmd.Context(), args[0]))
		},
	}

	cmd.AddCommand(create, get, list, status, del)
	return cmd
}
