package response

import (
	"time"

	"vetcare/internal/domain/entities"
	"vetcare/internal/usecase"
)

type BookingResponse struct {
	ID                 string    `json:"_id"`
	User               string    `json:"user,omitempty"`
	Pet                string    `json:"pet,omitempty"`
	BoardingType       string    `json:"boardingType"`
	CheckIn            time.Time `json:"checkIn"`
	CheckOut           time.Time `json:"checkOut"`
	SpecialNotes       string    `json:"specialNotes,omitempty"`
	AdditionalServices string    `json:"additionalServices"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		User:               b.User,
		Pet:                b.Pet,
		BoardingType:       string(b.BoardingType),
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		SpecialNotes:       b.SpecialNotes,
		AdditionalServices: string(b.AdditionalServices),
		Status:             string(b.Status),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func FromBookings(bs []entities.Booking) []BookingResponse {
	return mapAll(bs, FromBooking)
}

type AppointmentResponse struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Contact         string    `json:"contact"`
	Email           string    `json:"email"`
	NIC             string    `json:"nic"`
	PetID           string    `json:"petID"`
	AppointmentType string    `json:"appointmentType"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FromAppointment reports a missing stored status as Pending.
func FromAppointment(a entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		Name:            a.Name,
		Contact:         a.Contact,
		Email:           a.Email,
		NIC:             a.NIC,
		PetID:           a.PetID,
		AppointmentType: a.AppointmentType,
		Status:          string(a.EffectiveStatus()),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func FromAppointments(as []entities.Appointment) []AppointmentResponse {
	return mapAll(as, FromAppointment)
}

type InvoiceItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

type InvoiceResponse struct {
	ID          string                `json:"_id"`
	PatientName string                `json:"patientName"`
	OwnerName   string                `json:"ownerName"`
	Items       []InvoiceItemResponse `json:"items"`
	Total       float64               `json:"total"`
	Status      string                `json:"status"`
	Payable     bool                  `json:"payable"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount(),
		})
	}
	return InvoiceResponse{
		ID:          inv.ID,
		PatientName: inv.PatientName,
		OwnerName:   inv.OwnerName,
		Items:       items,
		Total:       inv.Total,
		Status:      string(inv.Status),
		Payable:     inv.Payable(),
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

type InvoicePageResponse struct {
	Items   []InvoiceResponse `json:"items"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	HasMore bool              `json:"hasMore"`
}

func FromInvoicePage(p usecase.InvoicePage) InvoicePageResponse {
	return InvoicePageResponse{
		Items:   mapAll(p.Items, FromInvoice),
		Page:    p.Page,
		Limit:   p.Limit,
		HasMore: p.HasMore,
	}
}

type PetResponse struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Species   string     `json:"species"`
	Breed     string     `json:"breed,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Owner     string     `json:"owner,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func FromPet(p entities.Pet) PetResponse {
	return PetResponse{
		ID:        p.ID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		BirthDate: p.BirthDate,
		Owner:     p.Owner,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromPets(ps []entities.Pet) []PetResponse {
	return mapAll(ps, FromPet)
}

type MedicalRecordResponse struct {
	ID           string    `json:"_id"`
	PetID        string    `json:"pet"`
	VisitDate    time.Time `json:"visitDate"`
	Diagnosis    string    `json:"diagnosis"`
	Treatment    string    `json:"treatment,omitempty"`
	Veterinarian string    `json:"veterinarian,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromMedicalRecord(r entities.MedicalRecord) MedicalRecordResponse {
	return MedicalRecordResponse{
		ID:           r.ID,
		PetID:        r.PetID,
		VisitDate:    r.VisitDate,
		Diagnosis:    r.Diagnosis,
		Treatment:    r.Treatment,
		Veterinarian: r.Veterinarian,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
	}
}

func FromMedicalRecords(rs []entities.MedicalRecord) []MedicalRecordResponse {
	return mapAll(rs, FromMedicalRecord)
}

type DeletedResponse struct {
	ID      string `json:"_id"`
	Deleted bool   `json:"deleted"`
}

type PingResponse struct {
	Message string `json:"message"`
}

// mapAll never returns nil so empty collections encode as [].
func mapAll[E any, R any](in []E, f func(E) R) []R {
	out := make([]R, 0, len(in))
	for _, e := range in {
		out = append(out, f(e))
	}
	return out
}
