package routes

import (
	"context"
	"fmt"

	"vetcare/internal/adapter/http/handlers"
	"vetcare/internal/adapter/persistence/memory"
	"vetcare/internal/adapter/persistence/repository"
	"vetcare/internal/config"
	"vetcare/internal/domain/lifecycle"
	"vetcare/internal/infrastructure/auth"
	"vetcare/internal/infrastructure/database"
	"vetcare/internal/usecase"
	"vetcare/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// Stores is the Entity Store, one repository per entity kind.
type Stores struct {
	Bookings       interfaces.IBookingRepository
	Appointments   interfaces.IAppointmentRepository
	Invoices       interfaces.IInvoiceRepository
	Pets           interfaces.IPetRepository
	MedicalRecords interfaces.IMedicalRecordRepository
}

func NewMemoryStores() Stores {
	return Stores{
		Bookings:       memory.NewBookingRepository(),
		Appointments:   memory.NewAppointmentRepository(),
		Invoices:       memory.NewInvoiceRepository(),
		Pets:           memory.NewPetRepository(),
		MedicalRecords: memory.NewMedicalRecordRepository(),
	}
}

func NewDynamoStores(ddb repository.DynamoAPI, cfg *config.Config) Stores {
	return Stores{
		Bookings:       repository.NewBookingDynamoRepository(ddb, cfg.BookingsTable),
		Appointments:   repository.NewAppointmentDynamoRepository(ddb, cfg.AppointmentsTable),
		Invoices:       repository.NewInvoiceDynamoRepository(ddb, cfg.InvoicesTable),
		Pets:           repository.NewPetDynamoRepository(ddb, cfg.PetsTable),
		MedicalRecords: repository.NewMedicalRecordDynamoRepository(ddb, cfg.MedicalRecordsTable),
	}
}

// OpenStores picks the store driver named by STORE_DRIVER.
func OpenStores(ctx context.Context, cfg *config.Config) (Stores, error) {
	if cfg.UsesMemoryStore() {
		return NewMemoryStores(), nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Stores{}, fmt.Errorf("connect dynamodb: %w", err)
	}
	return NewDynamoStores(ddb, cfg), nil
}

type Handlers struct {
	Bookings     *handlers.BookingHandler
	Invoices     *handlers.InvoiceHandler
	Appointments *handlers.AppointmentHandler
	Pets         *handlers.PetHandler
}

// NewHandlers builds the use cases over stores with a single engine, so
// both surfaces share one transition mode.
func NewHandlers(stores Stores, engine *lifecycle.Engine, log zerolog.Logger) Handlers {
	return Handlers{
		Bookings:     handlers.NewBookingHandler(usecase.NewBookingUseCase(stores.Bookings, engine, log)),
		Invoices:     handlers.NewInvoiceHandler(usecase.NewInvoiceUseCase(stores.Invoices, engine, log)),
		Appointments: handlers.NewAppointmentHandler(usecase.NewAppointmentUseCase(stores.Appointments, engine, log)),
		Pets:         handlers.NewPetHandler(usecase.NewPetUseCase(stores.Pets, stores.MedicalRecords, log)),
	}
}

// NewVerifier returns the access verifier named by AUTH_MODE.
func NewVerifier(cfg *config.Config) interfaces.IAccessVerifier {
	if cfg.AuthMode == config.AuthJWT {
		return auth.NewJWTVerifier(cfg.AuthJWTSecret)
	}
	return auth.OpenAccess{}
}
