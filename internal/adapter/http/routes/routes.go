package routes

import (
	"time"

	_ "vetcare/docs" // swagger spec registration
	"vetcare/internal/adapter/http/handlers"
	"vetcare/internal/adapter/http/middleware"
	"vetcare/internal/infrastructure/auth"
	"vetcare/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathPing         = "/ping"
	PathBookings     = "/bookings"
	PathInvoices     = "/invoices"
	PathAppointments = "/appointments"
	PathPets         = "/pets"
)

// Options configures the middleware shared by both surfaces.
type Options struct {
	Logger   zerolog.Logger
	Timeout  time.Duration
	Verifier interfaces.IAccessVerifier
}

// NewPrimaryRouter serves bookings and invoices.
func NewPrimaryRouter(opts Options, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addPingRoutes(router)

	api := router.Group("", middleware.Authorize(verifier(opts)))
	addBookingRoutes(api, h.Bookings)
	addInvoiceRoutes(api, h.Invoices)
	return router
}

// NewCompanionRouter serves appointments and pets.
func NewCompanionRouter(opts Options, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts)

	addPingRoutes(router)

	api := router.Group("", middleware.Authorize(verifier(opts)))
	addAppointmentRoutes(api, h.Appointments)
	addPetRoutes(api, h.Pets)
	return router
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.Recovery(opts.Logger))
	if opts.Timeout > 0 {
		router.Use(middleware.RequestTimeout(opts.Timeout))
	}
}

func verifier(opts Options) interfaces.IAccessVerifier {
	if opts.Verifier == nil {
		return auth.OpenAccess{}
	}
	return opts.Verifier
}

func addPingRoutes(router *gin.Engine) {
	router.GET(PathPing, handlers.Ping)
}

func addBookingRoutes(rg *gin.RouterGroup, h *handlers.BookingHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.PATCH("/:id/status", h.UpdateBookingStatus)
		bookings.DELETE("/:id", h.DeleteBooking)
	}
}

func addInvoiceRoutes(rg *gin.RouterGroup, h *handlers.InvoiceHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", h.CreateInvoice)
		invoices.GET("", h.ListInvoices)
		invoices.GET("/:id", h.GetInvoice)
		invoices.PUT("/:id", h.UpdateInvoice)
		invoices.PATCH("/:id/status", h.UpdateInvoiceStatus)
		invoices.POST("/:id/pay", h.PayInvoice)
		invoices.DELETE("/:id", h.DeleteInvoice)
	}
}

func addAppointmentRoutes(rg *gin.RouterGroup, h *handlers.AppointmentHandler) {
	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		// keyed by generated id, never by nic
		appointments.PUT("/:id", h.UpdateAppointmentStatus)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

func addPetRoutes(rg *gin.RouterGroup, h *handlers.PetHandler) {
	pets := rg.Group(PathPets)
	{
		pets.POST("", h.CreatePet)
		pets.GET("", h.ListPets)
		pets.GET("/:id", h.GetPet)
		pets.POST("/:id/records", h.AddMedicalRecord)
		pets.GET("/:id/records", h.ListMedicalRecords)
	}
}
