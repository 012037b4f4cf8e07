package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Employee    EmployeeHandler
	Payroll     PayrollHandler
	Payment     PaymentHandler
	Account     AccountHandler
	Chemical    ChemicalHandler
	Outstanding OutstandingHandler
	Gatepass    GatepassHandler
	Note        NoteHandler
	Reminder    ReminderHandler
}

// RouterOptions carries the ambient wiring of the router.
type RouterOptions struct {
	AppName        string
	Env            string
	LogLevel       slog.Level
	AllowedOrigins []string

	// DocumentsPath is served read-only under /files/ when set.
	DocumentsPath string

	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

func NewRouter(h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", opts.AppName),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition", "Content-Location"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(opts.Metrics.Middleware)

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	if opts.DocumentsPath != "" {
		r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(opts.DocumentsPath))))
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employers", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)
			r.Post("/", h.Employee.CreateEmployee)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Employee.GetEmployee)
				r.Put("/", h.Employee.UpdateEmployee)
				r.Delete("/", h.Employee.DeleteEmployee)
			})
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/employees/{id}/worksheet", h.Payroll.GetWorksheet)
			r.Post("/calculate", h.Payroll.Calculate)
			r.Post("/payslip", h.Payroll.GeneratePayslip)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", h.Payment.ListPayments)
			r.Post("/", h.Payment.CreatePayment)
			r.Get("/grouped", h.Payment.ListGrouped)
			r.Get("/export", h.Payment.Export)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Payment.GetPayment)
				r.Put("/", h.Payment.UpdatePayment)
				r.Delete("/", h.Payment.DeletePayment)
				r.Get("/voucher", h.Payment.Voucher)
			})
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", h.Account.ListRecords)
			r.Post("/", h.Account.CreateRecord)
			r.Get("/summary", h.Account.WeeklySummary)
			r.Get("/chart", h.Account.DailySeries)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Account.GetRecord)
				r.Put("/", h.Account.UpdateRecord)
				r.Delete("/", h.Account.DeleteRecord)
			})
		})

		r.Route("/chemicals", func(r chi.Router) {
			r.Get("/", h.Chemical.ListChemicals)
			r.Post("/", h.Chemical.CreateChemicalType)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Chemical.GetChemical)
				r.Put("/", h.Chemical.UpdateChemicalDetails)
				r.Post("/purchases", h.Chemical.RecordPurchase)
				r.Post("/usages", h.Chemical.RecordUsage)
				r.Get("/movements", h.Chemical.ListMovements)
			})
		})

		r.Route("/outstanding", func(r chi.Router) {
			r.Get("/", h.Outstanding.ListOutstanding)
			r.Post("/", h.Outstanding.CreateOutstanding)
			r.Get("/totals", h.Outstanding.Totals)
			r.Get("/export", h.Outstanding.Export)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Outstanding.GetOutstanding)
				r.Put("/", h.Outstanding.UpdateOutstanding)
				r.Patch("/", h.Outstanding.UpdateOutstanding)
				r.Delete("/", h.Outstanding.DeleteOutstanding)
			})
		})

		r.Route("/gatepasses", func(r chi.Router) {
			r.Get("/", h.Gatepass.ListGatepasses)
			r.Post("/", h.Gatepass.CreateGatepass)
			r.Get("/export", h.Gatepass.Export)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Gatepass.GetGatepass)
				r.Put("/", h.Gatepass.UpdateGatepass)
				r.Delete("/", h.Gatepass.DeleteGatepass)
			})
		})

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", h.Note.ListNotes)
			r.Post("/", h.Note.CreateNote)
			r.Get("/due", h.Note.ListDue)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Note.GetNote)
				r.Put("/", h.Note.UpdateNote)
				r.Delete("/", h.Note.DeleteNote)
				r.Post("/done", h.Note.MarkDone)
			})
		})

		r.Route("/reminders", func(r chi.Router) {
			r.Get("/", h.Reminder.List)
			r.Get("/stream", h.Reminder.Stream)
		})
	})
	return r
}
