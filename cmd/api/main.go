package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/config"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/account"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/chemical"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/gatepass"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/note"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/outstanding"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/payment"
	appHTTP "github.com/cmlabs-hris/backoffice-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/document"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/repository/postgresql"
	accountService "github.com/cmlabs-hris/backoffice-backend-go/internal/service/account"
	chemicalService "github.com/cmlabs-hris/backoffice-backend-go/internal/service/chemical"
	employeeService "github.com/cmlabs-hris/backoffice-backend-go/internal/service/employee"
	"github.com/cmlabs-hris/backoffice-backend-go/internal/service/file"
	gatepassService "github.com/cmlabs-hris/backoffice-backend-go/internal/service/gatepass"
	noteService "github.com/cmlabs-hris/backoffice-backend-go/internal/service/note"
	outstandingService "github.com/cmlabs-hris/backoffice-backend-go/internal/service/outstanding"
	paymentService "github.com/cmlabs-hris/backoffice-backend-go/internal/service/payment"
	payrollService "github.com/cmlabs-hris/backoffice-backend-go/internal/service/payroll"
	reminderService "github.com/cmlabs-hris/backoffice-backend-go/internal/service/reminder"
	"github.com/shopspring/decimal"
)

// repositories is the ledger store selected by STORAGE_DRIVER.
type repositories struct {
	employee    employee.EmployeeRepository
	chemical    chemical.ChemicalRepository
	outstanding outstanding.OutstandingRepository
	account     account.RecordRepository
	payment     payment.PaymentRepository
	gatepass    gatepass.GatepassRepository
	note        note.NoteRepository
}

func memoryRepositories() repositories {
	return repositories{
		employee:    memory.NewEmployeeRepository(),
		chemical:    memory.NewChemicalRepository(),
		outstanding: memory.NewOutstandingRepository(),
		account:     memory.NewAccountRecordRepository(),
		payment:     memory.NewPaymentRepository(),
		gatepass:    memory.NewGatepassRepository(),
		note:        memory.NewNoteRepository(),
	}
}

func postgresRepositories(db *database.DB) repositories {
	return repositories{
		employee:    postgresql.NewEmployeeRepository(db),
		chemical:    postgresql.NewChemicalRepository(db),
		outstanding: postgresql.NewOutstandingRepository(db),
		account:     postgresql.NewAccountRecordRepository(db),
		payment:     postgresql.NewPaymentRepository(db),
		gatepass:    postgresql.NewGatepassRepository(db),
		note:        postgresql.NewNoteRepository(db),
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	decimal.MarshalJSONWithoutQuotes = true

	var repos repositories
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		slog.Warn("Using in-memory ledger store, data is lost on restart")
		repos = memoryRepositories()
	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		defer db.Close()

		if err := db.Migrate(); err != nil {
			log.Fatal("Error migrating database: ", err)
		}
		repos = postgresRepositories(db)
	default:
		log.Fatal("Unsupported storage driver: ", cfg.Storage.Driver)
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	clk := clock.New()
	m := metrics.Default()
	hub := sse.NewHub()
	renderer := document.NewRenderer(cfg.Business.Name, cfg.Business.Currency)
	fileService := file.NewFileService(fileStorage, clk)

	employeeSvc := employeeService.NewEmployeeService(repos.employee, m)
	payrollSvc := payrollService.NewPayrollService(repos.employee, renderer, fileService, clk, cfg.Payroll.StrictInputs)
	paymentSvc := paymentService.NewPaymentService(repos.payment, renderer, clk, m)
	accountSvc := accountService.NewAccountService(repos.account, clk, m)
	chemicalSvc := chemicalService.NewChemicalService(repos.chemical, clk, m)
	outstandingSvc := outstandingService.NewOutstandingService(repos.outstanding, renderer, clk, m)
	gatepassSvc := gatepassService.NewGatepassService(repos.gatepass, renderer, m)
	noteSvc := noteService.NewNoteService(repos.note, clk, m)
	reminderSvc := reminderService.NewReminderService(repos.note, repos.gatepass, hub, clk, m)

	scheduler := cron.NewScheduler(m)
	cron.NewReminderJobs(reminderSvc, cfg.Reminder.Interval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.Handlers{
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Payment:     appHTTP.NewPaymentHandler(paymentSvc),
		Account:     appHTTP.NewAccountHandler(accountSvc),
		Chemical:    appHTTP.NewChemicalHandler(chemicalSvc),
		Outstanding: appHTTP.NewOutstandingHandler(outstandingSvc),
		Gatepass:    appHTTP.NewGatepassHandler(gatepassSvc),
		Note:        appHTTP.NewNoteHandler(noteSvc),
		Reminder:    appHTTP.NewReminderHandler(reminderSvc),
	}, appHTTP.RouterOptions{
		AppName:        cfg.Business.Name,
		Env:            cfg.App.Env,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: cfg.App.CORSOrigins,
		DocumentsPath:  fileStorage.BasePath(),
		Metrics:        m,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server running", "addr", srv.Addr, "driver", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}
