package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/config"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/http/handlers/academic"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/http/handlers/admin"
	applicationhandler "github.com/RichyP48/Inscription-en-ligne-bf/internal/http/handlers/application"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/http/handlers/docs"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/http/handlers/profile"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/http/handlers/session"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/http/handlers/user"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/http/middleware"
	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	utils "github.com/RichyP48/Inscription-en-ligne-bf/internal/utils/http_errors"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func StartServer(
	ctx context.Context,
	cfg *config.HTTPServer,
	log *slog.Logger,
	authService AuthService,
	documentService DocumentService,
	academicService AcademicService,
	profileService ProfileService,
	applicationService ApplicationService,
	userService UserService,
) error {
	r := mux.NewRouter()

	r.Use(middleware.Logger(log))

	registry := prometheus.NewRegistry()

	metrics, err := middleware.NewMetrics(registry)
	if err != nil {
		return err
	}

	r.Use(metrics.Handler())

	setupRoutes(r, log, registry, authService, documentService, academicService, profileService, applicationService, userService)

	srv := &http.Server{
		Addr:         cfg.Address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
		Handler:      r,
	}

	errChan := make(chan error, 1)

	go func() {
		log.Info("server started", slog.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("server closed gracefully")
			} else {
				log.Error("could not start server:", "error", err)
				errChan <- err
			}
		}
	}()
	select {
	case <-ctx.Done():
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down server", "error", err)
			return err
		}
		log.Info("server exited gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func setupRoutes(
	r *mux.Router,
	log *slog.Logger,
	registry *prometheus.Registry,
	auth AuthService,
	doc DocumentService,
	acad AcademicService,
	prof ProfileService,
	apps ApplicationService,
	us UserService,
) {
	// POST user
	r.HandleFunc("/api/register", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user.Add(ctx, log, w, r, auth)
	}).Methods(http.MethodPost)

	// POST session
	r.HandleFunc("/api/auth", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session.Add(ctx, log, w, r, auth)
	}).Methods(http.MethodPost)

	// DELETE session
	r.HandleFunc("/api/auth/{token}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		token := vars["token"]
		session.Delete(ctx, log, w, r, token, auth)
	}).Methods(http.MethodDelete)

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	protected := r.NewRoute().Subrouter()

	protected.Use(middleware.Auth(log, auth))

	// POST doc
	protected.HandleFunc("/api/documents", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docs.Upload(ctx, log, w, r, doc)
	}).Methods(http.MethodPost)

	// GET docs
	protected.HandleFunc("/api/documents", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docs.Get(ctx, log, w, r, doc)
	}).Methods(http.MethodGet)

	// GET doc by id
	protected.HandleFunc("/api/documents/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.GetByID(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodGet)

	// GET doc content
	protected.HandleFunc("/api/documents/{id}/content", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.GetContent(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodGet)

	// DELETE doc by id
	protected.HandleFunc("/api/documents/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.Delete(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodDelete)

	// GET academic history
	protected.HandleFunc("/api/academic-history", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		academic.Get(ctx, log, w, r, acad)
	}).Methods(http.MethodGet)

	// POST academic record
	protected.HandleFunc("/api/academic-history", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		academic.Add(ctx, log, w, r, acad)
	}).Methods(http.MethodPost)

	// PUT academic record
	protected.HandleFunc("/api/academic-history/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		recordID := vars["id"]
		academic.Update(ctx, log, w, r, recordID, acad)
	}).Methods(http.MethodPut)

	// DELETE academic record
	protected.HandleFunc("/api/academic-history/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		recordID := vars["id"]
		academic.Delete(ctx, log, w, r, recordID, acad)
	}).Methods(http.MethodDelete)

	// GET personal info
	protected.HandleFunc("/api/applicant/personal-info", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		profile.GetPersonalInfo(ctx, log, w, r, prof)
	}).Methods(http.MethodGet)

	// PUT personal info
	protected.HandleFunc("/api/applicant/personal-info", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		profile.PutPersonalInfo(ctx, log, w, r, prof)
	}).Methods(http.MethodPut)

	// GET contact info
	protected.HandleFunc("/api/applicant/contact-info", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		profile.GetContactInfo(ctx, log, w, r, prof)
	}).Methods(http.MethodGet)

	// PUT contact info
	protected.HandleFunc("/api/applicant/contact-info", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		profile.PutContactInfo(ctx, log, w, r, prof)
	}).Methods(http.MethodPut)

	// GET own application status
	protected.HandleFunc("/api/application/status", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		applicationhandler.GetStatus(ctx, log, w, r, apps)
	}).Methods(http.MethodGet)

	adm := r.PathPrefix("/api/admin").Subrouter()

	adm.Use(middleware.Auth(log, auth))
	adm.Use(middleware.AdminOnly(log))

	// GET applications
	adm.HandleFunc("/applications", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		admin.ListApplications(ctx, log, w, r, apps)
	}).Methods(http.MethodGet)

	// GET application detail
	adm.HandleFunc("/applications/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		userID := vars["id"]
		admin.GetApplication(ctx, log, w, r, userID, us, doc, acad)
	}).Methods(http.MethodGet)

	// PATCH application status
	adm.HandleFunc("/applications/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		userID := vars["id"]
		admin.UpdateApplicationStatus(ctx, log, w, r, userID, apps)
	}).Methods(http.MethodPatch)

	// PATCH document status
	adm.HandleFunc("/documents/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		admin.UpdateDocumentStatus(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodPatch)

	// GET stats
	adm.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		admin.Stats(ctx, log, w, r, apps)
	}).Methods(http.MethodGet)

	// Not allowed
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, http.StatusMethodNotAllowed, models.ErrMethodNotAllowed.Error())
	})
}
