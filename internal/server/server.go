//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/profast/delivery/internal/kafka"
	"github.com/profast/delivery/internal/storage"
)

type ParcelStorage interface {
	AddParcel(ctx context.Context, createdBy string, attrs map[string]interface{}) (*storage.Parcel, error)
	GetParcel(ctx context.Context, id string) (*storage.Parcel, error)
	ListParcels(ctx context.Context, createdBy string) ([]*storage.Parcel, error)
	DeleteParcel(ctx context.Context, id string) (int64, error)
	RecordTrackingEvent(ctx context.Context, trackingID, parcelID, status, message, updatedBy string) (int64, error)
	ParcelTrackingEvents(ctx context.Context, parcelID string) ([]*storage.TrackingEvent, error)
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64) (string, error)
	ConfirmPayment(ctx context.Context, in storage.ConfirmPaymentInput) (string, error)
	GetSessionStatus(ctx context.Context, sessionID string) (*storage.SessionStatus, error)
	ListPayments(ctx context.Context, email string) ([]*storage.Payment, error)
}

type Server struct {
	parcels      ParcelStorage
	payments     PaymentService
	server       *http.Server
	AuditManager *AuditManager
	logger       *zap.Logger
}

func New(parcels ParcelStorage, payments PaymentService, producer kafka.Producer, auditTopic string, logger *zap.Logger) *Server {
	auditManager := NewAuditManager(2, 5, 500*time.Millisecond, producer, auditTopic, logger)
	return &Server{
		parcels:      parcels,
		payments:     payments,
		AuditManager: auditManager,
		logger:       logger,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	handler := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.AuditManager.Shutdown(ctx)

	s.logger.Info("server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", s.handleLiveness).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	router.HandleFunc("/parcels", s.handleCreateParcel).Methods(http.MethodPost)
	router.HandleFunc("/parcels", s.handleListParcels).Methods(http.MethodGet)
	router.HandleFunc("/parcels/{id}", s.handleGetParcel).Methods(http.MethodGet)
	router.HandleFunc("/parcels/{id}", s.handleDeleteParcel).Methods(http.MethodDelete)
	router.HandleFunc("/parcels/{id}/tracking", s.handleParcelTracking).Methods(http.MethodGet)

	router.HandleFunc("/create-checkout-session", s.handleCreateCheckoutSession).Methods(http.MethodPost)
	router.HandleFunc("/payment", s.handleConfirmPayment).Methods(http.MethodPost)
	router.HandleFunc("/session-status", s.handleSessionStatus).Methods(http.MethodGet)
	router.HandleFunc("/payments", s.handleListPayments).Methods(http.MethodGet)

	router.HandleFunc("/tracking", s.handleRecordTracking).Methods(http.MethodPost)

	return s.corsMiddleware(s.auditLogMiddleware(router))
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
