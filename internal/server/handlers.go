package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/profast/delivery/internal/gateway"
	"github.com/profast/delivery/internal/repository"
	"github.com/profast/delivery/internal/storage"
)

func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Pro-fast!"))
}

func (s *Server) handleCreateParcel(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	createdBy, _ := payload["createdBy"].(string)
	if createdBy == "" {
		respondError(w, http.StatusBadRequest, "Missing createdBy")
		return
	}
	delete(payload, "createdBy")

	parcel, err := s.parcels.AddParcel(r.Context(), createdBy, payload)
	if err != nil {
		s.respondStorageError(w, "create parcel", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"message":    "Parcel created successfully",
		"insertedId": parcel.ID,
	})
}

func (s *Server) handleListParcels(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	parcels, err := s.parcels.ListParcels(r.Context(), email)
	if err != nil {
		s.respondStorageError(w, "list parcels", err)
		return
	}

	respondJSON(w, http.StatusOK, parcels)
}

func (s *Server) handleGetParcel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	parcel, err := s.parcels.GetParcel(r.Context(), id)
	if err != nil {
		s.respondStorageError(w, "get parcel", err)
		return
	}

	respondJSON(w, http.StatusOK, parcel)
}

func (s *Server) handleDeleteParcel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := s.parcels.DeleteParcel(r.Context(), id)
	if err != nil {
		s.respondStorageError(w, "delete parcel", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

func (s *Server) handleCreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var request struct {
		AmountInCents json.Number `json:"amountInCents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "amountInCents must be a positive integer")
		return
	}

	amount, err := request.AmountInCents.Int64()
	if err != nil {
		respondError(w, http.StatusBadRequest, "amountInCents must be a positive integer")
		return
	}

	clientSecret, err := s.payments.CreatePaymentIntent(r.Context(), amount)
	if err != nil {
		s.respondStorageError(w, "create checkout session", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

func (s *Server) handleConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ParcelID      string `json:"parcelId"`
		Email         string `json:"email"`
		Amount        int64  `json:"amount"`
		PaymentMethod string `json:"paymentMethod"`
		TransactionID string `json:"transactionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.ParcelID == "" {
		respondError(w, http.StatusBadRequest, "Missing parcelId")
		return
	}

	insertedID, err := s.payments.ConfirmPayment(r.Context(), storage.ConfirmPaymentInput{
		ParcelID:      request.ParcelID,
		Email:         request.Email,
		Amount:        request.Amount,
		PaymentMethod: request.PaymentMethod,
		TransactionID: request.TransactionID,
	})
	if err != nil {
		s.respondStorageError(w, "confirm payment", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"message":    "Payment recorded successfully",
		"insertedId": insertedID,
	})
}

func (s *Server) handleSessionStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "Missing session_id")
		return
	}

	status, err := s.payments.GetSessionStatus(r.Context(), sessionID)
	if err != nil {
		s.respondStorageError(w, "get session status", err)
		return
	}

	respondJSON(w, http.StatusOK, status)
}

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	payments, err := s.payments.ListPayments(r.Context(), email)
	if err != nil {
		s.respondStorageError(w, "list payments", err)
		return
	}

	respondJSON(w, http.StatusOK, payments)
}

func (s *Server) handleRecordTracking(w http.ResponseWriter, r *http.Request) {
	var request struct {
		TrackingID string `json:"trackingId"`
		ParcelID   string `json:"parcelId"`
		Status     string `json:"status"`
		Message    string `json:"message"`
		UpdatedBy  string `json:"updatedBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.ParcelID == "" || request.Status == "" {
		respondError(w, http.StatusBadRequest, "Missing parcelId or status")
		return
	}

	id, err := s.parcels.RecordTrackingEvent(r.Context(),
		request.TrackingID, request.ParcelID, request.Status, request.Message, request.UpdatedBy)
	if err != nil {
		s.respondStorageError(w, "record tracking event", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Tracking event recorded",
		"id":      id,
	})
}

func (s *Server) handleParcelTracking(w http.ResponseWriter, r *http.Request) {
	parcelID := mux.Vars(r)["id"]

	events, err := s.parcels.ParcelTrackingEvents(r.Context(), parcelID)
	if err != nil {
		s.respondStorageError(w, "list tracking events", err)
		return
	}

	respondJSON(w, http.StatusOK, events)
}

// respondStorageError maps service errors onto the HTTP taxonomy: bad input
// 400, missing or already-paid 404, gateway trouble 502, everything else 500.
func (s *Server) respondStorageError(w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		respondError(w, http.StatusBadRequest, "Invalid parcel id")
	case errors.Is(err, storage.ErrInvalidAmount):
		respondError(w, http.StatusBadRequest, "amountInCents must be a positive integer")
	case errors.Is(err, storage.ErrParcelNotFound):
		respondError(w, http.StatusNotFound, "Parcel not found")
	case errors.Is(err, storage.ErrParcelAlreadyPaid):
		respondError(w, http.StatusNotFound, "Parcel already paid")
	case errors.Is(err, repository.ErrObjectNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, gateway.ErrUpstream):
		respondError(w, http.StatusBadGateway, "Payment gateway error")
	default:
		s.logger.Error("request failed", zap.String("operation", operation), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
