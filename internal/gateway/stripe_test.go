package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profast/delivery/internal/gateway"
)

func TestClient_CreatePaymentIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the form and parses the secret", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/payment_intents", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_1", r.Header.Get("Authorization"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "500", r.PostForm.Get("amount"))
			assert.Equal(t, "usd", r.PostForm.Get("currency"))
			assert.Equal(t, []string{"card"}, r.PostForm["payment_method_types[]"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret","status":"requires_payment_method"}`))
		}))
		defer srv.Close()

		client := gateway.NewClient(srv.URL, "sk_test_1", "usd")

		intent, err := client.CreatePaymentIntent(ctx, 500)
		require.NoError(t, err)
		assert.Equal(t, "pi_1", intent.ID)
		assert.Equal(t, "pi_1_secret", intent.ClientSecret)
	})

	t.Run("upstream rejection surfaces the gateway message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Amount must be at least 50 cents"}}`))
		}))
		defer srv.Close()

		client := gateway.NewClient(srv.URL, "sk_test_1", "usd")

		_, err := client.CreatePaymentIntent(ctx, 10)
		require.ErrorIs(t, err, gateway.ErrUpstream)
		assert.Contains(t, err.Error(), "Amount must be at least 50 cents")
	})

	t.Run("unreachable gateway", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		client := gateway.NewClient(srv.URL, "sk_test_1", "usd")

		_, err := client.CreatePaymentIntent(ctx, 500)
		assert.ErrorIs(t, err, gateway.ErrUpstream)
	})
}

func TestClient_RetrieveSession(t *testing.T) {
	ctx := context.Background()

	t.Run("expands the payment intent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v1/checkout/sessions/cs_1", r.URL.Path)
			assert.Equal(t, []string{"payment_intent"}, r.URL.Query()["expand[]"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "cs_1",
				"status": "complete",
				"payment_status": "paid",
				"payment_intent": {"id":"pi_1","status":"succeeded"}
			}`))
		}))
		defer srv.Close()

		client := gateway.NewClient(srv.URL, "sk_test_1", "usd")

		session, err := client.RetrieveSession(ctx, "cs_1")
		require.NoError(t, err)
		assert.Equal(t, "complete", session.Status)
		assert.Equal(t, "paid", session.PaymentStatus)
		require.NotNil(t, session.PaymentIntent)
		assert.Equal(t, "succeeded", session.PaymentIntent.Status)
	})

	t.Run("unknown session", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"message":"No such checkout.session: cs_missing"}}`))
		}))
		defer srv.Close()

		client := gateway.NewClient(srv.URL, "sk_test_1", "usd")

		_, err := client.RetrieveSession(ctx, "cs_missing")
		assert.ErrorIs(t, err, gateway.ErrUpstream)
	})
}
