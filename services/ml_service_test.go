package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubML(t *testing.T, handler http.HandlerFunc) *MLService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewMLService(srv.URL, 2*time.Second)
}

func TestPredictShapes(t *testing.T) {
	t.Run("bare array payload", func(t *testing.T) {
		ml := stubML(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[4, 8, 15]`))
		})
		p, err := ml.Predict(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, []uint{4, 8, 15}, p.ProductIDs)
		assert.Equal(t, "ml-service", p.Source)
	})

	t.Run("object payload", func(t *testing.T) {
		ml := stubML(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"products":[16,23],"confidence":0.82,"source":"lightgbm","model_version":"v3"}`))
		})
		p, err := ml.Predict(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, []uint{16, 23}, p.ProductIDs)
		assert.InDelta(t, 0.82, p.Confidence, 1e-9)
		assert.Equal(t, "lightgbm", p.Source)
		assert.Equal(t, "v3", p.ModelVersion)
	})

	t.Run("malformed payload errors", func(t *testing.T) {
		ml := stubML(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`"not a basket"`))
		})
		_, err := ml.Predict(context.Background(), 1)
		assert.Error(t, err)
	})

	t.Run("non-200 errors", func(t *testing.T) {
		ml := stubML(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, err := ml.Predict(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestFetchDemoHistory(t *testing.T) {
	t.Run("unknown external id", func(t *testing.T) {
		ml := stubML(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		_, err := ml.FetchDemoHistory(context.Background(), 99999)
		assert.ErrorIs(t, err, ErrExternalUserNotFound)
	})

	t.Run("historical orders decode", func(t *testing.T) {
		ml := stubML(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"days_since_prior":0,"products":[{"id":1,"name":"Banana","quantity":2}]},
				{"days_since_prior":6,"products":[{"id":2,"name":"Milk","quantity":1}]}]`))
		})
		orders, err := ml.FetchDemoHistory(context.Background(), 42)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, 6, orders[1].DaysSincePrior)
		assert.Equal(t, "Banana", orders[0].Products[0].Name)
	})
}
