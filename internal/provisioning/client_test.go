package provisioning

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDeviceSuccess(t *testing.T) {
	var gotBody DeviceRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(DeviceCredentials{
			DeviceName:   gotBody.DeviceName,
			MQTTUsername: gotBody.MQTTUsername,
			MQTTPassword: "p@ss",
			ClientID:     "cid-1",
		})
	}))
	defer server.Close()

	client := NewClient(Config{URL: server.URL})
	creds, err := client.CreateDevice(context.Background(), DeviceRequest{
		DeviceName:   "Sensor-12",
		MQTTUsername: "sensor12",
	})
	require.NoError(t, err)

	assert.Equal(t, "Sensor-12", gotBody.DeviceName)
	assert.Equal(t, "sensor12", gotBody.MQTTUsername)
	assert.Equal(t, "p@ss", creds.MQTTPassword)
	assert.Equal(t, "cid-1", creds.ClientID)
}

func TestCreateDeviceUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"username taken"}`))
	}))
	defer server.Close()

	client := NewClient(Config{URL: server.URL})
	_, err := client.CreateDevice(context.Background(), DeviceRequest{DeviceName: "d", MQTTUsername: "u"})

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusConflict, upstreamErr.StatusCode)
	assert.Equal(t, "username taken", upstreamErr.Message)
}

func TestCreateDeviceUpstreamErrorUnexpectedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := NewClient(Config{URL: server.URL})
	_, err := client.CreateDevice(context.Background(), DeviceRequest{DeviceName: "d", MQTTUsername: "u"})

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusBadGateway, upstreamErr.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), upstreamErr.Message)
}

func TestCreateDeviceTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(Config{URL: server.URL})
	_, err := client.CreateDevice(context.Background(), DeviceRequest{DeviceName: "d", MQTTUsername: "u"})

	require.Error(t, err)
	var upstreamErr *UpstreamError
	assert.False(t, errors.As(err, &upstreamErr))
}

func TestCreateDeviceTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(Config{URL: server.URL, Timeout: 20 * time.Millisecond})
	_, err := client.CreateDevice(context.Background(), DeviceRequest{DeviceName: "d", MQTTUsername: "u"})
	require.Error(t, err)
}

func TestCreateDeviceInvalidSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(Config{URL: server.URL})
	_, err := client.CreateDevice(context.Background(), DeviceRequest{DeviceName: "d", MQTTUsername: "u"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
