package provisioning

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// ErrInvalidResponse marks a success response whose body was not the
// expected credential bundle.
var ErrInvalidResponse = errors.New("invalid provisioning response")

type Config struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// UpstreamError is a non-2xx response from the provisioning service.
// StatusCode is the upstream HTTP status; Message is the upstream error
// field when the body carried one, else the HTTP status text.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("provisioning service returned %d: %s", e.StatusCode, e.Message)
}

// Client calls the external provisioning service that issues MQTT
// credentials. One request per call, no retries; the caller decides how
// to surface failures.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url: config.URL,
		// Default transport: certificates of the upstream host are
		// verified normally.
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateDevice registers a device upstream and returns the issued
// credential bundle. A non-2xx upstream response comes back as
// *UpstreamError; transport failures come back wrapped.
func (c *Client) CreateDevice(ctx context.Context, device DeviceRequest) (*DeviceCredentials, error) {
	payload, err := json.Marshal(device)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call provisioning service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(body, resp.StatusCode),
		}
	}

	var creds DeviceCredentials
	if err := json.Unmarshal(body, &creds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &creds, nil
}

// extractErrorMessage pulls the error field out of an upstream error
// body. Bodies that are not the expected {"error": "..."} shape degrade
// to the HTTP status text.
func extractErrorMessage(body []byte, statusCode int) string {
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Error != "" {
		return errBody.Error
	}
	return http.StatusText(statusCode)
}
