package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lanestel/admin-gateway/internal/api/http/dto"
	"github.com/lanestel/admin-gateway/internal/provisioning"
)

type DeviceHandler struct {
	client *provisioning.Client
}

func NewDeviceHandler(client *provisioning.Client) *DeviceHandler {
	return &DeviceHandler{client: client}
}

// CreateDevice validates and normalizes a device-creation request,
// forwards it to the provisioning service once, and relays the issued
// credential bundle. Validation failures never reach the upstream call.
func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var req dto.CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request body"})
		return
	}

	if req.DeviceName == "" || req.MQTTUsername == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: device_name and mqtt_username"})
		return
	}

	deviceName := strings.TrimSpace(req.DeviceName)
	mqttUsername := strings.TrimSpace(req.MQTTUsername)
	if deviceName == "" || mqttUsername == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "device_name and mqtt_username cannot be empty"})
		return
	}

	creds, err := h.client.CreateDevice(c.Request.Context(), provisioning.DeviceRequest{
		DeviceName:   deviceName,
		MQTTUsername: mqttUsername,
	})
	if err != nil {
		var upstreamErr *provisioning.UpstreamError
		if errors.As(err, &upstreamErr) {
			slog.Warn("Provisioning service rejected device",
				"device_name", deviceName,
				"status", upstreamErr.StatusCode,
				"message", upstreamErr.Message)
			c.JSON(upstreamErr.StatusCode, gin.H{"error": "External API error: " + upstreamErr.Message})
			return
		}
		if errors.Is(err, provisioning.ErrInvalidResponse) {
			slog.Error("Provisioning service returned an unusable body", "device_name", deviceName, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		slog.Error("Provisioning service unreachable", "device_name", deviceName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "External API error: " + err.Error()})
		return
	}

	slog.Info("Device created", "device_name", creds.DeviceName, "client_id", creds.ClientID)
	c.JSON(http.StatusOK, dto.CreateDeviceResponse{
		DeviceName:   creds.DeviceName,
		MQTTUsername: creds.MQTTUsername,
		MQTTPassword: creds.MQTTPassword,
		ClientID:     creds.ClientID,
	})
}

// MethodNotAllowed answers unsupported verbs on the device endpoint. It
// runs outside the session gate so the verb check does not depend on
// login state.
func (h *DeviceHandler) MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}
