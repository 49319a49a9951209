package dto

type CreateDeviceRequest struct {
	DeviceName   string `json:"device_name"`
	MQTTUsername string `json:"mqtt_username"`
}

type CreateDeviceResponse struct {
	DeviceName   string `json:"device_name"`
	MQTTUsername string `json:"mqtt_username"`
	MQTTPassword string `json:"mqtt_password"`
	ClientID     string `json:"client_id"`
}
