package provisioning

// DeviceRequest is the normalized payload forwarded to the
// provisioning service. Fields are trimmed before the client is called.
type DeviceRequest struct {
	DeviceName   string `json:"device_name"`
	MQTTUsername string `json:"mqtt_username"`
}

// DeviceCredentials is the credential bundle issued by the provisioning
// service. It is relayed to the caller verbatim and never stored.
type DeviceCredentials struct {
	DeviceName   string `json:"device_name"`
	MQTTUsername string `json:"mqtt_username"`
	MQTTPassword string `json:"mqtt_password"`
	ClientID     string `json:"client_id"`
}
