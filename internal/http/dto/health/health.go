package health

// HealthResponse is the response for GET /healthz and GET /readyz.
type HealthResponse struct {
	Status  string `json:"status"` // ok | degraded
	Storage string `json:"storage,omitempty"`
	Detail  string `json:"detail,omitempty"`
}
