package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Store     string `json:"store"`
	StoreOK   string `json:"store_status"`
	Analyzer  bool   `json:"analyzer_configured"`
	Chat      bool   `json:"chat_configured"`
}
