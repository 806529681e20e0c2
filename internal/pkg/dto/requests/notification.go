package requests

type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type WhatsAppMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}
