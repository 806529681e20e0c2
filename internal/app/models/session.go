package models

type Session struct {
	SessionID string `json:"session_id"`
	UID       string `json:"uid"`
	Role      string `json:"role"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
}
