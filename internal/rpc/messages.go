package rpc

import "github.com/MKhiriev/vibechef/models"

type AuthRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}

type UpsertRequest struct {
	Recipe models.Recipe `json:"recipe"`
}

type UpsertResponse struct {
	ID string `json:"id"`
}

type DeleteRequest struct {
	ID string `json:"id"`
}

type SetFieldRequest struct {
	ID    string `json:"id"`
	Field string `json:"field"`
	Value any    `json:"value"`
}

type WatchRequest struct{}

type Empty struct{}
