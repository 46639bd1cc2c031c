package models

import "encoding/json"

// Envelope is the REST response wrapper: { data, meta?, errors? }.
type Envelope struct {
	Data   json.RawMessage `json:"data"`
	Meta   *PaginationMeta `json:"meta,omitempty"`
	Errors []ErrorItem     `json:"errors,omitempty"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ErrorItem struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
}

type AuthResponse struct {
	User   User       `json:"user"`
	Tokens AuthTokens `json:"tokens"`
}
