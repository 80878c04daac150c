package response

import "github.com/linskybing/reserve-go/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token string `json:"token"`
	UID   uint   `json:"user_id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type ConflictResponse struct {
	Error    string             `json:"error"`
	Blocking models.Reservation `json:"blocking"`
}
