package dto

import (
	"github.com/go-playground/validator/v10"
)

// validate é a instância compartilhada do go-playground/validator.
// As regras vivem nas tags `validate` dos DTOs de request (equivalente aos
// schemas de validação do cliente original).
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate aplica as tags de validação de um DTO de request.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
