package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/matokeo/core/marksheet"
)

// Response is the envelope of every API response.
type Response struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type classResultResponse struct {
	Response
	ClassTeacher string                 `json:"classTeacher,omitempty"`
	Summary      marksheet.ClassSummary `json:"summary"`
}

func ok(ctx echo.Context, data interface{}, msg string) error {
	return ctx.JSON(http.StatusOK, Response{Success: true, Data: data, Message: msg})
}

func created(ctx echo.Context, data interface{}, msg string) error {
	return ctx.JSON(http.StatusCreated, Response{Success: true, Data: data, Message: msg})
}
