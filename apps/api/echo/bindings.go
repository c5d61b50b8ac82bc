package echoapi

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/mark"
)

var errBatchNotArray = errors.New("Request body must be an array of mark updates")

// bindBatch binds a JSON array body. Anything else, including an empty body, is a validation error.
func bindBatch(ctx echo.Context) (mark.Batch, error) {
	var batch mark.Batch
	if err := (&echo.DefaultBinder{}).BindBody(ctx, &batch); err != nil || batch == nil {
		return nil, core.NewValidationError(errBatchNotArray)
	}
	return batch, nil
}
