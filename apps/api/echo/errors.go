package echoapi

import (
	"fmt"
	"net/http"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core"
)

const validationFailed = "Validation failed"

var errObjectNotFoundInCtx = errors.New("object not found in echo.Context")

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		code := http.StatusInternalServerError
		resp := Response{Success: false}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			resp.Error = fmt.Sprint(origErr.Message)
		case validator.ValidationErrors:
			resp.Fields = make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				resp.Fields[fieldName(vErr)] = vErr.Translate(translator)
			}
			code = http.StatusBadRequest
			resp.Error = validationFailed
		case *core.ValidationError:
			if origErr.Fields != nil {
				resp.Fields = make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					resp.Fields[fErr.Field] = fErr.Error
				}
			}
			resp.Error = origErr.Error()
			if resp.Error == "" {
				resp.Error = validationFailed
			}
			code = http.StatusBadRequest
		case *core.ConflictError:
			if origErr.Field != "" {
				resp.Fields = map[string]string{origErr.Field: origErr.Error()}
			}
			resp.Error = origErr.Error()
			code = http.StatusBadRequest
		case *core.NotFoundError:
			resp.Error = origErr.Error()
			code = http.StatusNotFound
		default: // any other error is a server error
			msg := http.StatusText(http.StatusInternalServerError)
			resp.Error = msg
			logger.Error(msg, errors.Wrap(err, msg), ctx.Request())

			if ctx.Echo().Debug {
				resp.Error = err.Error()
			}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, resp)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}

// fieldName is the JSON path of the invalid field, without the top level struct name.
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
