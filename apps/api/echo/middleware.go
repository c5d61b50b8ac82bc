package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core/student"
)

const ctxObjectKey = "object"

// studentObjectMiddleware loads the student named by the `id` path param into the context.
func studentObjectMiddleware(svc *student.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			stu, err := svc.GetByID(ctx.Param("id"))
			if err != nil {
				return errors.Wrap(err, "finding student by ID")
			}
			ctx.Set(ctxObjectKey, stu)
			return next(ctx)
		}
	}
}

func getContextStudent(ctx echo.Context) (student.Student, error) {
	stu, ok := ctx.Get(ctxObjectKey).(student.Student)
	if !ok {
		return student.Student{}, errors.Wrap(errObjectNotFoundInCtx, "retrieving student from context")
	}
	return stu, nil
}
