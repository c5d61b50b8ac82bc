package echoapi

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core/student"
)

type studentApi struct {
	svc      *student.Service
	validate *validator.Validate
}

func registerStudentAPI(g *echo.Group, svc *student.Service, validate *validator.Validate) {
	api := studentApi{svc: svc, validate: validate}

	sg := g.Group("/students")
	sg.GET("", api.query)
	sg.POST("", api.create)

	// detail endpoints
	dg := sg.Group("/:id", studentObjectMiddleware(svc))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *studentApi) query(ctx echo.Context) error {
	filter := new(student.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	students, err := api.svc.Query(*filter)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ok(ctx, students, fmt.Sprintf("Found %d students", len(students)))
}

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(api.validate, api.svc); err != nil {
		return err
	}

	stu, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return created(ctx, stu, "Student created successfully")
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	stu, err := getContextStudent(ctx)
	if err != nil {
		return err
	}
	return ok(ctx, stu, "")
}

func (api *studentApi) update(ctx echo.Context) error {
	stu, err := getContextStudent(ctx)
	if err != nil {
		return err
	}

	var data student.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	if err := data.Validate(stu, api.validate); err != nil {
		return err
	}

	stu, err = api.svc.Update(stu.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating student")
	}
	return ok(ctx, stu, "Student updated successfully")
}

func (api *studentApi) destroy(ctx echo.Context) error {
	stu, err := getContextStudent(ctx)
	if err != nil {
		return err
	}

	if stu, err = api.svc.Delete(stu.ID); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ok(ctx, stu, "Student deleted successfully")
}
