package echoapi

import (
	"fmt"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core/mark"
	"github.com/trezcool/matokeo/core/student"
)

type markApi struct {
	svc        *mark.Service
	studentSvc *student.Service
	validate   *validator.Validate
	translator ut.Translator
}

func registerMarkAPI(
	g *echo.Group,
	svc *mark.Service,
	studentSvc *student.Service,
	validate *validator.Validate,
	translator ut.Translator,
) {
	api := markApi{
		svc:        svc,
		studentSvc: studentSvc,
		validate:   validate,
		translator: translator,
	}

	mg := g.Group("/marks")
	mg.GET("", api.queryClass)
	mg.POST("", api.save)
	mg.DELETE("", api.destroy)
	mg.GET("/student/:studentId", api.queryStudent)
}

// Handlers

func (api *markApi) queryClass(ctx echo.Context) error {
	var query mark.ClassQuery
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to ClassQuery")
	}
	if err := query.Validate(api.validate); err != nil {
		return err
	}

	marks, err := api.svc.QueryByClass(query)
	if err != nil {
		return errors.Wrap(err, "querying class marks")
	}
	return ok(ctx, marks, fmt.Sprintf("Found %d mark entries", len(marks)))
}

func (api *markApi) queryStudent(ctx echo.Context) error {
	stu, err := api.studentSvc.GetByID(ctx.Param("studentId"))
	if err != nil {
		return errors.Wrap(err, "finding student by ID")
	}

	marks, err := api.svc.QueryByStudent(stu.ID, ctx.QueryParam("examTypeId"))
	if err != nil {
		return errors.Wrap(err, "querying student marks")
	}
	return ok(ctx, marks, fmt.Sprintf("Found %d mark entries", len(marks)))
}

func (api *markApi) save(ctx echo.Context) error {
	batch, err := bindBatch(ctx)
	if err != nil {
		return err
	}
	if err = batch.Validate(api.validate, api.translator); err != nil {
		return err
	}

	marks, err := api.svc.Save(batch)
	if err != nil {
		return errors.Wrap(err, "saving marks")
	}
	return ok(ctx, marks, fmt.Sprintf("Updated %d mark entries", len(marks)))
}

func (api *markApi) destroy(ctx echo.Context) error {
	var key mark.Key
	if err := ctx.Bind(&key); err != nil {
		return errors.Wrap(err, "binding to mark Key")
	}
	if err := key.Validate(api.validate); err != nil {
		return err
	}

	m, err := api.svc.Delete(key)
	if err != nil {
		return errors.Wrap(err, "deleting mark")
	}
	return ok(ctx, m, "Mark entry deleted successfully")
}
