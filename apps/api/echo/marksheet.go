package echoapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core/marksheet"
	exportsvc "github.com/trezcool/matokeo/services/export"
)

type marksheetApi struct {
	svc        *marksheet.Service
	validate   *validator.Validate
	schoolName string
}

func registerMarksheetAPI(g *echo.Group, svc *marksheet.Service, validate *validator.Validate, schoolName string) {
	api := marksheetApi{svc: svc, validate: validate, schoolName: schoolName}

	mg := g.Group("/marksheets")
	mg.GET("", api.fetch)
	mg.POST("/generate", api.generate)
	mg.POST("/bulk", api.generateClass)
	mg.GET("/bulk/export", api.exportClass)
}

// Handlers

func (api *marksheetApi) build(ctx echo.Context) (marksheet.Marksheet, error) {
	var req marksheet.Request
	if err := ctx.Bind(&req); err != nil {
		return marksheet.Marksheet{}, errors.Wrap(err, "binding to marksheet Request")
	}
	if err := req.Validate(api.validate); err != nil {
		return marksheet.Marksheet{}, err
	}

	ms, err := api.svc.Generate(req)
	if err != nil {
		return marksheet.Marksheet{}, errors.Wrap(err, "generating marksheet")
	}
	return ms, nil
}

func (api *marksheetApi) generate(ctx echo.Context) error {
	ms, err := api.build(ctx)
	if err != nil {
		return err
	}
	return ok(ctx, ms, "Marksheet generated successfully")
}

func (api *marksheetApi) fetch(ctx echo.Context) error {
	ms, err := api.build(ctx)
	if err != nil {
		return err
	}
	return ok(ctx, ms, "Marksheet fetched successfully")
}

func (api *marksheetApi) buildClass(ctx echo.Context) (marksheet.ClassResult, error) {
	var req marksheet.ClassRequest
	if err := ctx.Bind(&req); err != nil {
		return marksheet.ClassResult{}, errors.Wrap(err, "binding to ClassRequest")
	}
	if err := req.Validate(api.validate); err != nil {
		return marksheet.ClassResult{}, err
	}

	res, err := api.svc.GenerateClass(req)
	if err != nil {
		return marksheet.ClassResult{}, errors.Wrap(err, "generating class marksheets")
	}
	return res, nil
}

func (api *marksheetApi) generateClass(ctx echo.Context) error {
	res, err := api.buildClass(ctx)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Generated %d marksheets for class %s-%s", len(res.Marksheets), res.Class, res.Section)
	if len(res.Marksheets) == 0 {
		msg = fmt.Sprintf("No marksheets generated: no student of class %s-%s has marks for %s", res.Class, res.Section, res.ExamType)
	}
	return ctx.JSON(http.StatusOK, classResultResponse{
		Response:     Response{Success: true, Data: res.Marksheets, Message: msg},
		ClassTeacher: res.ClassTeacher,
		Summary:      res.Summary,
	})
}

func (api *marksheetApi) exportClass(ctx echo.Context) error {
	res, err := api.buildClass(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = exportsvc.WriteClassResult(&buf, api.schoolName, res); err != nil {
		return errors.Wrap(err, "exporting class result")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+exportsvc.ClassResultFilename(res))
	return ctx.Blob(http.StatusOK, exportsvc.ContentTypeXLSX, buf.Bytes())
}
