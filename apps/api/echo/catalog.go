package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core/catalog"
)

type catalogApi struct {
	svc *catalog.Service
}

func registerCatalogAPI(g *echo.Group, svc *catalog.Service) {
	api := catalogApi{svc: svc}

	g.GET("/class-sections", api.classSections)
	g.GET("/subjects", api.subjects)
	g.GET("/exam-types", api.examTypes)
}

func (api *catalogApi) classSections(ctx echo.Context) error {
	sections, err := api.svc.ClassSections()
	if err != nil {
		return errors.Wrap(err, "querying class sections")
	}
	return ok(ctx, sections, "")
}

func (api *catalogApi) subjects(ctx echo.Context) error {
	subjects, err := api.svc.Subjects()
	if err != nil {
		return errors.Wrap(err, "querying subjects")
	}
	return ok(ctx, subjects, "")
}

func (api *catalogApi) examTypes(ctx echo.Context) error {
	exams, err := api.svc.ExamTypes()
	if err != nil {
		return errors.Wrap(err, "querying exam types")
	}
	return ok(ctx, exams, "")
}
