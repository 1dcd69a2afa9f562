package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/smartpaperhq/smartpaper/core/material"
)

type materialApi struct {
	svc *material.Service
}

func registerStudyMaterialAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *material.Service) {
	api := materialApi{svc: svc}

	mg := g.Group("/study-materials", jwt)
	mg.GET("", api.query)
	mg.POST("", api.create)
}

func (api *materialApi) create(ctx echo.Context) error {
	var data material.NewStudyMaterial
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudyMaterial")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	m, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating study material")
	}
	return ctx.JSON(http.StatusOK, m)
}

func (api *materialApi) query(ctx echo.Context) error {
	materials, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying study materials")
	}
	return ctx.JSON(http.StatusOK, materials)
}
