package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/smartpaperhq/smartpaper/core/class"
	"github.com/smartpaperhq/smartpaper/core/user"
)

type classApi struct {
	svc *class.Service
}

func registerClassAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *class.Service) {
	api := classApi{svc: svc}

	cg := g.Group("/classes", jwt)
	cg.GET("", api.query)
	cg.GET("/teacher/:teacherId", api.queryByTeacher)
	cg.POST("", api.create, rolesMiddleware(user.RoleTeacher, user.RoleAdmin))
}

func (api *classApi) create(ctx echo.Context) error {
	var data class.NewClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClass")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	cls, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating class")
	}
	return ctx.JSON(http.StatusOK, cls)
}

func (api *classApi) query(ctx echo.Context) error {
	classes, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying classes")
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (api *classApi) queryByTeacher(ctx echo.Context) error {
	classes, err := api.svc.FilterByTeacher(ctx.Param("teacherId"))
	if err != nil {
		return errors.Wrap(err, "querying classes by teacher")
	}
	return ctx.JSON(http.StatusOK, classes)
}
