package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/smartpaperhq/smartpaper/core/class"
	"github.com/smartpaperhq/smartpaper/core/user"
)

// Stats is the admin dashboard aggregate, recomputed from full scans on
// every request. PapersGenerated and SubmissionsGraded are not computed
// yet and always report zero.
type Stats struct {
	TotalUsers     int `json:"totalUsers"`
	ActiveTeachers int `json:"activeTeachers"`
	TotalStudents  int `json:"totalStudents"`
	TotalClasses   int `json:"totalClasses"`

	// not yet computed; reserved for the AI generation pipeline
	PapersGenerated   int `json:"papersGenerated"`
	SubmissionsGraded int `json:"submissionsGraded"`
}

type adminApi struct {
	usrSvc *user.Service
	clsSvc *class.Service
}

func registerAdminAPI(g *echo.Group, jwt echo.MiddlewareFunc, usrSvc *user.Service, clsSvc *class.Service) {
	api := adminApi{usrSvc: usrSvc, clsSvc: clsSvc}

	ag := g.Group("/admin", jwt, adminMiddleware())
	ag.GET("/stats", api.stats)
}

func (api *adminApi) stats(ctx echo.Context) error {
	users, err := api.usrSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	classes, err := api.clsSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying classes")
	}

	stats := Stats{
		TotalUsers:   len(users),
		TotalClasses: len(classes),
	}
	for _, usr := range users {
		if usr.IsTeacher() && usr.IsActive {
			stats.ActiveTeachers++
		}
		if usr.IsStudent() {
			stats.TotalStudents++
		}
	}
	return ctx.JSON(http.StatusOK, stats)
}
