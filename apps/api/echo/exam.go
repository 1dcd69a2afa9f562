package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/smartpaperhq/smartpaper/core/exam"
	"github.com/smartpaperhq/smartpaper/core/user"
)

type examApi struct {
	svc *exam.Service
}

func registerExamAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *exam.Service) {
	api := examApi{svc: svc}
	grading := rolesMiddleware(user.RoleTeacher, user.RoleAdmin)

	pg := g.Group("/papers", jwt)
	pg.GET("/teacher/:teacherId", api.queryPapersByTeacher)
	pg.GET("/class/:classId", api.queryPapersByClass)
	pg.POST("", api.createPaper, grading)

	sg := g.Group("/submissions", jwt)
	sg.GET("/student/:studentId", api.querySubmissionsByStudent)
	sg.GET("/paper/:paperId", api.querySubmissionsByPaper)
	sg.POST("", api.createSubmission)
	sg.POST("/:id/mark-graded", api.markSubmissionGraded, grading)

	gg := g.Group("/grades", jwt)
	gg.GET("/student/:studentId", api.queryGradesByStudent)
	gg.GET("/submission/:submissionId", api.queryGradesBySubmission)
	gg.POST("", api.createGrade, grading)
}

// Papers

func (api *examApi) createPaper(ctx echo.Context) error {
	var data exam.NewPaper
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPaper")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	// classId/teacherId are soft references; a paper may point at a class
	// that no longer exists and still be accepted
	p, err := api.svc.CreatePaper(data)
	if err != nil {
		return errors.Wrap(err, "creating paper")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *examApi) queryPapersByTeacher(ctx echo.Context) error {
	papers, err := api.svc.FilterPapersByTeacher(ctx.Param("teacherId"))
	if err != nil {
		return errors.Wrap(err, "querying papers by teacher")
	}
	return ctx.JSON(http.StatusOK, papers)
}

func (api *examApi) queryPapersByClass(ctx echo.Context) error {
	papers, err := api.svc.FilterPapersByClass(ctx.Param("classId"))
	if err != nil {
		return errors.Wrap(err, "querying papers by class")
	}
	return ctx.JSON(http.StatusOK, papers)
}

// Submissions

func (api *examApi) createSubmission(ctx echo.Context) error {
	var data exam.NewSubmission
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubmission")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	s, err := api.svc.CreateSubmission(data)
	if err != nil {
		return errors.Wrap(err, "creating submission")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *examApi) querySubmissionsByStudent(ctx echo.Context) error {
	subs, err := api.svc.FilterSubmissionsByStudent(ctx.Param("studentId"))
	if err != nil {
		return errors.Wrap(err, "querying submissions by student")
	}
	return ctx.JSON(http.StatusOK, subs)
}

func (api *examApi) querySubmissionsByPaper(ctx echo.Context) error {
	subs, err := api.svc.FilterSubmissionsByPaper(ctx.Param("paperId"))
	if err != nil {
		return errors.Wrap(err, "querying submissions by paper")
	}
	return ctx.JSON(http.StatusOK, subs)
}

func (api *examApi) markSubmissionGraded(ctx echo.Context) error {
	s, err := api.svc.MarkGraded(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == exam.ErrSubmissionNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "marking submission graded")
	}
	return ctx.JSON(http.StatusOK, s)
}

// Grades

func (api *examApi) createGrade(ctx echo.Context) error {
	var data exam.NewGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewGrade")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	// grading a submission and flipping its isGraded flag are two
	// independent calls; see POST /submissions/:id/mark-graded
	grd, err := api.svc.CreateGrade(data)
	if err != nil {
		return errors.Wrap(err, "creating grade")
	}
	return ctx.JSON(http.StatusOK, grd)
}

func (api *examApi) queryGradesByStudent(ctx echo.Context) error {
	grades, err := api.svc.FilterGradesByStudent(ctx.Param("studentId"))
	if err != nil {
		return errors.Wrap(err, "querying grades by student")
	}
	return ctx.JSON(http.StatusOK, grades)
}

func (api *examApi) queryGradesBySubmission(ctx echo.Context) error {
	grades, err := api.svc.FilterGradesBySubmission(ctx.Param("submissionId"))
	if err != nil {
		return errors.Wrap(err, "querying grades by submission")
	}
	return ctx.JSON(http.StatusOK, grades)
}
