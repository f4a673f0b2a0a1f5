package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/CH-Shireesha/teacher-management/core/teacher"
)

type teacherApi struct {
	service *teacher.Service
}

func registerTeacherAPI(g *echo.Group, svc *teacher.Service) {
	api := teacherApi{service: svc}

	tg := g.Group("/teachers")
	tg.GET("", api.teacherQuery)
	tg.POST("", api.teacherCreate)
	tg.GET("/:id", api.teacherRetrieve)
	tg.PUT("/:id", api.teacherUpdate)
	tg.GET("/:id/schedule", api.teacherSchedule)
}

// Handlers

func (api *teacherApi) teacherQuery(ctx echo.Context) error {
	filter := new(teacher.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return err
	}

	teachers, err := api.service.Filter(*filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, teachers)
}

func (api *teacherApi) teacherCreate(ctx echo.Context) error {
	data := new(teacher.NewTeacher)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	t, err := api.service.Create(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, t)
}

func (api *teacherApi) teacherRetrieve(ctx echo.Context) error {
	t, err := api.service.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, teacher.ErrNotFound) {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *teacherApi) teacherUpdate(ctx echo.Context) error {
	data := new(teacher.UpdateTeacher)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	t, err := api.service.Update(ctx.Param("id"), *data)
	if err != nil {
		if errors.Is(err, teacher.ErrNotFound) {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, t)
}

type scheduleResponse struct {
	Days      []string                             `json:"days"`
	TimeSlots []string                             `json:"time_slots"`
	Sessions  []teacher.ScheduleSession            `json:"sessions"`
	Cells     map[string][]teacher.ScheduleSession `json:"cells"` // "<day> <time>" -> sessions
}

func (api *teacherApi) teacherSchedule(ctx echo.Context) error {
	grid, err := api.service.Schedule(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, teacher.ErrNotFound) {
			return errHttpNotFound
		}
		return err
	}

	res := scheduleResponse{
		Days:      teacher.Days,
		TimeSlots: teacher.TimeSlots,
		Sessions:  grid.Sessions(),
		Cells:     make(map[string][]teacher.ScheduleSession),
	}
	for _, day := range teacher.Days {
		for _, slot := range teacher.TimeSlots {
			if sessions := grid.SessionsAt(day, slot); len(sessions) > 0 {
				res.Cells[day+" "+slot] = sessions
			}
		}
	}
	return ctx.JSON(http.StatusOK, res)
}
