package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tavola/restaurant-hours/internal/httperr"
	"github.com/tavola/restaurant-hours/internal/httpresp"
	ucSchedule "github.com/tavola/restaurant-hours/internal/usecase/schedule"
)

type ScheduleHandler struct {
	createUC *ucSchedule.CreateSchedules
	getUC    *ucSchedule.GetSchedules
	updateUC *ucSchedule.UpdateSchedules
	deleteUC *ucSchedule.DeleteSchedules
}

func NewScheduleHandler(
	createUC *ucSchedule.CreateSchedules,
	getUC *ucSchedule.GetSchedules,
	updateUC *ucSchedule.UpdateSchedules,
	deleteUC *ucSchedule.DeleteSchedules,
) *ScheduleHandler {
	return &ScheduleHandler{
		createUC: createUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

type scheduleDayRequest struct {
	Weekday      int    `json:"weekday" binding:"min=0,max=6"`
	OpeningTime  string `json:"opening_time" binding:"required,hhmmss"`
	ClosingTime  string `json:"closing_time" binding:"required,hhmmss"`
	OpeningTime2 string `json:"opening_time2" binding:"omitempty,hhmmss,required_with=ClosingTime2"`
	ClosingTime2 string `json:"closing_time2" binding:"omitempty,hhmmss,required_with=OpeningTime2"`
}

type createSchedulesRequest struct {
	Schedules []scheduleDayRequest `json:"schedules" binding:"required,dive"`
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req createSchedulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	days := make([]ucSchedule.DayInput, len(req.Schedules))
	for i, s := range req.Schedules {
		days[i] = ucSchedule.DayInput{
			Weekday:      s.Weekday,
			OpeningTime:  s.OpeningTime,
			ClosingTime:  s.ClosingTime,
			OpeningTime2: s.OpeningTime2,
			ClosingTime2: s.ClosingTime2,
		}
	}

	rows, err := h.createUC.Execute(c.Request.Context(), c.Param("id"), days)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, rows)
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	rows, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, rows)
}

type updateScheduleDayRequest struct {
	ID           string `json:"id" binding:"required,uuid"`
	Weekday      int    `json:"weekday" binding:"min=0,max=6"`
	OpeningTime  string `json:"opening_time" binding:"required,hhmmss"`
	ClosingTime  string `json:"closing_time" binding:"required,hhmmss"`
	OpeningTime2 string `json:"opening_time2" binding:"omitempty,hhmmss,required_with=ClosingTime2"`
	ClosingTime2 string `json:"closing_time2" binding:"omitempty,hhmmss,required_with=OpeningTime2"`
}

type updateSchedulesRequest struct {
	Schedules []updateScheduleDayRequest `json:"schedules" binding:"required,dive"`
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	var req updateSchedulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	days := make([]ucSchedule.DayInput, len(req.Schedules))
	for i, s := range req.Schedules {
		days[i] = ucSchedule.DayInput{
			ID:           s.ID,
			Weekday:      s.Weekday,
			OpeningTime:  s.OpeningTime,
			ClosingTime:  s.ClosingTime,
			OpeningTime2: s.OpeningTime2,
			ClosingTime2: s.ClosingTime2,
		}
	}

	rows, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), days)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, rows)
}

type deleteSchedulesRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	var req deleteSchedulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rows, err := h.deleteUC.Execute(c.Request.Context(), req.IDs)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, rows)
}
