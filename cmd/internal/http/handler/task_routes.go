package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
)

type TaskService interface {
	GetTasks(actor *entity.Profile, complianceID int64) ([]*contract.TaskResponse, apierror.ErrorResponse)
	CreateTask(actor *entity.Profile, complianceID int64, req *contract.TaskRequest) (*contract.TaskResponse, apierror.ErrorResponse)
	UpdateTask(actor *entity.Profile, id int64, req *contract.UpdateTaskRequest) (*contract.TaskResponse, apierror.ErrorResponse)
	DeleteTask(actor *entity.Profile, id int64) apierror.ErrorResponse
}

type DefaultTaskRoute struct {
	TaskService TaskService
}

func NewTaskRoute(taskService TaskService) *DefaultTaskRoute {
	return &DefaultTaskRoute{TaskService: taskService}
}

func (t *DefaultTaskRoute) GetTasks(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	complianceID, err := strconv.ParseInt(c.Param("compliance_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("compliance_id", "int64"))
	}

	tasks, apierr := t.TaskService.GetTasks(profile, complianceID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"tasks": tasks}
	return c.JSON(http.StatusOK, &resp)
}

func (t *DefaultTaskRoute) CreateTask(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	complianceID, err := strconv.ParseInt(c.Param("compliance_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("compliance_id", "int64"))
	}

	var req contract.TaskRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	task, apierr := t.TaskService.CreateTask(profile, complianceID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, task)
}

func (t *DefaultTaskRoute) UpdateTask(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	var req contract.UpdateTaskRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	task, apierr := t.TaskService.UpdateTask(profile, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, task)
}

func (t *DefaultTaskRoute) DeleteTask(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	if apierr := t.TaskService.DeleteTask(profile, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
