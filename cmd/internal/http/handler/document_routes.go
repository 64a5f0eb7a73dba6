package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
)

type DocumentService interface {
	GetDocuments(actor *entity.Profile) ([]*contract.DocumentResponse, apierror.ErrorResponse)
	CreateDocument(actor *entity.Profile, req *contract.DocumentRequest) (*contract.DocumentResponse, apierror.ErrorResponse)
	UpdateDocument(actor *entity.Profile, id int64, req *contract.UpdateDocumentRequest) (*contract.DocumentResponse, apierror.ErrorResponse)
	DeleteDocument(actor *entity.Profile, id int64) apierror.ErrorResponse
}

type DefaultDocumentRoute struct {
	DocumentService DocumentService
}

func NewDocumentRoute(documentService DocumentService) *DefaultDocumentRoute {
	return &DefaultDocumentRoute{DocumentService: documentService}
}

func (d *DefaultDocumentRoute) GetDocuments(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	docs, apierr := d.DocumentService.GetDocuments(profile)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"documents": docs}
	return c.JSON(http.StatusOK, &resp)
}

func (d *DefaultDocumentRoute) CreateDocument(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.DocumentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	doc, apierr := d.DocumentService.CreateDocument(profile, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, doc)
}

func (d *DefaultDocumentRoute) UpdateDocument(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	var req contract.UpdateDocumentRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	doc, apierr := d.DocumentService.UpdateDocument(profile, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, doc)
}

func (d *DefaultDocumentRoute) DeleteDocument(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	if apierr := d.DocumentService.DeleteDocument(profile, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
