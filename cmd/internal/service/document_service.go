package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/domain/policy"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
	"compliancehub/cmd/internal/utils/uid"
)

type DocumentRepository interface {
	FindAllByCompany(companyID int64) ([]*entity.Document, error)
	FindByID(id int64) (*entity.Document, error)
	Save(doc *entity.Document) error
	Delete(doc *entity.Document) error
}

// DocumentService tracks file metadata only; the file itself lives wherever
// FilePath points and never passes through this application.
type DocumentService struct {
	DocRepo        DocumentRepository
	ComplianceRepo ComplianceRepository
	Validate       *validator.Validate
	Policy         *policy.MemberPolicy
}

func NewDocumentService(docRepo DocumentRepository, complianceRepo ComplianceRepository, validate *validator.Validate, memberPolicy *policy.MemberPolicy) *DocumentService {
	return &DocumentService{
		DocRepo:        docRepo,
		ComplianceRepo: complianceRepo,
		Validate:       validate,
		Policy:         memberPolicy,
	}
}

func (s *DocumentService) GetDocuments(actor *entity.Profile) ([]*contract.DocumentResponse, apierror.ErrorResponse) {
	companyID, perr := s.Policy.CompanyScope(actor)
	if perr != nil {
		return nil, perr
	}

	docs, err := s.DocRepo.FindAllByCompany(companyID)
	if err != nil {
		log.Errorf("failed to fetch documents for company %d: %v", companyID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.DocumentResponse, len(docs))
	for i, d := range docs {
		resp[i] = toDocumentResponse(d)
	}
	return resp, nil
}

func (s *DocumentService) CreateDocument(actor *entity.Profile, req *contract.DocumentRequest) (*contract.DocumentResponse, apierror.ErrorResponse) {
	companyID, perr := s.Policy.CompanyScope(actor)
	if perr != nil {
		return nil, perr
	}
	if perr = s.Policy.CanWrite(actor); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if perr = s.checkComplianceLink(companyID, req.ComplianceID); perr != nil {
		return nil, perr
	}

	doc := &entity.Document{
		ID:           uid.Generate(),
		CompanyID:    companyID,
		ComplianceID: req.ComplianceID,
		Name:         req.Name,
		Description:  req.Description,
		FilePath:     req.FilePath,
		FileType:     req.FileType,
		FileSize:     req.FileSize,
		Category:     entity.DocumentCategory(req.Category),
		IsRequired:   req.IsRequired,
		ExpiryDate:   req.ExpiryDate,
		UploadedByID: actor.ID,
		UploadedAt:   utils.NowUTC(),
	}

	if err := s.DocRepo.Save(doc); err != nil {
		log.Errorf("failed to create document for company %d: %v", companyID, err)
		return nil, apierror.InternalServerError
	}
	return toDocumentResponse(doc), nil
}

func (s *DocumentService) UpdateDocument(actor *entity.Profile, id int64, req *contract.UpdateDocumentRequest) (*contract.DocumentResponse, apierror.ErrorResponse) {
	if perr := s.Policy.CanWrite(actor); perr != nil {
		return nil, perr
	}

	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	doc, perr := s.fetchScoped(actor, id)
	if perr != nil {
		return nil, perr
	}

	if req.ComplianceID != nil {
		if perr = s.checkComplianceLink(doc.CompanyID, req.ComplianceID); perr != nil {
			return nil, perr
		}
		doc.ComplianceID = req.ComplianceID
	}
	if req.Name != nil {
		doc.Name = *req.Name
	}
	if req.Description != nil {
		doc.Description = *req.Description
	}
	if req.FilePath != nil {
		doc.FilePath = *req.FilePath
	}
	if req.FileType != nil {
		doc.FileType = *req.FileType
	}
	if req.FileSize != nil {
		doc.FileSize = *req.FileSize
	}
	if req.Category != nil {
		doc.Category = entity.DocumentCategory(*req.Category)
	}
	if req.IsRequired != nil {
		doc.IsRequired = *req.IsRequired
	}
	if req.ExpiryDate != nil {
		doc.ExpiryDate = *req.ExpiryDate
	}

	if err := s.DocRepo.Save(doc); err != nil {
		log.Errorf("failed to update document %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toDocumentResponse(doc), nil
}

func (s *DocumentService) DeleteDocument(actor *entity.Profile, id int64) apierror.ErrorResponse {
	if perr := s.Policy.CanWrite(actor); perr != nil {
		return perr
	}

	doc, perr := s.fetchScoped(actor, id)
	if perr != nil {
		return perr
	}

	if err := s.DocRepo.Delete(doc); err != nil {
		log.Errorf("failed to delete document %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DocumentService) fetchScoped(actor *entity.Profile, id int64) (*entity.Document, apierror.ErrorResponse) {
	companyID, perr := s.Policy.CompanyScope(actor)
	if perr != nil {
		return nil, perr
	}

	doc, err := s.DocRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch document %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if doc == nil || doc.CompanyID != companyID {
		return nil, apierror.NotFoundError
	}
	return doc, nil
}

// checkComplianceLink rejects links to compliances of other companies.
func (s *DocumentService) checkComplianceLink(companyID int64, complianceID *int64) apierror.ErrorResponse {
	if complianceID == nil {
		return nil
	}

	compliance, err := s.ComplianceRepo.FindByID(*complianceID)
	if err != nil {
		log.Errorf("failed to fetch compliance %d: %v", *complianceID, err)
		return apierror.InternalServerError
	}

	if compliance == nil || compliance.CompanyID != companyID {
		return apierror.NotFoundError
	}
	return nil
}

func toDocumentResponse(d *entity.Document) *contract.DocumentResponse {
	return &contract.DocumentResponse{
		ID:           d.ID,
		CompanyID:    d.CompanyID,
		ComplianceID: d.ComplianceID,
		Name:         d.Name,
		Description:  d.Description,
		FilePath:     d.FilePath,
		FileType:     d.FileType,
		FileSize:     d.FileSize,
		Category:     string(d.Category),
		IsRequired:   d.IsRequired,
		ExpiryDate:   d.ExpiryDate,
		UploadedBy:   d.UploadedByID,
		UploadedAt:   utils.FormatEpoch(d.UploadedAt),
	}
}
