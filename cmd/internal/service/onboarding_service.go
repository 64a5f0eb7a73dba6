package service

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/domain/rules"
	cognitoclient "compliancehub/cmd/internal/infrastructure/aws/cognito"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/apierror"
	"compliancehub/cmd/internal/utils/uid"
)

// FlowTTL is how long an untouched wizard flow survives before the sweeper
// discards it.
const FlowTTL = 30 * time.Minute

type flowStep int

const (
	stepStarted flowStep = iota
	stepCompanyInfo
	stepBusinessDetails
	stepUserAccount
)

// onboardingFlow holds the wizard state between steps. Nothing here touches
// the database until Complete; abandoning a flow leaves no rows behind.
type onboardingFlow struct {
	ID        int64
	Step      flowStep
	Company   contract.CompanyInfoRequest
	Business  contract.BusinessDetailsRequest
	Account   contract.UserAccountRequest
	UpdatedAt time.Time
}

// OnboardingService drives the three-step signup wizard and the post-login
// finalizer. It works on *gorm.DB directly because Complete and
// FinalizePending span multiple tables in one transaction.
type OnboardingService struct {
	db       *gorm.DB
	Cognito  cognitoclient.CognitoInterface
	Validate *validator.Validate

	mu    sync.Mutex
	flows map[int64]*onboardingFlow
}

func NewOnboardingService(db *gorm.DB, cognito cognitoclient.CognitoInterface, validate *validator.Validate) *OnboardingService {
	return &OnboardingService{
		db:       db,
		Cognito:  cognito,
		Validate: validate,
		flows:    make(map[int64]*onboardingFlow),
	}
}

func (s *OnboardingService) StartFlow() (*contract.StartFlowResponse, apierror.ErrorResponse) {
	flow := &onboardingFlow{
		ID:        uid.Generate(),
		Step:      stepStarted,
		UpdatedAt: time.Now(),
	}

	s.mu.Lock()
	s.flows[flow.ID] = flow
	s.mu.Unlock()

	return &contract.StartFlowResponse{FlowID: flow.ID}, nil
}

func (s *OnboardingService) SubmitCompanyInfo(flowID int64, req *contract.CompanyInfoRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	exists, err := s.cinExists(req.CIN)
	if err != nil {
		log.Errorf("failed to check CIN availability: %v", err)
		return apierror.InternalServerError
	}
	if exists {
		return apierror.CompanyExistsError
	}

	return s.advance(flowID, stepStarted, func(flow *onboardingFlow) {
		flow.Company = *req
		if flow.Step < stepCompanyInfo {
			flow.Step = stepCompanyInfo
		}
	})
}

// SubmitBusinessDetails stores step 2 and returns the derived compliance
// preview for the review screen. The preview is recomputed from the stored
// details on every submission, so going back and editing stays consistent.
func (s *OnboardingService) SubmitBusinessDetails(flowID int64, req *contract.BusinessDetailsRequest) ([]*contract.CompliancePreview, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	perr := s.advance(flowID, stepCompanyInfo, func(flow *onboardingFlow) {
		flow.Business = *req
		if flow.Step < stepBusinessDetails {
			flow.Step = stepBusinessDetails
		}
	})
	if perr != nil {
		return nil, perr
	}

	drafts := rules.ApplicableCompliances(rules.BusinessProfile{
		AnnualTurnover: req.AnnualTurnover,
		EmployeeCount:  req.EmployeeCount,
		State:          req.State,
	})

	now := time.Now().UTC()
	preview := make([]*contract.CompliancePreview, len(drafts))
	for i, d := range drafts {
		preview[i] = &contract.CompliancePreview{
			Name:           d.Name,
			Type:           string(d.Type),
			Frequency:      string(d.Frequency),
			RegulatoryBody: string(d.RegulatoryBody),
			Justification:  d.Justification,
			NextDueDate:    rules.NextDueDate(d.Frequency, now).Format(rules.DateLayout),
		}
	}
	return preview, nil
}

func (s *OnboardingService) SubmitUserAccount(flowID int64, req *contract.UserAccountRequest) apierror.ErrorResponse {
	// Passwords are deliberately excluded from sanitization: a password with
	// leading or trailing spaces is valid and must round-trip untouched.
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := s.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	if req.Password != req.ConfirmPassword {
		return apierror.PasswordMismatchError
	}

	var taken int
	err := s.db.
		Raw("SELECT EXISTS(SELECT 1 FROM profiles WHERE email = ?)", req.Email).
		Scan(&taken).Error
	if err != nil {
		log.Errorf("failed to check email availability: %v", err)
		return apierror.InternalServerError
	}
	if taken == 1 {
		return apierror.IDPExistingEmailError
	}

	return s.advance(flowID, stepBusinessDetails, func(flow *onboardingFlow) {
		flow.Account = *req
		if flow.Step < stepUserAccount {
			flow.Step = stepUserAccount
		}
	})
}

// Complete persists the wizard: company and staging row first, then the
// identity-provider account and the unlinked profile. The company remains
// even when sign-up fails, since the CIN is real-world unique and retrying
// onboarding for the same company should be reported as a conflict.
func (s *OnboardingService) Complete(flowID int64) (*contract.CompleteOnboardingResponse, apierror.ErrorResponse) {
	s.mu.Lock()
	flow, ok := s.flows[flowID]
	if ok && flow.Step < stepUserAccount {
		s.mu.Unlock()
		return nil, apierror.FlowOutOfOrderError
	}
	if ok {
		// Claim the flow so a double-submit cannot onboard twice.
		delete(s.flows, flowID)
	}
	s.mu.Unlock()

	if !ok {
		return nil, apierror.FlowNotFoundError
	}

	exists, err := s.cinExists(flow.Company.CIN)
	if err != nil {
		log.Errorf("failed to check CIN availability: %v", err)
		return nil, apierror.InternalServerError
	}
	if exists {
		return nil, apierror.CompanyExistsError
	}

	now := utils.NowUTC()
	company := &entity.Company{
		ID:                uid.Generate(),
		Name:              flow.Company.Name,
		CIN:               flow.Company.CIN,
		PAN:               flow.Company.PAN,
		GSTIN:             flow.Company.GSTIN,
		State:             flow.Business.State,
		BusinessType:      entity.BusinessType(flow.Business.BusinessType),
		AnnualTurnover:    flow.Business.AnnualTurnover,
		EmployeeCount:     flow.Business.EmployeeCount,
		IncorporationDate: flow.Business.IncorporationDate,
		RegisteredAddress: entity.Address{
			Line1:   flow.Business.AddressLine1,
			Line2:   flow.Business.AddressLine2,
			City:    flow.Business.City,
			State:   flow.Business.State,
			Pincode: flow.Business.Pincode,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	staged, err := json.Marshal(s.stageCompliances(flow))
	if err != nil {
		log.Errorf("failed to serialize staged compliances: %v", err)
		return nil, apierror.InternalServerError
	}

	pending := &entity.PendingOnboarding{
		ID:          uid.Generate(),
		Email:       flow.Account.Email,
		CompanyID:   company.ID,
		Phone:       flow.Account.Phone,
		Compliances: string(staged),
		CreatedAt:   now,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return err
		}
		return tx.Create(pending).Error
	})
	if err != nil {
		log.Errorf("failed to persist onboarding of company %s: %v", flow.Company.CIN, err)
		return nil, apierror.InternalServerError
	}

	// The company snapshot rides along as custom attributes so the sign-up
	// is recoverable even if the staging row is lost.
	sub, err := s.Cognito.SignUp(&cognitoclient.SignupRequest{
		Email:    flow.Account.Email,
		Password: flow.Account.Password,
		Metadata: map[string]string{
			"name":                flow.Account.Name,
			"custom:phone":        flow.Account.Phone,
			"custom:company_id":   strconv.FormatInt(company.ID, 10),
			"custom:company_name": flow.Company.Name,
			"custom:company_cin":  flow.Company.CIN,
		},
	})
	if err != nil {
		// No account means nothing to finalize; drop the staging row.
		if derr := s.db.Delete(pending).Error; derr != nil {
			log.Errorf("failed to discard staging for %s: %v", flow.Account.Email, derr)
		}
		return nil, utils.MapCognitoError(err)
	}

	profile := &entity.Profile{
		ID:        uid.Generate(),
		SubUUID:   sub,
		Name:      flow.Account.Name,
		Email:     flow.Account.Email,
		Phone:     flow.Account.Phone,
		Role:      entity.RoleOwner,
		IsPrimary: true,
		Prefs:     entity.DefaultNotificationPrefs(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.db.Create(profile).Error; err != nil {
		log.Errorf("failed to create profile for %s, reverting sign-up: %v", flow.Account.Email, err)
		if derr := s.Cognito.AdminDeleteUser(flow.Account.Email); derr != nil {
			log.Errorf("failed to revert sign-up of %s: %v", flow.Account.Email, derr)
		}
		if derr := s.db.Delete(pending).Error; derr != nil {
			log.Errorf("failed to discard staging for %s: %v", flow.Account.Email, derr)
		}
		return nil, apierror.InternalServerError
	}

	return &contract.CompleteOnboardingResponse{CompanyID: company.ID}, nil
}

// FinalizePending links the profile to its staged company and materializes
// the staged compliances. The staging row is deleted first inside the
// transaction; a zero rows-affected result means a concurrent session
// already claimed it and this call becomes a no-op.
func (s *OnboardingService) FinalizePending(profile *entity.Profile) (bool, error) {
	if profile.CompanyID != nil {
		return false, nil
	}

	var pending entity.PendingOnboarding
	err := s.db.Where("email = ?", profile.Email).First(&pending).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var staged []contract.StagedCompliance
	if err = json.Unmarshal([]byte(pending.Compliances), &staged); err != nil {
		return false, err
	}

	now := utils.NowUTC()
	claimed := false
	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", pending.ID).Delete(&entity.PendingOnboarding{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		claimed = true

		for _, sc := range staged {
			compliance := &entity.Compliance{
				ID:             uid.Generate(),
				CompanyID:      pending.CompanyID,
				Name:           sc.Name,
				Description:    sc.Description,
				RegulatoryBody: entity.RegulatoryBody(sc.RegulatoryBody),
				Type:           entity.ComplianceType(sc.Type),
				Frequency:      entity.Frequency(sc.Frequency),
				Priority:       entity.Priority(sc.Priority),
				NextDueDate:    sc.NextDueDate,
				Status:         entity.ComplianceStatus(sc.Status),
				IsActive:       sc.IsActive,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := tx.Create(compliance).Error; err != nil {
				return err
			}
		}

		profile.CompanyID = &pending.CompanyID
		if profile.Phone == "" {
			profile.Phone = pending.Phone
		}
		profile.UpdatedAt = now
		return tx.Save(profile).Error
	})
	if err != nil {
		// Leave the in-memory profile unlinked on rollback.
		profile.CompanyID = nil
		return false, err
	}
	return claimed, nil
}

// SweepStaleFlows drops flows idle beyond the TTL and reports how many.
func (s *OnboardingService) SweepStaleFlows() int {
	cutoff := time.Now().Add(-FlowTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for id, flow := range s.flows {
		if flow.UpdatedAt.Before(cutoff) {
			delete(s.flows, id)
			swept++
		}
	}
	return swept
}

// advance applies fn to the flow if it exists and has progressed at least
// to the required step.
func (s *OnboardingService) advance(flowID int64, required flowStep, fn func(flow *onboardingFlow)) apierror.ErrorResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[flowID]
	if !ok {
		return apierror.FlowNotFoundError
	}
	if flow.Step < required {
		return apierror.FlowOutOfOrderError
	}

	fn(flow)
	flow.UpdatedAt = time.Now()
	return nil
}

// stageCompliances turns the derived drafts into the durable staged shape.
// Tax obligations get high priority, everything else medium.
func (s *OnboardingService) stageCompliances(flow *onboardingFlow) []contract.StagedCompliance {
	drafts := rules.ApplicableCompliances(rules.BusinessProfile{
		AnnualTurnover: flow.Business.AnnualTurnover,
		EmployeeCount:  flow.Business.EmployeeCount,
		State:          flow.Business.State,
	})

	now := time.Now().UTC()
	staged := make([]contract.StagedCompliance, len(drafts))
	for i, d := range drafts {
		priority := entity.PriorityMedium
		if d.Type == entity.TypeTax {
			priority = entity.PriorityHigh
		}
		staged[i] = contract.StagedCompliance{
			Name:           d.Name,
			Description:    d.Justification,
			RegulatoryBody: string(d.RegulatoryBody),
			Type:           string(d.Type),
			Frequency:      string(d.Frequency),
			Priority:       string(priority),
			NextDueDate:    rules.NextDueDate(d.Frequency, now).Format(rules.DateLayout),
			Status:         string(entity.ComplianceStatusPending),
			IsActive:       true,
		}
	}
	return staged
}

func (s *OnboardingService) cinExists(cin string) (bool, error) {
	var exists int
	err := s.db.
		Raw("SELECT EXISTS(SELECT 1 FROM companies WHERE cin = ?)", cin).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}
