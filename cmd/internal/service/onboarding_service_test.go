package service

import (
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"compliancehub/cmd/internal/contract"
	"compliancehub/cmd/internal/domain/entity"
	cognitoclient "compliancehub/cmd/internal/infrastructure/aws/cognito"
	"compliancehub/cmd/internal/utils/apierror"
	"compliancehub/cmd/internal/utils/uid"
	"compliancehub/cmd/internal/utils/validators"
)

type fakeCognito struct {
	subs        int
	signUps     []string
	deletions   []string
	signUpError error
}

func (f *fakeCognito) SignUp(req *cognitoclient.SignupRequest) (string, error) {
	if f.signUpError != nil {
		return "", f.signUpError
	}
	f.subs++
	f.signUps = append(f.signUps, req.Email)
	return "sub-" + strconv.Itoa(f.subs), nil
}

func (f *fakeCognito) SignIn(user *cognitoclient.UserLogin) (*cognitoclient.AuthCreate, error) {
	return &cognitoclient.AuthCreate{IDToken: "id", AccessToken: "access"}, nil
}

func (f *fakeCognito) GlobalSignOut(accessToken string) error { return nil }

func (f *fakeCognito) ConfirmAccount(user *cognitoclient.UserConfirmation) error { return nil }

func (f *fakeCognito) ResendConfirmation(email string) error { return nil }

func (f *fakeCognito) AdminDeleteUser(email string) error {
	f.deletions = append(f.deletions, email)
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	// One connection only: every pooled connection would otherwise get its
	// own empty in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.Company{},
		&entity.Profile{},
		&entity.Compliance{},
		&entity.Task{},
		&entity.Document{},
		&entity.Notification{},
		&entity.PendingOnboarding{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()

	validate := validator.New()
	for tag, fn := range map[string]validator.Func{
		"hasupper":   validators.HasUpper,
		"haslower":   validators.HasLower,
		"hasdigit":   validators.HasDigit,
		"hasspecial": validators.HasSpecial,
		"cin":        validators.CIN,
		"pan":        validators.PAN,
		"gstin":      validators.GSTIN,
		"instate":    validators.InState,
		"datelayout": validators.DateLayout,
	} {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			t.Fatalf("failed to register %q validator: %v", tag, err)
		}
	}
	return validate
}

func newOnboardingService(t *testing.T) (*OnboardingService, *fakeCognito, *gorm.DB) {
	t.Helper()
	uid.Init(1)

	db := newTestDB(t)
	cognito := &fakeCognito{}
	return NewOnboardingService(db, cognito, newTestValidator(t)), cognito, db
}

func runWizard(t *testing.T, svc *OnboardingService) int64 {
	t.Helper()

	start, apierr := svc.StartFlow()
	if apierr != nil {
		t.Fatalf("failed to start flow: %v", apierr)
	}

	apierr = svc.SubmitCompanyInfo(start.FlowID, &contract.CompanyInfoRequest{
		Name: "Acme Widgets Pvt Ltd",
		CIN:  "U12345MH2020PTC123456",
		PAN:  "ABCDE1234F",
	})
	if apierr != nil {
		t.Fatalf("failed to submit company info: %v", apierr)
	}

	preview, apierr := svc.SubmitBusinessDetails(start.FlowID, &contract.BusinessDetailsRequest{
		AnnualTurnover:    20_000_000,
		EmployeeCount:     12,
		State:             "MH",
		BusinessType:      "manufacturing",
		IncorporationDate: "2020-04-01",
		AddressLine1:      "12 Industrial Estate",
		City:              "Mumbai",
		Pincode:           "400001",
	})
	if apierr != nil {
		t.Fatalf("failed to submit business details: %v", apierr)
	}
	// Monthly GST, PF, ESI, professional tax plus the four corporate entries.
	if len(preview) != 8 {
		t.Fatalf("expected 8 previewed compliances, got %d", len(preview))
	}

	apierr = svc.SubmitUserAccount(start.FlowID, &contract.UserAccountRequest{
		Name:            "Priya Sharma",
		Email:           "priya@acme.example",
		Phone:           "9876543210",
		Password:        "Str0ng!Pass",
		ConfirmPassword: "Str0ng!Pass",
	})
	if apierr != nil {
		t.Fatalf("failed to submit user account: %v", apierr)
	}
	return start.FlowID
}

func TestSubmitOutOfOrderIsRejected(t *testing.T) {
	svc, _, _ := newOnboardingService(t)

	start, _ := svc.StartFlow()
	_, apierr := svc.SubmitBusinessDetails(start.FlowID, &contract.BusinessDetailsRequest{
		AnnualTurnover:    1,
		EmployeeCount:     1,
		State:             "DL",
		BusinessType:      "services",
		IncorporationDate: "2023-01-01",
		AddressLine1:      "1 Main St",
		City:              "Delhi",
		Pincode:           "110001",
	})
	if apierr != apierror.FlowOutOfOrderError {
		t.Fatalf("expected out-of-order error, got %v", apierr)
	}

	if _, apierr = svc.Complete(start.FlowID); apierr != apierror.FlowOutOfOrderError {
		t.Fatalf("expected out-of-order error on complete, got %v", apierr)
	}
}

func TestZeroTurnoverIsAccepted(t *testing.T) {
	svc, _, _ := newOnboardingService(t)

	start, _ := svc.StartFlow()
	apierr := svc.SubmitCompanyInfo(start.FlowID, &contract.CompanyInfoRequest{
		Name: "Dormant Ventures Pvt Ltd",
		CIN:  "U12345DL2024PTC654321",
		PAN:  "ABCDE1234F",
	})
	if apierr != nil {
		t.Fatalf("failed to submit company info: %v", apierr)
	}

	// A freshly incorporated company with no revenue yet is a valid profile;
	// zero turnover takes the quarterly GST branch.
	preview, apierr := svc.SubmitBusinessDetails(start.FlowID, &contract.BusinessDetailsRequest{
		AnnualTurnover:    0,
		EmployeeCount:     1,
		State:             "DL",
		BusinessType:      "services",
		IncorporationDate: "2024-01-01",
		AddressLine1:      "1 Main St",
		City:              "Delhi",
		Pincode:           "110001",
	})
	if apierr != nil {
		t.Fatalf("zero turnover must pass validation, got %v", apierr)
	}

	// Quarterly GST plus the four corporate entries.
	if len(preview) != 5 {
		t.Fatalf("expected 5 previewed compliances, got %d", len(preview))
	}
	if preview[0].Name != "GST Quarterly Return (GSTR-1 & GSTR-3B)" {
		t.Fatalf("expected quarterly GST first, got %q", preview[0].Name)
	}
}

func TestUnknownFlowIsNotFound(t *testing.T) {
	svc, _, _ := newOnboardingService(t)

	apierr := svc.SubmitCompanyInfo(42, &contract.CompanyInfoRequest{
		Name: "Acme Widgets Pvt Ltd",
		CIN:  "U12345MH2020PTC123456",
		PAN:  "ABCDE1234F",
	})
	if apierr != apierror.FlowNotFoundError {
		t.Fatalf("expected flow-not-found, got %v", apierr)
	}
}

func TestPasswordMismatchIsRejected(t *testing.T) {
	svc, _, _ := newOnboardingService(t)

	start, _ := svc.StartFlow()
	_ = svc.SubmitCompanyInfo(start.FlowID, &contract.CompanyInfoRequest{
		Name: "Acme Widgets Pvt Ltd",
		CIN:  "U12345MH2020PTC123456",
		PAN:  "ABCDE1234F",
	})
	_, _ = svc.SubmitBusinessDetails(start.FlowID, &contract.BusinessDetailsRequest{
		AnnualTurnover:    1,
		EmployeeCount:     1,
		State:             "DL",
		BusinessType:      "services",
		IncorporationDate: "2023-01-01",
		AddressLine1:      "1 Main St",
		City:              "Delhi",
		Pincode:           "110001",
	})

	apierr := svc.SubmitUserAccount(start.FlowID, &contract.UserAccountRequest{
		Name:            "Priya Sharma",
		Email:           "priya@acme.example",
		Phone:           "9876543210",
		Password:        "Str0ng!Pass",
		ConfirmPassword: "str0ng!pass",
	})
	if apierr != apierror.PasswordMismatchError {
		t.Fatalf("expected password mismatch, got %v", apierr)
	}
}

func TestCompletePersistsCompanyStagingAndProfile(t *testing.T) {
	svc, cognito, db := newOnboardingService(t)
	flowID := runWizard(t, svc)

	resp, apierr := svc.Complete(flowID)
	if apierr != nil {
		t.Fatalf("failed to complete onboarding: %v", apierr)
	}

	var company entity.Company
	if err := db.First(&company, resp.CompanyID).Error; err != nil {
		t.Fatalf("company was not persisted: %v", err)
	}
	if company.CIN != "U12345MH2020PTC123456" {
		t.Fatalf("unexpected CIN %q", company.CIN)
	}

	var pending entity.PendingOnboarding
	if err := db.Where("email = ?", "priya@acme.example").First(&pending).Error; err != nil {
		t.Fatalf("staging row was not persisted: %v", err)
	}
	if pending.CompanyID != resp.CompanyID {
		t.Fatalf("staging points at company %d, want %d", pending.CompanyID, resp.CompanyID)
	}

	var profile entity.Profile
	if err := db.Where("email = ?", "priya@acme.example").First(&profile).Error; err != nil {
		t.Fatalf("profile was not persisted: %v", err)
	}
	if profile.CompanyID != nil {
		t.Fatalf("profile must stay unlinked until finalization, got company %d", *profile.CompanyID)
	}
	if profile.Role != entity.RoleOwner || !profile.IsPrimary {
		t.Fatalf("first profile must be the primary owner, got role=%s primary=%v", profile.Role, profile.IsPrimary)
	}

	if len(cognito.signUps) != 1 {
		t.Fatalf("expected one sign-up, got %d", len(cognito.signUps))
	}

	// The claimed flow is gone; a double submit cannot onboard twice.
	if _, apierr = svc.Complete(flowID); apierr != apierror.FlowNotFoundError {
		t.Fatalf("expected flow-not-found on second complete, got %v", apierr)
	}
}

func TestCompleteRejectsDuplicateCIN(t *testing.T) {
	svc, _, db := newOnboardingService(t)

	existing := &entity.Company{
		ID:                1,
		Name:              "Existing Co",
		CIN:               "U12345MH2020PTC123456",
		PAN:               "ABCDE1234F",
		State:             "MH",
		BusinessType:      entity.BusinessManufacturing,
		AnnualTurnover:    1,
		EmployeeCount:     1,
		IncorporationDate: "2019-01-01",
	}
	if err := db.Create(existing).Error; err != nil {
		t.Fatalf("failed to seed company: %v", err)
	}

	start, _ := svc.StartFlow()
	apierr := svc.SubmitCompanyInfo(start.FlowID, &contract.CompanyInfoRequest{
		Name: "Acme Widgets Pvt Ltd",
		CIN:  "U12345MH2020PTC123456",
		PAN:  "FGHIJ5678K",
	})
	if apierr != apierror.CompanyExistsError {
		t.Fatalf("expected company-exists error, got %v", apierr)
	}
}

func TestFinalizeWithoutStagingIsNoOp(t *testing.T) {
	svc, _, db := newOnboardingService(t)

	profile := &entity.Profile{ID: 10, SubUUID: "sub-x", Name: "N", Email: "n@example.com", Role: entity.RoleOwner}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}

	finalized, err := svc.FinalizePending(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if finalized {
		t.Fatal("finalizer must be a no-op without staging")
	}
	if profile.CompanyID != nil {
		t.Fatal("profile must stay unlinked")
	}
}

func TestFinalizeLinksProfileAndMaterializesCompliances(t *testing.T) {
	svc, _, db := newOnboardingService(t)
	flowID := runWizard(t, svc)

	resp, apierr := svc.Complete(flowID)
	if apierr != nil {
		t.Fatalf("failed to complete onboarding: %v", apierr)
	}

	var profile entity.Profile
	if err := db.Where("email = ?", "priya@acme.example").First(&profile).Error; err != nil {
		t.Fatalf("profile was not persisted: %v", err)
	}

	finalized, err := svc.FinalizePending(&profile)
	if err != nil {
		t.Fatalf("failed to finalize: %v", err)
	}
	if !finalized {
		t.Fatal("expected finalization to claim the staging row")
	}
	if profile.CompanyID == nil || *profile.CompanyID != resp.CompanyID {
		t.Fatalf("profile was not linked to company %d", resp.CompanyID)
	}

	var count int64
	if err = db.Model(&entity.Compliance{}).Where("company_id = ?", resp.CompanyID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count compliances: %v", err)
	}
	if count != 8 {
		t.Fatalf("expected 8 materialized compliances, got %d", count)
	}

	var staged int64
	if err = db.Model(&entity.PendingOnboarding{}).Count(&staged).Error; err != nil {
		t.Fatalf("failed to count staging rows: %v", err)
	}
	if staged != 0 {
		t.Fatalf("staging row must be cleared, %d remain", staged)
	}

	// A second session racing through the same path finds nothing to claim
	// and must not duplicate the records.
	again, err := svc.FinalizePending(&profile)
	if err != nil {
		t.Fatalf("unexpected error on repeat finalize: %v", err)
	}
	if again {
		t.Fatal("repeat finalization must be a no-op")
	}
	if err = db.Model(&entity.Compliance{}).Where("company_id = ?", resp.CompanyID).Count(&count).Error; err != nil {
		t.Fatalf("failed to recount compliances: %v", err)
	}
	if count != 8 {
		t.Fatalf("repeat finalization duplicated compliances: %d", count)
	}
}

func TestStagedCompliancePriorities(t *testing.T) {
	svc, _, db := newOnboardingService(t)
	flowID := runWizard(t, svc)

	resp, apierr := svc.Complete(flowID)
	if apierr != nil {
		t.Fatalf("failed to complete onboarding: %v", apierr)
	}

	var profile entity.Profile
	if err := db.Where("email = ?", "priya@acme.example").First(&profile).Error; err != nil {
		t.Fatalf("profile was not persisted: %v", err)
	}
	if _, err := svc.FinalizePending(&profile); err != nil {
		t.Fatalf("failed to finalize: %v", err)
	}

	var compliances []*entity.Compliance
	if err := db.Where("company_id = ?", resp.CompanyID).Find(&compliances).Error; err != nil {
		t.Fatalf("failed to fetch compliances: %v", err)
	}

	for _, c := range compliances {
		want := entity.PriorityMedium
		if c.Type == entity.TypeTax {
			want = entity.PriorityHigh
		}
		if c.Priority != want {
			t.Errorf("%s: priority %s, want %s", c.Name, c.Priority, want)
		}
		if c.Status != entity.ComplianceStatusPending || !c.IsActive {
			t.Errorf("%s: expected pending and active, got status=%s active=%v", c.Name, c.Status, c.IsActive)
		}
	}
}
