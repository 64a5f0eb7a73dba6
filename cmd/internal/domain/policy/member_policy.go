package policy

import (
	"compliancehub/cmd/internal/domain/entity"
	"compliancehub/cmd/internal/utils/apierror"
)

// MemberPolicy encapsulates the role-based rules for company data access.
// It returns apierror.ErrorResponse directly for seamless integration with
// handlers.
type MemberPolicy struct{}

func NewMemberPolicy() *MemberPolicy {
	return &MemberPolicy{}
}

// CompanyScope resolves the acting member's company. Every company-scoped
// read goes through here; a profile that never finished onboarding has no
// company to read from.
func (p *MemberPolicy) CompanyScope(actor *entity.Profile) (int64, apierror.ErrorResponse) {
	if actor.CompanyID == nil {
		return 0, apierror.ProfileNotLinkedError
	}
	return *actor.CompanyID, nil
}

// CanWrite gates every create/update/delete on company records. Viewers are
// read-only; everyone else manages compliances, tasks and documents.
func (p *MemberPolicy) CanWrite(actor *entity.Profile) apierror.ErrorResponse {
	if actor.Role == entity.RoleViewOnly {
		return apierror.NewForbiddenError("view-only members cannot modify records")
	}
	return nil
}

// CanManageCompany gates company profile changes and team role changes.
func (p *MemberPolicy) CanManageCompany(actor *entity.Profile) apierror.ErrorResponse {
	if actor.Role != entity.RoleOwner {
		return apierror.NewForbiddenError("only the owner can manage the company")
	}
	return nil
}
