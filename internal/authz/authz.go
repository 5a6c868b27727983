// Package authz holds the role/ownership policy as one declarative table, so
// every rule is visible in a single place and testable exhaustively.
package authz

import (
	"errors"

	"github.com/dialloibra/microcredit/internal/domain"
)

type Capability string

const (
	CapCreditRequest Capability = "credit:request"
	CapCreditRead    Capability = "credit:read"
	CapCreditApprove Capability = "credit:approve"
	CapCreditReject  Capability = "credit:reject"
	CapCreditDelete  Capability = "credit:delete"
	CapPaymentRecord Capability = "payment:record"
	CapPaymentRead   Capability = "payment:read"
	CapPoolDeposit   Capability = "pool:deposit"
	CapPoolWithdraw  Capability = "pool:withdraw"
	CapPoolRead      Capability = "pool:read"
	CapUserManage    Capability = "user:manage"
	CapSummaryAdmin  Capability = "summary:admin"
	CapSummaryStaff  Capability = "summary:staff"
	CapSummaryClient Capability = "summary:client"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

type rule struct {
	roles map[domain.Role]bool
	// ownerBypass admits a principal of any role when it owns the resource.
	ownerBypass bool
}

func roles(rs ...domain.Role) map[domain.Role]bool {
	m := make(map[domain.Role]bool, len(rs))
	for _, r := range rs {
		m[r] = true
	}
	return m
}

var policy = map[Capability]rule{
	CapCreditRequest: {roles: roles(domain.RoleAdministrator), ownerBypass: true},
	CapCreditRead:    {roles: roles(domain.RoleSupervisor, domain.RoleAdministrator), ownerBypass: true},
	CapCreditApprove: {roles: roles(domain.RoleSupervisor, domain.RoleAdministrator)},
	CapCreditReject:  {roles: roles(domain.RoleSupervisor, domain.RoleAdministrator)},
	CapCreditDelete:  {roles: roles(domain.RoleAdministrator)},
	CapPaymentRecord: {roles: roles(domain.RoleSupervisor, domain.RoleAdministrator), ownerBypass: true},
	CapPaymentRead:   {roles: roles(domain.RoleSupervisor, domain.RoleAdministrator), ownerBypass: true},
	CapPoolDeposit:   {roles: roles(domain.RoleAdministrator)},
	CapPoolWithdraw:  {roles: roles(domain.RoleAdministrator)},
	CapPoolRead:      {roles: roles(domain.RoleAdministrator)},
	CapUserManage:    {roles: roles(domain.RoleAdministrator)},
	CapSummaryAdmin:  {roles: roles(domain.RoleAdministrator)},
	CapSummaryStaff:  {roles: roles(domain.RoleSupervisor, domain.RoleAdministrator)},
	CapSummaryClient: {roles: roles(domain.RoleClient)},
}

// Authorize admits or rejects a principal for a capability. ownerID is the id
// of the resource owner when the capability carries an ownership bypass; pass
// zero when ownership does not apply. The check is pure, nothing is read or
// written on failure.
func Authorize(p *domain.Principal, c Capability, ownerID int) error {
	if p == nil {
		return ErrUnauthenticated
	}
	r, ok := policy[c]
	if !ok {
		return ErrForbidden
	}
	if r.roles[p.Role] {
		return nil
	}
	if r.ownerBypass && ownerID != 0 && p.ID == ownerID {
		return nil
	}
	return ErrForbidden
}
