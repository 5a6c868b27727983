package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dialloibra/microcredit/internal/domain"
)

func TestAuthorize(t *testing.T) {
	client := &domain.Principal{ID: 1, Role: domain.RoleClient}
	supervisor := &domain.Principal{ID: 2, Role: domain.RoleSupervisor}
	admin := &domain.Principal{ID: 3, Role: domain.RoleAdministrator}

	tests := []struct {
		name          string
		principal     *domain.Principal
		capability    Capability
		ownerID       int
		expectedError error
	}{
		{name: "Nil principal", principal: nil, capability: CapCreditRead, expectedError: ErrUnauthenticated},
		{name: "Unknown capability", principal: admin, capability: Capability("nope"), expectedError: ErrForbidden},

		{name: "Client requests own credit", principal: client, capability: CapCreditRequest, ownerID: 1},
		{name: "Client requests for another", principal: client, capability: CapCreditRequest, ownerID: 2, expectedError: ErrForbidden},
		{name: "Admin requests on behalf", principal: admin, capability: CapCreditRequest, ownerID: 1},
		{name: "Supervisor cannot request for others", principal: supervisor, capability: CapCreditRequest, ownerID: 1, expectedError: ErrForbidden},

		{name: "Owner reads own credit", principal: client, capability: CapCreditRead, ownerID: 1},
		{name: "Stranger cannot read", principal: client, capability: CapCreditRead, ownerID: 9, expectedError: ErrForbidden},
		{name: "Supervisor reads any credit", principal: supervisor, capability: CapCreditRead, ownerID: 9},

		{name: "Supervisor approves", principal: supervisor, capability: CapCreditApprove},
		{name: "Admin approves", principal: admin, capability: CapCreditApprove},
		{name: "Client cannot approve own credit", principal: client, capability: CapCreditApprove, ownerID: 1, expectedError: ErrForbidden},
		{name: "Supervisor rejects", principal: supervisor, capability: CapCreditReject},

		{name: "Only admin deletes credits", principal: supervisor, capability: CapCreditDelete, expectedError: ErrForbidden},
		{name: "Admin deletes credits", principal: admin, capability: CapCreditDelete},

		{name: "Owner records a payment", principal: client, capability: CapPaymentRecord, ownerID: 1},
		{name: "Stranger cannot record", principal: client, capability: CapPaymentRecord, ownerID: 9, expectedError: ErrForbidden},
		{name: "Supervisor records for anyone", principal: supervisor, capability: CapPaymentRecord, ownerID: 9},

		{name: "Only admin touches the pool", principal: supervisor, capability: CapPoolDeposit, expectedError: ErrForbidden},
		{name: "Admin deposits", principal: admin, capability: CapPoolDeposit},
		{name: "Admin withdraws", principal: admin, capability: CapPoolWithdraw},
		{name: "Client cannot read the pool", principal: client, capability: CapPoolRead, expectedError: ErrForbidden},

		{name: "Only admin manages users", principal: supervisor, capability: CapUserManage, expectedError: ErrForbidden},
		{name: "Admin manages users", principal: admin, capability: CapUserManage},

		{name: "Admin summary is admin only", principal: supervisor, capability: CapSummaryAdmin, expectedError: ErrForbidden},
		{name: "Staff summary admits supervisors", principal: supervisor, capability: CapSummaryStaff},
		{name: "Staff summary admits admins", principal: admin, capability: CapSummaryStaff},
		{name: "Client summary is client only", principal: supervisor, capability: CapSummaryClient, expectedError: ErrForbidden},
		{name: "Client summary admits clients", principal: client, capability: CapSummaryClient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.principal, tt.capability, tt.ownerID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
