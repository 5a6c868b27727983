package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPaid(t *testing.T) {
	assert.Equal(t, 0.0, TotalPaid(nil))
	assert.Equal(t, 75000.0, TotalPaid([]Payment{{Amount: 50000}, {Amount: 25000}}))
}

func TestRemaining(t *testing.T) {
	credit := &Credit{Amount: 100000}

	assert.Equal(t, 100000.0, credit.Remaining(nil))
	assert.Equal(t, 40000.0, credit.Remaining([]Payment{{Amount: 60000}}))
	// Overpayment never goes negative.
	assert.Equal(t, 0.0, credit.Remaining([]Payment{{Amount: 150000}}))
}

func TestIsFullyPaid(t *testing.T) {
	credit := &Credit{Amount: 100000}

	assert.False(t, credit.IsFullyPaid([]Payment{{Amount: 99999}}))
	assert.True(t, credit.IsFullyPaid([]Payment{{Amount: 100000}}))
	assert.True(t, credit.IsFullyPaid([]Payment{{Amount: 60000}, {Amount: 60000}}))
}

func TestProgressPercentage(t *testing.T) {
	credit := &Credit{Amount: 100000}

	assert.Equal(t, 0.0, credit.ProgressPercentage(nil))
	assert.Equal(t, 25.0, credit.ProgressPercentage([]Payment{{Amount: 25000}}))
	assert.Equal(t, 100.0, credit.ProgressPercentage([]Payment{{Amount: 200000}}))

	broken := &Credit{Amount: 0}
	assert.Equal(t, 0.0, broken.ProgressPercentage([]Payment{{Amount: 100}}))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleClient.Valid())
	assert.True(t, RoleSupervisor.Valid())
	assert.True(t, RoleAdministrator.Valid())
	assert.False(t, Role("MANAGER").Valid())
}

func TestRoleIsStaff(t *testing.T) {
	assert.False(t, RoleClient.IsStaff())
	assert.True(t, RoleSupervisor.IsStaff())
	assert.True(t, RoleAdministrator.IsStaff())
}
