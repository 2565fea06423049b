package address

import (
	"testing"

	"contacts/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addr(id int64, primary, mail bool) *entity.ContactAddress {
	return &entity.ContactAddress{ID: id, ContactID: 1, PrimaryAddress: primary, MailFlag: mail}
}

func TestPlanExclusivity_NewPrimaryClearsPreviousPrimaryOnly(t *testing.T) {
	a1 := addr(1, true, false)
	a2 := addr(2, false, false)
	a3 := addr(3, false, true)
	a4 := addr(4, true, false)

	corrections := PlanExclusivity([]*entity.ContactAddress{a1, a2, a3, a4}, a4.ID, true, false)

	require.Len(t, corrections, 1)
	assert.Same(t, a1, corrections[0].Address)
	assert.True(t, corrections[0].ClearPrimary)
	assert.False(t, corrections[0].ClearMail)

	corrections[0].Apply()
	assert.False(t, a1.PrimaryAddress)
	assert.True(t, a3.MailFlag, "mail holder keeps its flag when only primary is claimed")
}

func TestPlanExclusivity_CombinedHolderClearedInOneCorrection(t *testing.T) {
	a1 := addr(1, true, true)
	a2 := addr(2, true, true)

	corrections := PlanExclusivity([]*entity.ContactAddress{a1, a2}, a2.ID, true, true)

	require.Len(t, corrections, 1)
	assert.Same(t, a1, corrections[0].Address)
	assert.True(t, corrections[0].ClearPrimary)
	assert.True(t, corrections[0].ClearMail)

	corrections[0].Apply()
	assert.False(t, a1.PrimaryAddress)
	assert.False(t, a1.MailFlag)
	assert.True(t, a2.PrimaryAddress)
	assert.True(t, a2.MailFlag)
}

func TestPlanExclusivity_FlagsOnDifferentSiblings(t *testing.T) {
	a1 := addr(1, true, false)
	a2 := addr(2, false, true)
	a3 := addr(3, true, true)

	corrections := PlanExclusivity([]*entity.ContactAddress{a1, a2, a3}, a3.ID, true, true)

	require.Len(t, corrections, 2)
	assert.Equal(t, Correction{Address: a1, ClearPrimary: true}, corrections[0])
	assert.Equal(t, Correction{Address: a2, ClearMail: true}, corrections[1])
}

func TestPlanExclusivity_ClearingFlagNeverCascades(t *testing.T) {
	a1 := addr(1, true, true)
	a2 := addr(2, false, false)

	assert.Empty(t, PlanExclusivity([]*entity.ContactAddress{a1, a2}, a2.ID, false, false))
}

func TestPlanExclusivity_MailOnlyLeavesPrimaryAlone(t *testing.T) {
	a1 := addr(1, true, true)
	a2 := addr(2, false, true)

	corrections := PlanExclusivity([]*entity.ContactAddress{a1, a2}, a2.ID, false, true)

	require.Len(t, corrections, 1)
	assert.False(t, corrections[0].ClearPrimary)
	assert.True(t, corrections[0].ClearMail)
}
