package address

import (
	"math/rand/v2"
	"testing"
	"time"

	"contacts/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return &t
}

func created(id int64, at time.Time) *entity.ContactAddress {
	a := &entity.ContactAddress{ID: id, ContactID: 1}
	a.CreatedTime = at

	return a
}

func TestSelectMostRelevant_Empty(t *testing.T) {
	assert.Nil(t, SelectMostRelevant(nil, now))
}

func TestSelectMostRelevant_OnlyCandidateWithoutDates(t *testing.T) {
	a1 := created(1, now.Add(-time.Hour))

	assert.Same(t, a1, SelectMostRelevant([]*entity.ContactAddress{a1}, now))
}

func TestSelectMostRelevant_LatestStartDateWins(t *testing.T) {
	a1 := created(1, now.Add(-2*time.Hour))
	a1.StartDate = date(2020, 1, 2)
	a2 := created(2, now.Add(-time.Hour))
	a2.StartDate = date(2020, 1, 1)

	assert.Same(t, a1, SelectMostRelevant([]*entity.ContactAddress{a1, a2}, now))
}

func TestSelectMostRelevant_StartDateBeatsLaterCreatedWithoutStartDate(t *testing.T) {
	a1 := created(1, now.Add(-2*time.Hour))
	a1.StartDate = date(2019, 5, 1)
	a2 := created(2, now.Add(-time.Hour))

	assert.Same(t, a1, SelectMostRelevant([]*entity.ContactAddress{a1, a2}, now))
}

func TestSelectMostRelevant_PrimaryBeatsMail(t *testing.T) {
	a1 := created(1, now.Add(-3*time.Hour))
	a1.MailFlag = true
	a2 := created(2, now.Add(-4*time.Hour))
	a2.PrimaryAddress = true
	a3 := created(3, now.Add(-time.Hour))
	a3.StartDate = date(2024, 1, 1)

	assert.Same(t, a2, SelectMostRelevant([]*entity.ContactAddress{a1, a2, a3}, now))
}

func TestSelectMostRelevant_MailBeatsStartDate(t *testing.T) {
	a1 := created(1, now.Add(-3*time.Hour))
	a1.MailFlag = true
	a2 := created(2, now.Add(-time.Hour))
	a2.StartDate = date(2024, 1, 1)

	assert.Same(t, a1, SelectMostRelevant([]*entity.ContactAddress{a1, a2}, now))
}

func TestSelectMostRelevant_EndDatedPrimaryIsNeverSelected(t *testing.T) {
	a1 := created(1, now.Add(-3*time.Hour))
	a1.PrimaryAddress = true
	a1.EndDate = date(2025, 6, 15)
	a2 := created(2, now.Add(-time.Hour))

	assert.Same(t, a2, SelectMostRelevant([]*entity.ContactAddress{a1, a2}, now))
}

func TestSelectMostRelevant_FutureEndDateStillCandidate(t *testing.T) {
	a1 := created(1, now.Add(-3*time.Hour))
	a1.PrimaryAddress = true
	a1.EndDate = date(2025, 6, 16)

	assert.Same(t, a1, SelectMostRelevant([]*entity.ContactAddress{a1}, now))
}

func TestSelectMostRelevant_AllEndDated(t *testing.T) {
	a1 := created(1, now.Add(-3*time.Hour))
	a1.EndDate = date(2024, 1, 1)

	assert.Nil(t, SelectMostRelevant([]*entity.ContactAddress{a1}, now))
}

func TestSelectMostRelevant_TiesBrokenByLatestCreated(t *testing.T) {
	a1 := created(1, now.Add(-3*time.Hour))
	a1.StartDate = date(2020, 1, 1)
	a2 := created(2, now.Add(-time.Hour))
	a2.StartDate = date(2020, 1, 1)

	assert.Same(t, a2, SelectMostRelevant([]*entity.ContactAddress{a1, a2}, now))
}

func TestSelectMostRelevant_IndependentOfInputOrder(t *testing.T) {
	same := now.Add(-time.Hour)
	addresses := []*entity.ContactAddress{
		created(1, same),
		created(2, same),
		created(3, now.Add(-2*time.Hour)),
		created(4, now.Add(-30*time.Minute)),
	}
	addresses[3].EndDate = date(2020, 1, 1)

	want := SelectMostRelevant(addresses, now)
	require.NotNil(t, want)
	assert.Equal(t, int64(2), want.ID)

	rng := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		shuffled := append([]*entity.ContactAddress(nil), addresses...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Same(t, want, SelectMostRelevant(shuffled, now))
	}
}
