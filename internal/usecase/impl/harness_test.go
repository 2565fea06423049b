package impl

import (
	"testing"
	"time"

	"contacts/internal/domain/entity"
	mockService "contacts/internal/mocks/service"
	"contacts/internal/usecase"
)

var (
	dpsUser   = usecase.DPS("dps.user")
	nomisUser = usecase.NOMIS("nomis.user")
)

// serviceFixtures holds all test dependencies for the mutation services.
type serviceFixtures struct {
	store          *memStore
	dispatcher     *recordingDispatcher
	prisonerSearch *mockService.MockPrisonerSearch
	userDirectory  *mockService.MockUserDirectory
	mutator        *Mutator
	now            time.Time
}

func createTestFixtures(t *testing.T) *serviceFixtures {
	t.Helper()

	store := newMemStore()
	dispatcher := &recordingDispatcher{}
	prisonerSearch := mockService.NewMockPrisonerSearch(t)
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	mutator := NewMutator(MutatorParams{
		TxManager:      store,
		Dispatcher:     dispatcher,
		PrisonerSearch: prisonerSearch,
		Logger:         newDiscardLogger(),
	})
	mutator.clock = func() time.Time { return now }

	store.addCode(entity.GroupAddressType, "HOME", true)
	store.addCode(entity.GroupAddressType, "BUS", true)
	store.addCode(entity.GroupAddressType, "OLD", false)
	store.addCode(entity.GroupPhoneType, "MOB", true)
	store.addCode(entity.GroupPhoneType, "HOME", true)
	store.addCode(entity.GroupRestriction, "BAN", true)
	store.addCode(entity.GroupRestriction, "CLOSED", false)
	store.addCode(entity.GroupIdentityType, "PASS", true)
	store.addCode(entity.GroupTitle, "MR", true)
	store.addCode(entity.GroupGender, "M", true)
	store.addCode(entity.GroupLanguage, "ENG", true)
	store.addCode(entity.GroupSocialRelationship, "FRI", true)
	store.addCode(entity.GroupOfficialRelationship, "DR", true)
	store.addCode(entity.GroupCity, "25343", true)
	store.addCode(entity.GroupCountry, "ENG", true)

	return &serviceFixtures{
		store:          store,
		dispatcher:     dispatcher,
		prisonerSearch: prisonerSearch,
		userDirectory:  mockService.NewMockUserDirectory(t),
		mutator:        mutator,
		now:            now,
	}
}

func (f *serviceFixtures) addressService() usecase.AddressUsecase {
	return NewAddressService(AddressServiceParams{Mutator: f.mutator, Repos: f.store})
}

func (f *serviceFixtures) employmentService() usecase.EmploymentUsecase {
	return NewEmploymentService(EmploymentServiceParams{Mutator: f.mutator, Repos: f.store})
}

func (f *serviceFixtures) contactService() usecase.ContactUsecase {
	svc := NewContactService(ContactServiceParams{Mutator: f.mutator, Repos: f.store, Logger: newDiscardLogger()})
	svc.(*contactService).clock = func() time.Time { return f.now }

	return svc
}

func (f *serviceFixtures) phoneService() usecase.PhoneUsecase {
	return NewPhoneService(PhoneServiceParams{Mutator: f.mutator, Repos: f.store})
}

func (f *serviceFixtures) addressPhoneService() usecase.AddressPhoneUsecase {
	return NewAddressPhoneService(PhoneServiceParams{Mutator: f.mutator, Repos: f.store})
}

func (f *serviceFixtures) prisonerContactService() usecase.PrisonerContactUsecase {
	svc := NewPrisonerContactService(PrisonerContactServiceParams{Mutator: f.mutator, Repos: f.store})
	svc.(*prisonerContactService).clock = func() time.Time { return f.now }

	return svc
}

func (f *serviceFixtures) restrictionService() usecase.RestrictionUsecase {
	return NewRestrictionService(RestrictionServiceParams{
		Mutator:       f.mutator,
		Repos:         f.store,
		UserDirectory: f.userDirectory,
		Logger:        newDiscardLogger(),
	})
}

func ptr[T any](v T) *T {
	return &v
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return &t
}
