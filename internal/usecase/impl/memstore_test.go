package impl

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"testing"
	"time"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// table is an in-memory table keyed by a sequence-assigned id. Rows are copied
// on the way in and out so callers never share state with the store.
type table[T any] struct {
	rows     map[int64]*T
	id       func(*T) *int64
	seq      *int64
	notFound error
}

func newTable[T any](seq *int64, notFound error, id func(*T) *int64) *table[T] {
	return &table[T]{rows: map[int64]*T{}, id: id, seq: seq, notFound: notFound}
}

func clone[T any](v *T) *T {
	c := *v

	return &c
}

func (t *table[T]) create(v *T) {
	*t.seq++
	*t.id(v) = *t.seq
	t.rows[*t.seq] = clone(v)
}

func (t *table[T]) find(id int64) (*T, error) {
	row, ok := t.rows[id]
	if !ok {
		return nil, t.notFound
	}

	return clone(row), nil
}

func (t *table[T]) update(v *T) error {
	id := *t.id(v)
	if _, ok := t.rows[id]; !ok {
		return t.notFound
	}
	t.rows[id] = clone(v)

	return nil
}

func (t *table[T]) delete(id int64) error {
	if _, ok := t.rows[id]; !ok {
		return t.notFound
	}
	delete(t.rows, id)

	return nil
}

func (t *table[T]) where(match func(*T) bool) []*T {
	var out []*T
	for _, id := range slices.Sorted(maps.Keys(t.rows)) {
		if row := t.rows[id]; match(row) {
			out = append(out, clone(row))
		}
	}

	return out
}

func (t *table[T]) snapshot() map[int64]*T {
	snap := make(map[int64]*T, len(t.rows))
	for id, row := range t.rows {
		snap[id] = clone(row)
	}

	return snap
}

// memStore implements the repository contracts in memory. Execute snapshots every
// table and restores the snapshot when the unit of work fails.
type memStore struct {
	seq int64

	contacts                    *table[entity.Contact]
	addresses                   *table[entity.ContactAddress]
	phones                      *table[entity.ContactPhone]
	addressPhones               *table[entity.ContactAddressPhone]
	emails                      *table[entity.ContactEmail]
	identities                  *table[entity.ContactIdentity]
	restrictions                *table[entity.ContactRestriction]
	prisonerContacts            *table[entity.PrisonerContact]
	prisonerContactRestrictions *table[entity.PrisonerContactRestriction]
	employments                 *table[entity.Employment]

	organisations map[int64]*entity.Organisation
	codes         map[string]*entity.ReferenceCode
	outbox        []*entity.OutboundEvent

	// failures makes the named operation (e.g. "address.update") fail.
	failures map[string]error
	// writes counts successful writes per operation name.
	writes map[string]int
}

func newMemStore() *memStore {
	s := &memStore{
		organisations: map[int64]*entity.Organisation{},
		codes:         map[string]*entity.ReferenceCode{},
		failures:      map[string]error{},
		writes:        map[string]int{},
	}
	s.contacts = newTable(&s.seq, repository.ErrContactNotFound, func(v *entity.Contact) *int64 { return &v.ID })
	s.addresses = newTable(&s.seq, repository.ErrAddressNotFound, func(v *entity.ContactAddress) *int64 { return &v.ID })
	s.phones = newTable(&s.seq, repository.ErrPhoneNotFound, func(v *entity.ContactPhone) *int64 { return &v.ID })
	s.addressPhones = newTable(&s.seq, repository.ErrAddressPhoneNotFound, func(v *entity.ContactAddressPhone) *int64 { return &v.ID })
	s.emails = newTable(&s.seq, repository.ErrEmailNotFound, func(v *entity.ContactEmail) *int64 { return &v.ID })
	s.identities = newTable(&s.seq, repository.ErrIdentityNotFound, func(v *entity.ContactIdentity) *int64 { return &v.ID })
	s.restrictions = newTable(&s.seq, repository.ErrRestrictionNotFound, func(v *entity.ContactRestriction) *int64 { return &v.ID })
	s.prisonerContacts = newTable(&s.seq, repository.ErrPrisonerContactNotFound, func(v *entity.PrisonerContact) *int64 { return &v.ID })
	s.prisonerContactRestrictions = newTable(&s.seq, repository.ErrPrisonerContactRestrictionNotFound, func(v *entity.PrisonerContactRestriction) *int64 { return &v.ID })
	s.employments = newTable(&s.seq, repository.ErrEmploymentNotFound, func(v *entity.Employment) *int64 { return &v.ID })

	return s
}

func (s *memStore) fail(op string) error {
	if err, ok := s.failures[op]; ok {
		return err
	}
	s.writes[op]++

	return nil
}

func (s *memStore) addCode(group entity.ReferenceGroup, code string, active bool) {
	s.codes[string(group)+"|"+code] = &entity.ReferenceCode{Group: group, Code: code, Description: code, IsActive: active}
}

func (s *memStore) addOrganisation(id int64) {
	s.organisations[id] = &entity.Organisation{ID: id, Name: "Org", Active: true}
}

// seedContact inserts a contact directly, bypassing the services.
func (s *memStore) seedContact(lastName string) *entity.Contact {
	c := &entity.Contact{LastName: lastName, FirstName: "Test", Audit: entity.Audit{CreatedBy: "seed", CreatedTime: time.Now()}}
	s.contacts.create(c)

	return c
}

func (s *memStore) seedAddress(a *entity.ContactAddress) *entity.ContactAddress {
	if a.CreatedBy == "" {
		a.CreatedBy = "seed"
	}
	s.addresses.create(a)

	return a
}

func (s *memStore) seedEmployment(contactID, organisationID int64) *entity.Employment {
	e := &entity.Employment{ContactID: contactID, OrganisationID: organisationID, IsActive: true, Audit: entity.Audit{CreatedBy: "seed"}}
	s.employments.create(e)

	return e
}

func (s *memStore) address(t *testing.T, id int64) *entity.ContactAddress {
	t.Helper()
	a, err := s.addresses.find(id)
	if err != nil {
		t.Fatalf("address %d: %v", id, err)
	}

	return a
}

type memSnapshot struct {
	seq                         int64
	contacts                    map[int64]*entity.Contact
	addresses                   map[int64]*entity.ContactAddress
	phones                      map[int64]*entity.ContactPhone
	addressPhones               map[int64]*entity.ContactAddressPhone
	emails                      map[int64]*entity.ContactEmail
	identities                  map[int64]*entity.ContactIdentity
	restrictions                map[int64]*entity.ContactRestriction
	prisonerContacts            map[int64]*entity.PrisonerContact
	prisonerContactRestrictions map[int64]*entity.PrisonerContactRestriction
	employments                 map[int64]*entity.Employment
	outbox                      int
}

func (s *memStore) snapshot() memSnapshot {
	return memSnapshot{
		seq:                         s.seq,
		contacts:                    s.contacts.snapshot(),
		addresses:                   s.addresses.snapshot(),
		phones:                      s.phones.snapshot(),
		addressPhones:               s.addressPhones.snapshot(),
		emails:                      s.emails.snapshot(),
		identities:                  s.identities.snapshot(),
		restrictions:                s.restrictions.snapshot(),
		prisonerContacts:            s.prisonerContacts.snapshot(),
		prisonerContactRestrictions: s.prisonerContactRestrictions.snapshot(),
		employments:                 s.employments.snapshot(),
		outbox:                      len(s.outbox),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.seq = snap.seq
	s.contacts.rows = snap.contacts
	s.addresses.rows = snap.addresses
	s.phones.rows = snap.phones
	s.addressPhones.rows = snap.addressPhones
	s.emails.rows = snap.emails
	s.identities.rows = snap.identities
	s.restrictions.rows = snap.restrictions
	s.prisonerContacts.rows = snap.prisonerContacts
	s.prisonerContactRestrictions.rows = snap.prisonerContactRestrictions
	s.employments.rows = snap.employments
	s.outbox = s.outbox[:snap.outbox]
}

// Execute implements repository.TransactionManager.
func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	snap := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snap)

		return err
	}
	if err := s.fail("commit"); err != nil {
		s.restore(snap)

		return err
	}

	return nil
}

func (s *memStore) ContactRepo() repository.ContactRepository { return memContacts{s} }
func (s *memStore) AddressRepo() repository.AddressRepository { return memAddresses{s} }
func (s *memStore) PhoneRepo() repository.PhoneRepository { return memPhones{s} }
func (s *memStore) AddressPhoneRepo() repository.AddressPhoneRepository { return memAddressPhones{s} }
func (s *memStore) EmailRepo() repository.EmailRepository { return memEmails{s} }
func (s *memStore) IdentityRepo() repository.IdentityRepository { return memIdentities{s} }
func (s *memStore) RestrictionRepo() repository.RestrictionRepository { return memRestrictions{s} }
func (s *memStore) PrisonerContactRepo() repository.PrisonerContactRepository {
	return memPrisonerContacts{s}
}
func (s *memStore) PrisonerContactRestrictionRepo() repository.PrisonerContactRestrictionRepository {
	return memPrisonerContactRestrictions{s}
}
func (s *memStore) EmploymentRepo() repository.EmploymentRepository { return memEmployments{s} }
func (s *memStore) OrganisationRepo() repository.OrganisationRepository { return memOrganisations{s} }
func (s *memStore) ReferenceCodeRepo() repository.ReferenceCodeRepository {
	return memReferenceCodes{s}
}
func (s *memStore) OutboxRepo() repository.OutboxRepository { return memOutbox{s} }

type memContacts struct{ s *memStore }

func (r memContacts) Create(_ context.Context, c *entity.Contact) error {
	if err := r.s.fail("contact.create"); err != nil {
		return err
	}
	r.s.contacts.create(c)

	return nil
}

func (r memContacts) FindByID(_ context.Context, id int64) (*entity.Contact, error) {
	return r.s.contacts.find(id)
}

func (r memContacts) LockByID(_ context.Context, id int64) (*entity.Contact, error) {
	return r.s.contacts.find(id)
}

func (r memContacts) Update(_ context.Context, c *entity.Contact) error {
	if err := r.s.fail("contact.update"); err != nil {
		return err
	}

	return r.s.contacts.update(c)
}

func (r memContacts) Delete(_ context.Context, id int64) error {
	if err := r.s.fail("contact.delete"); err != nil {
		return err
	}

	return r.s.contacts.delete(id)
}

func (r memContacts) SearchByLastName(_ context.Context, lastName string, limit, offset int) ([]*entity.Contact, int64, error) {
	prefix := strings.ToLower(lastName)
	all := r.s.contacts.where(func(c *entity.Contact) bool {
		return strings.HasPrefix(strings.ToLower(c.LastName), prefix)
	})
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}

	return all[offset:min(offset+limit, len(all))], total, nil
}

func (r memContacts) CountDependents(_ context.Context, id int64) (int64, error) {
	n := len(r.s.addresses.where(func(a *entity.ContactAddress) bool { return a.ContactID == id })) +
		len(r.s.phones.where(func(p *entity.ContactPhone) bool { return p.ContactID == id })) +
		len(r.s.emails.where(func(e *entity.ContactEmail) bool { return e.ContactID == id })) +
		len(r.s.identities.where(func(i *entity.ContactIdentity) bool { return i.ContactID == id })) +
		len(r.s.restrictions.where(func(x *entity.ContactRestriction) bool { return x.ContactID == id })) +
		len(r.s.prisonerContacts.where(func(p *entity.PrisonerContact) bool { return p.ContactID == id })) +
		len(r.s.employments.where(func(e *entity.Employment) bool { return e.ContactID == id }))

	return int64(n), nil
}

type memAddresses struct{ s *memStore }

func (r memAddresses) Create(_ context.Context, a *entity.ContactAddress) error {
	if err := r.s.fail("address.create"); err != nil {
		return err
	}
	r.s.addresses.create(a)

	return nil
}

func (r memAddresses) FindByID(_ context.Context, id int64) (*entity.ContactAddress, error) {
	return r.s.addresses.find(id)
}

func (r memAddresses) FindByContact(_ context.Context, contactID int64) ([]*entity.ContactAddress, error) {
	return r.s.addresses.where(func(a *entity.ContactAddress) bool { return a.ContactID == contactID }), nil
}

func (r memAddresses) FindByContactForUpdate(ctx context.Context, contactID int64) ([]*entity.ContactAddress, error) {
	return r.FindByContact(ctx, contactID)
}

func (r memAddresses) FindByContacts(_ context.Context, contactIDs []int64) ([]*entity.ContactAddress, error) {
	return r.s.addresses.where(func(a *entity.ContactAddress) bool { return slices.Contains(contactIDs, a.ContactID) }), nil
}

func (r memAddresses) Update(_ context.Context, a *entity.ContactAddress) error {
	if err := r.s.fail("address.update"); err != nil {
		return err
	}

	return r.s.addresses.update(a)
}

func (r memAddresses) Delete(_ context.Context, id int64) error {
	if err := r.s.fail("address.delete"); err != nil {
		return err
	}

	return r.s.addresses.delete(id)
}

type memPhones struct{ s *memStore }

func (r memPhones) Create(_ context.Context, p *entity.ContactPhone) error {
	if err := r.s.fail("phone.create"); err != nil {
		return err
	}
	r.s.phones.create(p)

	return nil
}

func (r memPhones) FindByID(_ context.Context, id int64) (*entity.ContactPhone, error) {
	return r.s.phones.find(id)
}

func (r memPhones) FindByContact(_ context.Context, contactID int64) ([]*entity.ContactPhone, error) {
	return r.s.phones.where(func(p *entity.ContactPhone) bool { return p.ContactID == contactID }), nil
}

func (r memPhones) Update(_ context.Context, p *entity.ContactPhone) error {
	return r.s.phones.update(p)
}

func (r memPhones) Delete(_ context.Context, id int64) error {
	return r.s.phones.delete(id)
}

type memAddressPhones struct{ s *memStore }

func (r memAddressPhones) Create(_ context.Context, l *entity.ContactAddressPhone) error {
	if err := r.s.fail("address_phone.create"); err != nil {
		return err
	}
	r.s.addressPhones.create(l)

	return nil
}

func (r memAddressPhones) FindByID(_ context.Context, id int64) (*entity.ContactAddressPhone, error) {
	return r.s.addressPhones.find(id)
}

func (r memAddressPhones) FindByAddress(_ context.Context, addressID int64) ([]*entity.ContactAddressPhone, error) {
	return r.s.addressPhones.where(func(l *entity.ContactAddressPhone) bool { return l.ContactAddressID == addressID }), nil
}

func (r memAddressPhones) FindByPhone(_ context.Context, phoneID int64) ([]*entity.ContactAddressPhone, error) {
	return r.s.addressPhones.where(func(l *entity.ContactAddressPhone) bool { return l.ContactPhoneID == phoneID }), nil
}

func (r memAddressPhones) Delete(_ context.Context, id int64) error {
	return r.s.addressPhones.delete(id)
}

type memEmails struct{ s *memStore }

func (r memEmails) Create(_ context.Context, e *entity.ContactEmail) error {
	r.s.emails.create(e)

	return nil
}

func (r memEmails) FindByID(_ context.Context, id int64) (*entity.ContactEmail, error) {
	return r.s.emails.find(id)
}

func (r memEmails) FindByContact(_ context.Context, contactID int64) ([]*entity.ContactEmail, error) {
	return r.s.emails.where(func(e *entity.ContactEmail) bool { return e.ContactID == contactID }), nil
}

func (r memEmails) Update(_ context.Context, e *entity.ContactEmail) error {
	return r.s.emails.update(e)
}

func (r memEmails) Delete(_ context.Context, id int64) error {
	return r.s.emails.delete(id)
}

type memIdentities struct{ s *memStore }

func (r memIdentities) Create(_ context.Context, i *entity.ContactIdentity) error {
	r.s.identities.create(i)

	return nil
}

func (r memIdentities) FindByID(_ context.Context, id int64) (*entity.ContactIdentity, error) {
	return r.s.identities.find(id)
}

func (r memIdentities) FindByContact(_ context.Context, contactID int64) ([]*entity.ContactIdentity, error) {
	return r.s.identities.where(func(i *entity.ContactIdentity) bool { return i.ContactID == contactID }), nil
}

func (r memIdentities) Update(_ context.Context, i *entity.ContactIdentity) error {
	return r.s.identities.update(i)
}

func (r memIdentities) Delete(_ context.Context, id int64) error {
	return r.s.identities.delete(id)
}

type memRestrictions struct{ s *memStore }

func (r memRestrictions) Create(_ context.Context, x *entity.ContactRestriction) error {
	r.s.restrictions.create(x)

	return nil
}

func (r memRestrictions) FindByID(_ context.Context, id int64) (*entity.ContactRestriction, error) {
	return r.s.restrictions.find(id)
}

func (r memRestrictions) FindByContact(_ context.Context, contactID int64) ([]*entity.ContactRestriction, error) {
	return r.s.restrictions.where(func(x *entity.ContactRestriction) bool { return x.ContactID == contactID }), nil
}

func (r memRestrictions) Update(_ context.Context, x *entity.ContactRestriction) error {
	return r.s.restrictions.update(x)
}

func (r memRestrictions) Delete(_ context.Context, id int64) error {
	return r.s.restrictions.delete(id)
}

type memPrisonerContacts struct{ s *memStore }

func (r memPrisonerContacts) Create(_ context.Context, p *entity.PrisonerContact) error {
	if err := r.s.fail("prisoner_contact.create"); err != nil {
		return err
	}
	r.s.prisonerContacts.create(p)

	return nil
}

func (r memPrisonerContacts) FindByID(_ context.Context, id int64) (*entity.PrisonerContact, error) {
	return r.s.prisonerContacts.find(id)
}

func (r memPrisonerContacts) FindByContact(_ context.Context, contactID int64) ([]*entity.PrisonerContact, error) {
	return r.s.prisonerContacts.where(func(p *entity.PrisonerContact) bool { return p.ContactID == contactID }), nil
}

func (r memPrisonerContacts) FindByPrisoner(_ context.Context, prisonerNumber string) ([]*entity.PrisonerContact, error) {
	return r.s.prisonerContacts.where(func(p *entity.PrisonerContact) bool { return p.PrisonerNumber == prisonerNumber }), nil
}

func (r memPrisonerContacts) Update(_ context.Context, p *entity.PrisonerContact) error {
	return r.s.prisonerContacts.update(p)
}

func (r memPrisonerContacts) Delete(_ context.Context, id int64) error {
	return r.s.prisonerContacts.delete(id)
}

type memPrisonerContactRestrictions struct{ s *memStore }

func (r memPrisonerContactRestrictions) Create(_ context.Context, x *entity.PrisonerContactRestriction) error {
	r.s.prisonerContactRestrictions.create(x)

	return nil
}

func (r memPrisonerContactRestrictions) FindByID(_ context.Context, id int64) (*entity.PrisonerContactRestriction, error) {
	return r.s.prisonerContactRestrictions.find(id)
}

func (r memPrisonerContactRestrictions) FindByPrisonerContact(_ context.Context, prisonerContactID int64) ([]*entity.PrisonerContactRestriction, error) {
	return r.s.prisonerContactRestrictions.where(func(x *entity.PrisonerContactRestriction) bool {
		return x.PrisonerContactID == prisonerContactID
	}), nil
}

func (r memPrisonerContactRestrictions) Update(_ context.Context, x *entity.PrisonerContactRestriction) error {
	return r.s.prisonerContactRestrictions.update(x)
}

func (r memPrisonerContactRestrictions) Delete(_ context.Context, id int64) error {
	return r.s.prisonerContactRestrictions.delete(id)
}

type memEmployments struct{ s *memStore }

func (r memEmployments) Create(_ context.Context, e *entity.Employment) error {
	if err := r.s.fail("employment.create"); err != nil {
		return err
	}
	r.s.employments.create(e)

	return nil
}

func (r memEmployments) FindByID(_ context.Context, id int64) (*entity.Employment, error) {
	return r.s.employments.find(id)
}

func (r memEmployments) FindByContact(_ context.Context, contactID int64) ([]*entity.Employment, error) {
	return r.s.employments.where(func(e *entity.Employment) bool { return e.ContactID == contactID }), nil
}

func (r memEmployments) Update(_ context.Context, e *entity.Employment) error {
	if err := r.s.fail("employment.update"); err != nil {
		return err
	}

	return r.s.employments.update(e)
}

func (r memEmployments) Delete(_ context.Context, id int64) error {
	if err := r.s.fail("employment.delete"); err != nil {
		return err
	}

	return r.s.employments.delete(id)
}

type memOrganisations struct{ s *memStore }

func (r memOrganisations) FindByID(_ context.Context, id int64) (*entity.Organisation, error) {
	org, ok := r.s.organisations[id]
	if !ok {
		return nil, repository.ErrOrganisationNotFound
	}

	return org, nil
}

type memReferenceCodes struct{ s *memStore }

func (r memReferenceCodes) FindByGroupAndCode(_ context.Context, group entity.ReferenceGroup, code string) (*entity.ReferenceCode, error) {
	ref, ok := r.s.codes[string(group)+"|"+code]
	if !ok {
		return nil, repository.ErrReferenceCodeNotFound
	}

	return ref, nil
}

func (r memReferenceCodes) FindByGroup(_ context.Context, group entity.ReferenceGroup) ([]*entity.ReferenceCode, error) {
	var out []*entity.ReferenceCode
	for _, ref := range r.s.codes {
		if ref.Group == group {
			out = append(out, ref)
		}
	}

	return out, nil
}

type memOutbox struct{ s *memStore }

func (r memOutbox) Append(_ context.Context, events []*entity.OutboundEvent) error {
	if err := r.s.fail("outbox.append"); err != nil {
		return err
	}
	for _, e := range events {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		r.s.outbox = append(r.s.outbox, e)
	}

	return nil
}

func (r memOutbox) FindPending(context.Context, time.Time, int, int) ([]*entity.OutboundEvent, error) {
	return nil, errors.New("not supported")
}

func (r memOutbox) ClaimPending(context.Context, uuid.UUID) (*entity.OutboundEvent, error) {
	return nil, errors.New("not supported")
}

func (r memOutbox) MarkPublished(context.Context, uuid.UUID, time.Time) error {
	return nil
}

func (r memOutbox) MarkFailed(context.Context, uuid.UUID, string) error {
	return nil
}

// recordingDispatcher captures dispatched events in order.
type recordingDispatcher struct {
	dispatched []*entity.OutboundEvent
	err        error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, events []*entity.OutboundEvent) error {
	if d.err != nil {
		return d.err
	}
	d.dispatched = append(d.dispatched, events...)

	return nil
}

func (d *recordingDispatcher) kinds() []entity.EventKind {
	kinds := make([]entity.EventKind, len(d.dispatched))
	for i, e := range d.dispatched {
		kinds[i] = e.Kind
	}

	return kinds
}

func (d *recordingDispatcher) ofKind(kind entity.EventKind) []*entity.OutboundEvent {
	var out []*entity.OutboundEvent
	for _, e := range d.dispatched {
		if e.Kind == kind {
			out = append(out, e)
		}
	}

	return out
}
