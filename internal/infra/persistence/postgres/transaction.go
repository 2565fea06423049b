package postgres

import (
	"context"

	"contacts/internal/domain/repository"
	"contacts/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// Inside Execute it holds the transaction; outside it holds the base connection pool.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewRepositoryFactory returns repositories bound to the connection pool, for reads outside a transaction.
func NewRepositoryFactory(db *gorm.DB) repository.RepositoryFactory {
	return &gormRepositoryFactory{tx: db}
}

func (f *gormRepositoryFactory) ContactRepo() repository.ContactRepository {
	return NewContactRepository(f.tx)
}

func (f *gormRepositoryFactory) AddressRepo() repository.AddressRepository {
	return NewAddressRepository(f.tx)
}

func (f *gormRepositoryFactory) PhoneRepo() repository.PhoneRepository {
	return NewPhoneRepository(f.tx)
}

func (f *gormRepositoryFactory) AddressPhoneRepo() repository.AddressPhoneRepository {
	return NewAddressPhoneRepository(f.tx)
}

func (f *gormRepositoryFactory) EmailRepo() repository.EmailRepository {
	return NewEmailRepository(f.tx)
}

func (f *gormRepositoryFactory) IdentityRepo() repository.IdentityRepository {
	return NewIdentityRepository(f.tx)
}

func (f *gormRepositoryFactory) RestrictionRepo() repository.RestrictionRepository {
	return NewRestrictionRepository(f.tx)
}

func (f *gormRepositoryFactory) PrisonerContactRepo() repository.PrisonerContactRepository {
	return NewPrisonerContactRepository(f.tx)
}

func (f *gormRepositoryFactory) PrisonerContactRestrictionRepo() repository.PrisonerContactRestrictionRepository {
	return NewPrisonerContactRestrictionRepository(f.tx)
}

func (f *gormRepositoryFactory) EmploymentRepo() repository.EmploymentRepository {
	return NewEmploymentRepository(f.tx)
}

func (f *gormRepositoryFactory) OrganisationRepo() repository.OrganisationRepository {
	return NewOrganisationRepository(f.tx)
}

func (f *gormRepositoryFactory) ReferenceCodeRepo() repository.ReferenceCodeRepository {
	return NewReferenceCodeRepository(f.tx)
}

func (f *gormRepositoryFactory) OutboxRepo() repository.OutboxRepository {
	return NewOutboxRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic so the recover middleware still sees it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
