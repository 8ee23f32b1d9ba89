package account

import (
	"context"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"

	"lendpool/core"
)

type accountStore struct {
	db *db.DB
}

// New new account store
func New(db *db.DB) core.IAccountStore {
	return &accountStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Account{})
		if err := tx.AutoMigrate(core.Account{}).Error; err != nil {
			return err
		}

		return nil
	})
}

// Find returns a blank account when none exists; accounts are created
// implicitly on the first committed operation.
func (s *accountStore) Find(ctx context.Context, assetID, userID string) (*core.Account, error) {
	var account core.Account
	err := s.db.View().Where("asset_id = ? AND user_id = ?", assetID, userID).First(&account).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Account{AssetID: assetID, UserID: userID}, nil
		}
		return nil, err
	}

	return &account, nil
}

func (s *accountStore) FindByUser(ctx context.Context, userID string) ([]*core.Account, error) {
	var accounts []*core.Account
	if err := s.db.View().Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *accountStore) FindByAsset(ctx context.Context, assetID string) ([]*core.Account, error) {
	var accounts []*core.Account
	if err := s.db.View().Where("asset_id = ?", assetID).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *accountStore) Save(ctx context.Context, tx *db.DB, account *core.Account) error {
	return tx.Update().Create(account).Error
}

func (s *accountStore) Update(ctx context.Context, tx *db.DB, account *core.Account) error {
	version := account.Version
	account.Version++

	updated := tx.Update().Model(core.Account{}).
		Where("id = ? AND version = ?", account.ID, version).
		Update(account)
	if updated.Error != nil {
		return updated.Error
	}

	if updated.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
