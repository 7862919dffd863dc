package memstore

import (
	"context"
	"fmt"
	"time"

	"helper-booking/internal/data/entity"
	"helper-booking/internal/data/repository"
	"helper-booking/pkg/database"

	"github.com/google/uuid"
)

type walletRepository struct {
	store *Store
}

func NewWalletRepository(store *Store) repository.WalletRepository {
	return &walletRepository{store: store}
}

func cloneWallet(w *entity.Wallet) *entity.Wallet {
	c := *w
	if w.ReferredBy != nil {
		ref := *w.ReferredBy
		c.ReferredBy = &ref
	}
	return &c
}

func (wr *walletRepository) Create(_ context.Context, wallet *entity.Wallet) error {
	wr.store.Insert(database.CollWallets, wallet.ID.String(), cloneWallet(wallet))
	return nil
}

func (wr *walletRepository) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	for _, rec := range wr.store.List(database.CollWallets) {
		wallet := rec.(*entity.Wallet)
		if wallet.UserID == userID {
			return cloneWallet(wallet), nil
		}
	}
	return nil, nil
}

func (wr *walletRepository) FindByReferralCode(_ context.Context, code string) (*entity.Wallet, error) {
	for _, rec := range wr.store.List(database.CollWallets) {
		wallet := rec.(*entity.Wallet)
		if wallet.ReferralCode == code {
			return cloneWallet(wallet), nil
		}
	}
	return nil, nil
}

func (wr *walletRepository) Update(_ context.Context, wallet *entity.Wallet) error {
	wallet.UpdatedAt = time.Now()
	if !wr.store.Update(database.CollWallets, wallet.ID.String(), cloneWallet(wallet)) {
		return fmt.Errorf("wallet for user %s not found", wallet.UserID.String())
	}
	return nil
}

func (wr *walletRepository) AddTransaction(_ context.Context, txn *entity.WalletTransaction) error {
	c := *txn
	wr.store.Insert(database.CollTransactions, txn.ID.String(), &c)
	return nil
}

func (wr *walletRepository) ListTransactions(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.WalletTransaction, error) {
	matched := []*entity.WalletTransaction{}
	for _, rec := range wr.store.List(database.CollTransactions) {
		txn := rec.(*entity.WalletTransaction)
		if txn.UserID == userID {
			c := *txn
			matched = append(matched, &c)
		}
	}
	return window(matched, limit, offset), nil
}
