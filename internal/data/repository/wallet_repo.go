package repository

import (
	"context"
	"fmt"
	"time"

	"helper-booking/internal/data/entity"
	"helper-booking/pkg/database"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type WalletRepository interface {
	Create(ctx context.Context, wallet *entity.Wallet) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error)
	FindByReferralCode(ctx context.Context, code string) (*entity.Wallet, error)
	Update(ctx context.Context, wallet *entity.Wallet) error
	AddTransaction(ctx context.Context, txn *entity.WalletTransaction) error
	ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.WalletTransaction, error)
}

type mongoWalletRepository struct {
	wallets *mongo.Collection
	txns    *mongo.Collection
	log     *zap.Logger
}

func NewMongoWalletRepository(db *mongo.Database, log *zap.Logger) WalletRepository {
	return &mongoWalletRepository{
		wallets: db.Collection(database.CollWallets),
		txns:    db.Collection(database.CollTransactions),
		log:     log,
	}
}

func (wr *mongoWalletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	if _, err := wr.wallets.InsertOne(ctx, wallet); err != nil {
		wr.log.Error("Failed to create wallet",
			zap.Error(err),
			zap.String("user_id", wallet.UserID.String()),
		)
		return fmt.Errorf("create wallet for user %s: %w", wallet.UserID.String(), err)
	}

	return nil
}

func (wr *mongoWalletRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	var wallet entity.Wallet

	err := wr.wallets.FindOne(ctx, bson.M{"user_id": userID}).Decode(&wallet)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		wr.log.Error("Failed to find wallet",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find wallet for user %s: %w", userID.String(), err)
	}

	return &wallet, nil
}

func (wr *mongoWalletRepository) FindByReferralCode(ctx context.Context, code string) (*entity.Wallet, error) {
	var wallet entity.Wallet

	err := wr.wallets.FindOne(ctx, bson.M{"referral_code": code}).Decode(&wallet)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		wr.log.Error("Failed to find wallet by referral code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find wallet by referral code %s: %w", code, err)
	}

	return &wallet, nil
}

func (wr *mongoWalletRepository) Update(ctx context.Context, wallet *entity.Wallet) error {
	wallet.UpdatedAt = time.Now()

	result, err := wr.wallets.ReplaceOne(ctx, bson.M{"_id": wallet.ID}, wallet)
	if err != nil {
		wr.log.Error("Failed to update wallet",
			zap.Error(err),
			zap.String("user_id", wallet.UserID.String()),
		)
		return fmt.Errorf("update wallet for user %s: %w", wallet.UserID.String(), err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("wallet for user %s not found", wallet.UserID.String())
	}

	return nil
}

func (wr *mongoWalletRepository) AddTransaction(ctx context.Context, txn *entity.WalletTransaction) error {
	if _, err := wr.txns.InsertOne(ctx, txn); err != nil {
		wr.log.Error("Failed to record wallet transaction",
			zap.Error(err),
			zap.String("txn_id", txn.TxnID),
		)
		return fmt.Errorf("record transaction %s: %w", txn.TxnID, err)
	}

	return nil
}

func (wr *mongoWalletRepository) ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.WalletTransaction, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := wr.txns.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		wr.log.Error("Failed to list transactions",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list transactions for user %s: %w", userID.String(), err)
	}
	defer cursor.Close(ctx)

	txns := []*entity.WalletTransaction{}
	if err := cursor.All(ctx, &txns); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}

	return txns, nil
}
