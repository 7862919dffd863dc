package entity

import (
	"github.com/google/uuid"
)

// RewardPointValue is the balance credited per redeemed reward point
const RewardPointValue = 1.0

// ReferralBonus is credited to both sides when a referral code is applied
const ReferralBonus = 50.0

// RewardEarnDivisor: one reward point is earned per this much spent on
// completed bookings
const RewardEarnDivisor = 10.0

type Wallet struct {
	Base         `bson:",inline"`
	UserID       uuid.UUID  `bson:"user_id"`
	Balance      float64    `bson:"balance"`
	RewardPoints int        `bson:"reward_points"`
	ReferralCode string     `bson:"referral_code"`
	ReferredBy   *uuid.UUID `bson:"referred_by,omitempty"`
}

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

type TransactionCategory string

const (
	TxnCategoryTopup    TransactionCategory = "topup"
	TxnCategoryRedeem   TransactionCategory = "redeem"
	TxnCategoryReferral TransactionCategory = "referral"
	TxnCategoryPayment  TransactionCategory = "payment"
	TxnCategoryPayout   TransactionCategory = "payout"
	TxnCategoryReward   TransactionCategory = "reward"
)

type WalletTransaction struct {
	BaseSimple  `bson:",inline"`
	TxnID       string              `bson:"txn_id"`
	UserID      uuid.UUID           `bson:"user_id"`
	Type        TransactionType     `bson:"type"`
	Category    TransactionCategory `bson:"category"`
	Amount      float64             `bson:"amount"`
	Description string              `bson:"description"`
	Reference   string              `bson:"reference,omitempty"`
}

// SignedAmount is the display amount, negative for debits
func (t *WalletTransaction) SignedAmount() float64 {
	if t.Type == TransactionDebit {
		return -t.Amount
	}
	return t.Amount
}
