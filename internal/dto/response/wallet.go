package response

import (
	"time"

	"helper-booking/internal/data/entity"
)

type WalletResponse struct {
	UserID       string  `json:"user_id"`
	Balance      float64 `json:"balance"`
	RewardPoints int     `json:"reward_points"`
	ReferralCode string  `json:"referral_code"`
}

type TransactionResponse struct {
	TxnID        string                     `json:"txn_id"`
	Type         entity.TransactionType     `json:"type"`
	Category     entity.TransactionCategory `json:"category"`
	Amount       float64                    `json:"amount"`
	SignedAmount float64                    `json:"signed_amount"`
	Description  string                     `json:"description"`
	Reference    string                     `json:"reference,omitempty"`
	CreatedAt    time.Time                  `json:"created_at"`
}

type RewardsResponse struct {
	Points           int     `json:"points"`
	PointValue       float64 `json:"point_value"`
	RedeemableAmount float64 `json:"redeemable_amount"`
}

// Helper converters
func WalletToResponse(wallet *entity.Wallet) *WalletResponse {
	return &WalletResponse{
		UserID:       wallet.UserID.String(),
		Balance:      wallet.Balance,
		RewardPoints: wallet.RewardPoints,
		ReferralCode: wallet.ReferralCode,
	}
}

func TransactionToResponse(txn *entity.WalletTransaction) *TransactionResponse {
	return &TransactionResponse{
		TxnID:        txn.TxnID,
		Type:         txn.Type,
		Category:     txn.Category,
		Amount:       txn.Amount,
		SignedAmount: txn.SignedAmount(),
		Description:  txn.Description,
		Reference:    txn.Reference,
		CreatedAt:    txn.CreatedAt,
	}
}

func TransactionsToResponse(txns []*entity.WalletTransaction) []*TransactionResponse {
	out := make([]*TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, TransactionToResponse(t))
	}
	return out
}

func RewardsToResponse(wallet *entity.Wallet) *RewardsResponse {
	return &RewardsResponse{
		Points:           wallet.RewardPoints,
		PointValue:       entity.RewardPointValue,
		RedeemableAmount: float64(wallet.RewardPoints) * entity.RewardPointValue,
	}
}
