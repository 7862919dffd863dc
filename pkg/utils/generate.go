package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== PUBLIC IDS ====================

// Public id prefixes per record kind
const (
	BookingIDPrefix     = "BK"
	HelpRequestIDPrefix = "HR"
	TransactionIDPrefix = "TXN"
)

// FormatPublicID builds the human-readable identifier shown to users.
// Format: PREFIX-YYYYMMDD-SEQ, e.g. BK-20250114-000042. The sequence
// must come from the store's atomic counter so ids stay unique and
// monotonic across concurrent first saves.
func FormatPublicID(prefix string, t time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%06d", prefix, t.Format("20060102"), seq)
}

// ==================== REFERRAL CODE ====================

const referralAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateReferralCode returns an 8-char shareable wallet code
func GenerateReferralCode() string {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		b.WriteByte(referralAlphabet[rand.Intn(len(referralAlphabet))])
	}

	return b.String()
}
