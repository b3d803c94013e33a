package carbon

import (
	"fmt"
	"time"

	"github.com/footprint-app/footprint/internal/model"
	"github.com/google/uuid"
)

// TipBridge persists advisories as tips owned by a user.
type TipBridge struct {
	tips TipStore
	now  func() time.Time
}

func NewTipBridge(tips TipStore) *TipBridge {
	return &TipBridge{tips: tips, now: time.Now}
}

// Persist inserts one tip per advisory, in order, and returns advisories
// unchanged. Inserts are independent: on failure the tips already written
// stay written and the error is returned.
func (b *TipBridge) Persist(userID string, advisories []Advisory) ([]Advisory, error) {
	for i, advisory := range advisories {
		tip := &model.Tip{
			ID:        uuid.New().String(),
			UserID:    userID,
			Text:      advisory.Text,
			Category:  advisory.Category,
			CreatedAt: b.now().UTC(),
		}
		if err := b.tips.Create(tip); err != nil {
			return nil, fmt.Errorf("failed to persist tip %d of %d: %w", i+1, len(advisories), err)
		}
	}
	return advisories, nil
}
