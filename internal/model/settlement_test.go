package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkReleasedTransition(t *testing.T) {
	settlement := SettlementModel{Status: string(SettlementStatusPending)}
	now := time.Now()

	require.NoError(t, settlement.MarkReleased(now))
	assert.Equal(t, string(SettlementStatusReleased), settlement.Status)
	require.NotNil(t, settlement.ReleasedAt)
	assert.True(t, settlement.ReleasedAt.Equal(now))
}

func TestMarkReleasedOnlyOnce(t *testing.T) {
	settlement := SettlementModel{Status: string(SettlementStatusPending)}
	first := time.Now()
	require.NoError(t, settlement.MarkReleased(first))

	// 重复放款被拒绝，放款时间不被覆盖
	err := settlement.MarkReleased(first.Add(time.Hour))
	assert.ErrorIs(t, err, ErrAlreadyReleased)
	assert.True(t, settlement.ReleasedAt.Equal(first))
}

func TestWalletTransactionSignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(10)

	deposit := WalletTransactionModel{Type: string(WalletTransactionTypeDeposit), Amount: amount}
	assert.True(t, deposit.SignedAmount().Equal(amount))

	withdrawal := WalletTransactionModel{Type: string(WalletTransactionTypeWithdrawal), Amount: amount}
	assert.True(t, withdrawal.SignedAmount().Equal(amount.Neg()))
}
