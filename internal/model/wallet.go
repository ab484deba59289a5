package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletModel 钱包
// Balance 只随 WalletTransactionModel 的写入在同一事务里变化，
// 任何时刻都等于其流水的带符号和。
type WalletModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserId  int64           `json:"user_id" gorm:"not null;uniqueIndex"`
	Balance decimal.Decimal `json:"balance" gorm:"type:numeric(20,2);not null"`
}

// TableName 自定义表名
func (WalletModel) TableName() string {
	return "wallet"
}

// WalletTransactionModel 钱包流水，只增不改
type WalletTransactionModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	WalletId     int64           `json:"wallet_id" gorm:"not null;index"`
	Type         string          `json:"type" gorm:"not null"` // deposit, withdrawal
	Amount       decimal.Decimal `json:"amount" gorm:"type:numeric(20,2);not null"`
	OrderId      *int64          `json:"order_id" gorm:"index"`      // 关联订单（可为空）
	SettlementId *int64          `json:"settlement_id" gorm:"index"` // 关联结算记录（可为空）
}

// WalletTransactionType 流水类型
type WalletTransactionType string

const (
	WalletTransactionTypeDeposit    WalletTransactionType = "deposit"    // 入账
	WalletTransactionTypeWithdrawal WalletTransactionType = "withdrawal" // 出账
)

// TableName 自定义表名
func (WalletTransactionModel) TableName() string {
	return "wallet_transaction"
}

// SignedAmount 带符号金额：入账为正，出账为负
func (t *WalletTransactionModel) SignedAmount() decimal.Decimal {
	if t.Type == string(WalletTransactionTypeWithdrawal) {
		return t.Amount.Neg()
	}
	return t.Amount
}
