package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// SettlementModel 结算记录
// 一条记录对应一个订单内一个卖家应得的份额。
// (order_id, seller_user_id, seller_type) 唯一索引从存储层挡住重复结算。
type SettlementModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OrderId          int64           `json:"order_id" gorm:"not null;uniqueIndex:idx_settlement_order_seller"`
	SellerUserId     int64           `json:"seller_user_id" gorm:"not null;uniqueIndex:idx_settlement_order_seller"`
	SellerType       string          `json:"seller_type" gorm:"not null;uniqueIndex:idx_settlement_order_seller"` // supplier, designer
	GrossAmount      decimal.Decimal `json:"gross_amount" gorm:"type:numeric(20,2);not null"`                     // 佣金前金额
	CommissionRate   decimal.Decimal `json:"commission_rate" gorm:"type:numeric(6,4);not null"`                   // 平台佣金比例
	CommissionAmount decimal.Decimal `json:"commission_amount" gorm:"type:numeric(20,2);not null"`                // 平台佣金
	NetAmount        decimal.Decimal `json:"net_amount" gorm:"type:numeric(20,2);not null"`                       // 实际放款金额
	Status           string          `json:"status" gorm:"default:'pending';not null"`                            // pending, released
	ReleasedAt       *time.Time      `json:"released_at"`
}

// SettlementStatus 结算状态
type SettlementStatus string

const (
	SettlementStatusPending  SettlementStatus = "pending"  // 待放款
	SettlementStatusReleased SettlementStatus = "released" // 已放款
)

// SellerType 卖家类型
type SellerType string

const (
	SellerTypeSupplier SellerType = "supplier" // 面料供应商
	SellerTypeDesigner SellerType = "designer" // 设计师
)

// ErrAlreadyReleased 结算记录已放款，不能重复放款
var ErrAlreadyReleased = errors.New("settlement already released")

// TableName 自定义表名
func (SettlementModel) TableName() string {
	return "settlement"
}

// MarkReleased 状态迁移 pending -> released，只允许发生一次
func (s *SettlementModel) MarkReleased(now time.Time) error {
	if s.Status == string(SettlementStatusReleased) {
		return ErrAlreadyReleased
	}
	s.Status = string(SettlementStatusReleased)
	s.ReleasedAt = &now
	return nil
}
