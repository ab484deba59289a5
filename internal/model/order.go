package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel 订单
type OrderModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OrderGroupId  string          `json:"order_group_id" gorm:"index"`                    // 同一次结算创建的订单组ID（可为空）
	BuyerUserId   int64           `json:"buyer_user_id" gorm:"not null"`                  // 买家用户ID
	TotalAmount   decimal.Decimal `json:"total_amount" gorm:"type:numeric(20,2)"`         // 订单总金额
	PaymentStatus string          `json:"payment_status" gorm:"default:'unpaid';not null"` // unpaid, paid
	PaidAt        *time.Time      `json:"paid_at"`
}

// PaymentStatus 支付状态
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid" // 未支付
	PaymentStatusPaid   PaymentStatus = "paid"   // 已支付
)

// TableName 自定义表名
func (OrderModel) TableName() string {
	return "order"
}

// OrderDetailModel 订单明细
// 一条明细要么引用面料（MaterialId），要么引用设计师成衣（ProductId）。
type OrderDetailModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OrderId    int64           `json:"order_id" gorm:"not null;index"`
	MaterialId *int64          `json:"material_id"`
	ProductId  *int64          `json:"product_id"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:numeric(20,2);not null"`

	// 关联
	Material *MaterialModel `json:"material,omitempty" gorm:"foreignKey:MaterialId"`
	Product  *ProductModel  `json:"product,omitempty" gorm:"foreignKey:ProductId"`
}

// TableName 自定义表名
func (OrderDetailModel) TableName() string {
	return "order_detail"
}

// LineAmount 明细金额 = 数量 × 单价
func (d *OrderDetailModel) LineAmount() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
}
