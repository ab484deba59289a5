package logic

import (
	"github.com/tthaingoc/EcoFashion-sub003/internal/model"
)

// SellerKind 卖家归属判定结果
type SellerKind int

const (
	SellerUnassignable SellerKind = iota // 无法归属到任何卖家
	SellerSupplier                       // 面料供应商
	SellerDesigner                       // 设计师
)

// SellerRef 订单明细归属的卖家
type SellerRef struct {
	Kind   SellerKind
	UserId int64
}

// Assignable 是否能归属到卖家
func (r SellerRef) Assignable() bool {
	return r.Kind != SellerUnassignable
}

// SellerType 对应的结算卖家类型
func (r SellerRef) SellerType() model.SellerType {
	switch r.Kind {
	case SellerSupplier:
		return model.SellerTypeSupplier
	case SellerDesigner:
		return model.SellerTypeDesigner
	default:
		return ""
	}
}

// ResolveSeller 解析一条订单明细归属的卖家。
// 面料明细归属到供应商账号，成衣明细沿 产品->设计->设计师档案 归属到设计师账号。
// 关联链断掉的明细判定为 Unassignable，由调用方决定如何处理。
func ResolveSeller(detail *model.OrderDetailModel) SellerRef {
	if detail.Material != nil && detail.Material.Supplier != nil {
		return SellerRef{Kind: SellerSupplier, UserId: detail.Material.Supplier.UserId}
	}
	if detail.Product != nil && detail.Product.Design != nil && detail.Product.Design.DesignerProfile != nil {
		return SellerRef{Kind: SellerDesigner, UserId: detail.Product.Design.DesignerProfile.UserId}
	}
	return SellerRef{Kind: SellerUnassignable}
}
