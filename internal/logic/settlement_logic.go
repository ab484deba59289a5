package logic

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tthaingoc/EcoFashion-sub003/internal/logger"
	"github.com/tthaingoc/EcoFashion-sub003/internal/model"
	"gorm.io/gorm"
)

// DefaultCommissionRate 默认平台佣金比例
var DefaultCommissionRate = decimal.NewFromFloat(0.10)

// SettlementLogic 结算业务逻辑
type SettlementLogic struct {
	db *gorm.DB
}

// NewSettlementLogic 创建结算业务逻辑
func NewSettlementLogic(db *gorm.DB) *SettlementLogic {
	return &SettlementLogic{db: db}
}

// sellerKey 按卖家聚合的键
type sellerKey struct {
	UserId int64
	Type   model.SellerType
}

// CreateSettlements 为一个已支付订单生成结算记录。
// 按卖家聚合明细金额，每个卖家一条 pending 记录。
// 订单不存在或已生成过结算记录时直接返回，可以安全重复调用。
func (s *SettlementLogic) CreateSettlements(orderId int64, commissionRate decimal.Decimal) error {
	if commissionRate.Sign() < 0 || commissionRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("invalid commission rate: %s", commissionRate.String())
	}

	// 检查订单是否存在
	var order model.OrderModel
	if err := s.db.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("CreateSettlements: order %d not found, skipping", orderId)
			return nil
		}
		return err
	}

	// 幂等保护：该订单已有结算记录则不再生成。
	// 存储层的唯一索引 (order_id, seller_user_id, seller_type) 兜底并发重复调用。
	var existing int64
	if err := s.db.Model(&model.SettlementModel{}).Where("order_id = ?", orderId).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		logger.Info("CreateSettlements: order %d already settled, skipping", orderId)
		return nil
	}

	// 加载明细及卖家关联链
	var details []model.OrderDetailModel
	if err := s.db.Where("order_id = ?", orderId).
		Preload("Material.Supplier").
		Preload("Product.Design.DesignerProfile").
		Order("id ASC").
		Find(&details).Error; err != nil {
		return err
	}

	// 按卖家聚合金额
	grossBySeller := make(map[sellerKey]decimal.Decimal)
	var keys []sellerKey // 保持首次出现顺序
	unassignable := decimal.Zero

	for i := range details {
		detail := &details[i]
		seller := ResolveSeller(detail)
		if !seller.Assignable() {
			unassignable = unassignable.Add(detail.LineAmount())
			continue
		}

		key := sellerKey{UserId: seller.UserId, Type: seller.SellerType()}
		if _, ok := grossBySeller[key]; !ok {
			keys = append(keys, key)
		}
		grossBySeller[key] = grossBySeller[key].Add(detail.LineAmount())
	}

	if unassignable.Sign() > 0 {
		// 归属不到卖家的金额暂不入账，留给运营决策
		logger.Warn("CreateSettlements: order %d has unassignable amount %s", orderId, unassignable.String())
	}

	if len(keys) == 0 {
		logger.Info("CreateSettlements: order %d has no seller-resolvable lines", orderId)
		return nil
	}

	// 生成结算记录，佣金按两位小数四舍五入，净额用减法保证不差一分钱
	settlements := make([]model.SettlementModel, 0, len(keys))
	for _, key := range keys {
		gross := grossBySeller[key]
		commission := gross.Mul(commissionRate).Round(2)
		settlements = append(settlements, model.SettlementModel{
			OrderId:          orderId,
			SellerUserId:     key.UserId,
			SellerType:       string(key.Type),
			GrossAmount:      gross,
			CommissionRate:   commissionRate,
			CommissionAmount: commission,
			NetAmount:        gross.Sub(commission),
			Status:           string(model.SettlementStatusPending),
		})
	}

	// 一次事务写入全部记录
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&settlements).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	logger.Info("CreateSettlements: order %d split into %d settlements", orderId, len(settlements))
	return nil
}

// GetOrderSettlements 获取订单的结算记录
func (s *SettlementLogic) GetOrderSettlements(orderId int64) ([]model.SettlementModel, error) {
	var settlements []model.SettlementModel
	if err := s.db.Where("order_id = ?", orderId).Order("id ASC").Find(&settlements).Error; err != nil {
		return nil, err
	}
	return settlements, nil
}

// GetSettlementStats 获取结算统计信息
func (s *SettlementLogic) GetSettlementStats() (map[string]interface{}, error) {
	var stats struct {
		PendingCount   int64
		ReleasedCount  int64
		PendingAmount  decimal.Decimal
		ReleasedAmount decimal.Decimal
	}

	// 待放款数量
	if err := s.db.Model(&model.SettlementModel{}).Where("status = ?", model.SettlementStatusPending).Count(&stats.PendingCount).Error; err != nil {
		return nil, fmt.Errorf("获取待放款数量失败: %w", err)
	}

	// 已放款数量
	if err := s.db.Model(&model.SettlementModel{}).Where("status = ?", model.SettlementStatusReleased).Count(&stats.ReleasedCount).Error; err != nil {
		return nil, fmt.Errorf("获取已放款数量失败: %w", err)
	}

	// 待放款金额
	if err := s.db.Model(&model.SettlementModel{}).Where("status = ?", model.SettlementStatusPending).
		Select("COALESCE(SUM(net_amount), 0)").Scan(&stats.PendingAmount).Error; err != nil {
		return nil, fmt.Errorf("获取待放款金额失败: %w", err)
	}

	// 已放款金额
	if err := s.db.Model(&model.SettlementModel{}).Where("status = ?", model.SettlementStatusReleased).
		Select("COALESCE(SUM(net_amount), 0)").Scan(&stats.ReleasedAmount).Error; err != nil {
		return nil, fmt.Errorf("获取已放款金额失败: %w", err)
	}

	return map[string]interface{}{
		"pending_count":   stats.PendingCount,
		"released_count":  stats.ReleasedCount,
		"pending_amount":  stats.PendingAmount.String(),
		"released_amount": stats.ReleasedAmount.String(),
	}, nil
}
