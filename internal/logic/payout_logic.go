package logic

import (
	"errors"
	"time"

	"github.com/tthaingoc/EcoFashion-sub003/internal/config"
	"github.com/tthaingoc/EcoFashion-sub003/internal/logger"
	"github.com/tthaingoc/EcoFashion-sub003/internal/model"
	"gorm.io/gorm"
)

// PayoutLogic 放款业务逻辑
// 把一个订单全部待放款结算记录的资金从平台托管钱包转给卖家钱包。
type PayoutLogic struct {
	db     *gorm.DB
	cfg    *config.Config
	ledger *LedgerLogic
}

// NewPayoutLogic 创建放款业务逻辑
func NewPayoutLogic(db *gorm.DB, cfg *config.Config) *PayoutLogic {
	return &PayoutLogic{
		db:     db,
		cfg:    cfg,
		ledger: NewLedgerLogic(db),
	}
}

// ReleasePayouts 对一个订单放款，整个调用在一条事务里完成。
// 卖家没有钱包或托管余额不足的记录跳过、保持 pending，等下次放款重试；
// 其它持久化错误回滚本订单的全部改动后向上抛。
func (p *PayoutLogic) ReleasePayouts(orderId int64) error {
	tx := p.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 查找该订单的待放款结算记录
	var settlements []model.SettlementModel
	if err := tx.Where("order_id = ? AND status = ?", orderId, model.SettlementStatusPending).
		Order("id ASC").
		Find(&settlements).Error; err != nil {
		tx.Rollback()
		return err
	}
	if len(settlements) == 0 {
		tx.Rollback()
		logger.Info("ReleasePayouts: order %d has no pending settlements", orderId)
		return nil
	}

	// 托管钱包还没建好时先不放款，留待下次
	escrow, err := p.ledger.WalletByUserId(tx, p.cfg.Platform.EscrowUserId)
	if err != nil {
		tx.Rollback()
		return err
	}
	if escrow == nil {
		tx.Rollback()
		logger.Warn("ReleasePayouts: escrow wallet for user %d not found, deferring order %d", p.cfg.Platform.EscrowUserId, orderId)
		return nil
	}

	released := 0
	now := time.Now()

	for i := range settlements {
		settlement := &settlements[i]

		sellerWallet, err := p.ledger.WalletByUserId(tx, settlement.SellerUserId)
		if err != nil {
			tx.Rollback()
			return err
		}
		if sellerWallet == nil {
			// 卖家还没开钱包，这条保持 pending
			logger.Warn("ReleasePayouts: seller %d has no wallet, settlement %d stays pending", settlement.SellerUserId, settlement.Id)
			continue
		}

		// 托管钱包出账，条件扣减挡住超扣
		err = p.ledger.CreateTransaction(tx, escrow.Id, model.WalletTransactionTypeWithdrawal,
			settlement.NetAmount, &settlement.OrderId, &settlement.Id)
		if errors.Is(err, ErrInsufficientBalance) {
			logger.Warn("ReleasePayouts: escrow balance below %s, settlement %d stays pending", settlement.NetAmount.String(), settlement.Id)
			continue
		}
		if err != nil {
			tx.Rollback()
			return err
		}

		// 卖家钱包入账
		if err := p.ledger.CreateTransaction(tx, sellerWallet.Id, model.WalletTransactionTypeDeposit,
			settlement.NetAmount, &settlement.OrderId, &settlement.Id); err != nil {
			tx.Rollback()
			return err
		}

		if err := settlement.MarkReleased(now); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Model(settlement).Updates(map[string]interface{}{
			"status":      settlement.Status,
			"released_at": settlement.ReleasedAt,
		}).Error; err != nil {
			tx.Rollback()
			return err
		}

		released++
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	logger.Info("ReleasePayouts: order %d released %d/%d settlements", orderId, released, len(settlements))
	return nil
}

// ReleasePayoutsForGroup 对订单组逐单放款。
// 每个订单有自己的事务边界，一个订单失败不影响组里其它订单。
func (p *PayoutLogic) ReleasePayoutsForGroup(orderGroupId string) error {
	var orders []model.OrderModel
	if err := p.db.Where("order_group_id = ?", orderGroupId).Order("id ASC").Find(&orders).Error; err != nil {
		return err
	}
	if len(orders) == 0 {
		logger.Info("ReleasePayoutsForGroup: no orders in group %s", orderGroupId)
		return nil
	}

	var firstErr error
	for _, order := range orders {
		if err := p.ReleasePayouts(order.Id); err != nil {
			logger.Error("ReleasePayoutsForGroup: order %d in group %s failed: %v", order.Id, orderGroupId, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
