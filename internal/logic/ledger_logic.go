package logic

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tthaingoc/EcoFashion-sub003/internal/model"
	"gorm.io/gorm"
)

// ErrInsufficientBalance 余额不足，条件扣减没有命中任何行
var ErrInsufficientBalance = errors.New("insufficient wallet balance")

// LedgerLogic 钱包账本业务逻辑
// 流水和余额永远在同一条事务里一起写，余额不单独更新。
type LedgerLogic struct {
	db *gorm.DB
}

// NewLedgerLogic 创建钱包账本业务逻辑
func NewLedgerLogic(db *gorm.DB) *LedgerLogic {
	return &LedgerLogic{db: db}
}

// GetWalletByUserId 按用户ID查钱包，不存在返回 nil
func (l *LedgerLogic) GetWalletByUserId(userId int64) (*model.WalletModel, error) {
	return l.WalletByUserId(l.db, userId)
}

// WalletByUserId 在指定事务里按用户ID查钱包，不存在返回 nil
func (l *LedgerLogic) WalletByUserId(db *gorm.DB, userId int64) (*model.WalletModel, error) {
	var wallet model.WalletModel
	if err := db.Where("user_id = ?", userId).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wallet, nil
}

// CreateTransaction 追加一条钱包流水并同步更新余额，二者在传入的事务里原子完成。
// 出账走条件扣减（balance >= amount 才扣），余额不足返回 ErrInsufficientBalance，
// 并发放款不会把托管钱包扣成负数。
func (l *LedgerLogic) CreateTransaction(tx *gorm.DB, walletId int64, txType model.WalletTransactionType, amount decimal.Decimal, orderId, settlementId *int64) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("transaction amount must be positive, got %s", amount.String())
	}

	switch txType {
	case model.WalletTransactionTypeWithdrawal:
		res := tx.Model(&model.WalletModel{}).
			Where("id = ? AND balance >= ?", walletId, amount).
			Update("balance", gorm.Expr("balance - ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 钱包不存在或余额不足，区分两种情况
			var count int64
			if err := tx.Model(&model.WalletModel{}).Where("id = ?", walletId).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrInsufficientBalance
		}
	case model.WalletTransactionTypeDeposit:
		res := tx.Model(&model.WalletModel{}).
			Where("id = ?", walletId).
			Update("balance", gorm.Expr("balance + ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
	default:
		return fmt.Errorf("unknown wallet transaction type: %s", txType)
	}

	record := model.WalletTransactionModel{
		WalletId:     walletId,
		Type:         string(txType),
		Amount:       amount,
		OrderId:      orderId,
		SettlementId: settlementId,
	}
	if err := tx.Create(&record).Error; err != nil {
		return err
	}

	return nil
}

// GetWalletTransactions 获取钱包流水（分页）
func (l *LedgerLogic) GetWalletTransactions(walletId int64, page, pageSize int) ([]model.WalletTransactionModel, int64, error) {
	var records []model.WalletTransactionModel
	var total int64

	// 获取总数
	if err := l.db.Model(&model.WalletTransactionModel{}).Where("wallet_id = ?", walletId).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 获取数据
	offset := (page - 1) * pageSize
	if err := l.db.Where("wallet_id = ?", walletId).
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
