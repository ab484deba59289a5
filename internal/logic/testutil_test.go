package logic

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tthaingoc/EcoFashion-sub003/internal/config"
	"github.com/tthaingoc/EcoFashion-sub003/internal/database"
	"github.com/tthaingoc/EcoFashion-sub003/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// newTestDB 建一个独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true,
		},
	})
	require.NoError(t, err)

	// 内存库只保留一个连接，避免连接池拿到不同的空库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// testConfig 测试用平台配置
func testConfig(escrowUserId int64) *config.Config {
	return &config.Config{
		Platform: config.PlatformConfig{
			EscrowUserId:   escrowUserId,
			CommissionRate: 0.10,
		},
	}
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// seedSupplierMaterial 建供应商及其面料
func seedSupplierMaterial(t *testing.T, db *gorm.DB, userId int64) *model.MaterialModel {
	t.Helper()

	supplier := model.SupplierModel{UserId: userId, Name: "供应商"}
	require.NoError(t, db.Create(&supplier).Error)

	material := model.MaterialModel{SupplierId: &supplier.Id, Name: "有机棉"}
	require.NoError(t, db.Create(&material).Error)
	return &material
}

// seedDesignerProduct 建设计师档案、设计和成衣
func seedDesignerProduct(t *testing.T, db *gorm.DB, userId int64) *model.ProductModel {
	t.Helper()

	profile := model.DesignerProfileModel{UserId: userId, Name: "设计师"}
	require.NoError(t, db.Create(&profile).Error)

	design := model.DesignModel{DesignerProfileId: &profile.Id, Title: "春季系列"}
	require.NoError(t, db.Create(&design).Error)

	product := model.ProductModel{DesignId: &design.Id, Name: "连衣裙"}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

// seedOrder 建一个已支付订单
func seedOrder(t *testing.T, db *gorm.DB, groupId string) *model.OrderModel {
	t.Helper()

	order := model.OrderModel{
		OrderGroupId:  groupId,
		BuyerUserId:   1000,
		PaymentStatus: string(model.PaymentStatusPaid),
	}
	require.NoError(t, db.Create(&order).Error)
	return &order
}

// addMaterialLine 给订单加一条面料明细
func addMaterialLine(t *testing.T, db *gorm.DB, orderId int64, materialId *int64, qty int, unitPrice string) {
	t.Helper()

	detail := model.OrderDetailModel{
		OrderId:    orderId,
		MaterialId: materialId,
		Quantity:   qty,
		UnitPrice:  dec(t, unitPrice),
	}
	require.NoError(t, db.Create(&detail).Error)
}

// addProductLine 给订单加一条成衣明细
func addProductLine(t *testing.T, db *gorm.DB, orderId int64, productId *int64, qty int, unitPrice string) {
	t.Helper()

	detail := model.OrderDetailModel{
		OrderId:   orderId,
		ProductId: productId,
		Quantity:  qty,
		UnitPrice: dec(t, unitPrice),
	}
	require.NoError(t, db.Create(&detail).Error)
}

// createWallet 建钱包并充值
func createWallet(t *testing.T, db *gorm.DB, userId int64, balance string) *model.WalletModel {
	t.Helper()

	wallet := model.WalletModel{UserId: userId, Balance: dec(t, balance)}
	require.NoError(t, db.Create(&wallet).Error)
	return &wallet
}

// walletBalance 读取钱包当前余额
func walletBalance(t *testing.T, db *gorm.DB, walletId int64) decimal.Decimal {
	t.Helper()

	var wallet model.WalletModel
	require.NoError(t, db.First(&wallet, walletId).Error)
	return wallet.Balance
}

// orderSettlements 读取订单的结算记录
func orderSettlements(t *testing.T, db *gorm.DB, orderId int64) []model.SettlementModel {
	t.Helper()

	var settlements []model.SettlementModel
	require.NoError(t, db.Where("order_id = ?", orderId).Order("id ASC").Find(&settlements).Error)
	return settlements
}
