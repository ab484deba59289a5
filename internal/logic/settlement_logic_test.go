package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tthaingoc/EcoFashion-sub003/internal/model"
)

func TestCreateSettlementsSplitsByDistinctSeller(t *testing.T) {
	db := newTestDB(t)
	settlementLogic := NewSettlementLogic(db)

	material := seedSupplierMaterial(t, db, 7)
	product := seedDesignerProduct(t, db, 9)
	order := seedOrder(t, db, "")
	addMaterialLine(t, db, order.Id, &material.Id, 3, "100")
	addProductLine(t, db, order.Id, &product.Id, 1, "500")

	require.NoError(t, settlementLogic.CreateSettlements(order.Id, dec(t, "0.10")))

	settlements := orderSettlements(t, db, order.Id)
	require.Len(t, settlements, 2)

	bySeller := make(map[int64]model.SettlementModel)
	for _, s := range settlements {
		bySeller[s.SellerUserId] = s
	}

	supplier := bySeller[7]
	assert.Equal(t, string(model.SellerTypeSupplier), supplier.SellerType)
	assert.True(t, supplier.GrossAmount.Equal(dec(t, "300")), "gross %s", supplier.GrossAmount)
	assert.True(t, supplier.CommissionAmount.Equal(dec(t, "30")), "commission %s", supplier.CommissionAmount)
	assert.True(t, supplier.NetAmount.Equal(dec(t, "270")), "net %s", supplier.NetAmount)
	assert.Equal(t, string(model.SettlementStatusPending), supplier.Status)
	assert.Nil(t, supplier.ReleasedAt)

	designer := bySeller[9]
	assert.Equal(t, string(model.SellerTypeDesigner), designer.SellerType)
	assert.True(t, designer.GrossAmount.Equal(dec(t, "500")), "gross %s", designer.GrossAmount)
	assert.True(t, designer.CommissionAmount.Equal(dec(t, "50")), "commission %s", designer.CommissionAmount)
	assert.True(t, designer.NetAmount.Equal(dec(t, "450")), "net %s", designer.NetAmount)
	assert.Equal(t, string(model.SettlementStatusPending), designer.Status)
}

func TestCreateSettlementsAggregatesSameSeller(t *testing.T) {
	db := newTestDB(t)
	settlementLogic := NewSettlementLogic(db)

	material := seedSupplierMaterial(t, db, 7)
	order := seedOrder(t, db, "")
	addMaterialLine(t, db, order.Id, &material.Id, 2, "10.50")
	addMaterialLine(t, db, order.Id, &material.Id, 1, "4.25")

	require.NoError(t, settlementLogic.CreateSettlements(order.Id, dec(t, "0.10")))

	settlements := orderSettlements(t, db, order.Id)
	require.Len(t, settlements, 1)
	// 2×10.50 + 1×4.25 = 25.25, 佣金 2.53（四舍五入）, 净额 22.72
	assert.True(t, settlements[0].GrossAmount.Equal(dec(t, "25.25")), "gross %s", settlements[0].GrossAmount)
	assert.True(t, settlements[0].CommissionAmount.Equal(dec(t, "2.53")), "commission %s", settlements[0].CommissionAmount)
	assert.True(t, settlements[0].NetAmount.Equal(dec(t, "22.72")), "net %s", settlements[0].NetAmount)
	// 净额+佣金必须精确等于毛额
	sum := settlements[0].NetAmount.Add(settlements[0].CommissionAmount)
	assert.True(t, sum.Equal(settlements[0].GrossAmount))
}

func TestCreateSettlementsIdempotent(t *testing.T) {
	db := newTestDB(t)
	settlementLogic := NewSettlementLogic(db)

	material := seedSupplierMaterial(t, db, 7)
	order := seedOrder(t, db, "")
	addMaterialLine(t, db, order.Id, &material.Id, 3, "100")

	require.NoError(t, settlementLogic.CreateSettlements(order.Id, dec(t, "0.10")))
	first := orderSettlements(t, db, order.Id)

	// 重复调用不产生新记录，也不改已有记录
	require.NoError(t, settlementLogic.CreateSettlements(order.Id, dec(t, "0.10")))
	second := orderSettlements(t, db, order.Id)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Id, second[i].Id)
		assert.True(t, first[i].GrossAmount.Equal(second[i].GrossAmount))
	}
}

func TestCreateSettlementsConservation(t *testing.T) {
	db := newTestDB(t)
	settlementLogic := NewSettlementLogic(db)

	material := seedSupplierMaterial(t, db, 7)
	product := seedDesignerProduct(t, db, 9)
	order := seedOrder(t, db, "")
	addMaterialLine(t, db, order.Id, &material.Id, 3, "33.33")
	addProductLine(t, db, order.Id, &product.Id, 7, "19.99")

	require.NoError(t, settlementLogic.CreateSettlements(order.Id, dec(t, "0.07")))

	// Σ毛额 = Σ(数量×单价)
	expected := dec(t, "33.33").Mul(dec(t, "3")).Add(dec(t, "19.99").Mul(dec(t, "7")))
	totalGross := dec(t, "0")
	for _, s := range orderSettlements(t, db, order.Id) {
		totalGross = totalGross.Add(s.GrossAmount)
	}
	assert.True(t, totalGross.Equal(expected), "total gross %s, expected %s", totalGross, expected)
}

func TestCreateSettlementsSkipsUnassignableLines(t *testing.T) {
	db := newTestDB(t)
	settlementLogic := NewSettlementLogic(db)

	material := seedSupplierMaterial(t, db, 7)

	// 没挂供应商的面料，归属不到卖家
	orphan := model.MaterialModel{Name: "来历不明的面料"}
	require.NoError(t, db.Create(&orphan).Error)

	order := seedOrder(t, db, "")
	addMaterialLine(t, db, order.Id, &material.Id, 1, "100")
	addMaterialLine(t, db, order.Id, &orphan.Id, 5, "40")

	require.NoError(t, settlementLogic.CreateSettlements(order.Id, dec(t, "0.10")))

	settlements := orderSettlements(t, db, order.Id)
	require.Len(t, settlements, 1)
	assert.Equal(t, int64(7), settlements[0].SellerUserId)
	assert.True(t, settlements[0].GrossAmount.Equal(dec(t, "100")))
}

func TestCreateSettlementsMissingOrderIsNoop(t *testing.T) {
	db := newTestDB(t)
	settlementLogic := NewSettlementLogic(db)

	require.NoError(t, settlementLogic.CreateSettlements(424242, dec(t, "0.10")))

	var count int64
	require.NoError(t, db.Model(&model.SettlementModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateSettlementsNoResolvableLines(t *testing.T) {
	db := newTestDB(t)
	settlementLogic := NewSettlementLogic(db)

	orphan := model.MaterialModel{Name: "来历不明的面料"}
	require.NoError(t, db.Create(&orphan).Error)

	order := seedOrder(t, db, "")
	addMaterialLine(t, db, order.Id, &orphan.Id, 5, "40")

	require.NoError(t, settlementLogic.CreateSettlements(order.Id, dec(t, "0.10")))
	assert.Empty(t, orderSettlements(t, db, order.Id))
}

func TestCreateSettlementsRejectsInvalidRate(t *testing.T) {
	db := newTestDB(t)
	settlementLogic := NewSettlementLogic(db)

	assert.Error(t, settlementLogic.CreateSettlements(1, dec(t, "-0.10")))
	assert.Error(t, settlementLogic.CreateSettlements(1, dec(t, "1.50")))
}

func TestGetSettlementStats(t *testing.T) {
	db := newTestDB(t)
	settlementLogic := NewSettlementLogic(db)

	material := seedSupplierMaterial(t, db, 7)
	order := seedOrder(t, db, "")
	addMaterialLine(t, db, order.Id, &material.Id, 3, "100")
	require.NoError(t, settlementLogic.CreateSettlements(order.Id, dec(t, "0.10")))

	stats, err := settlementLogic.GetSettlementStats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats["pending_count"])
	assert.Equal(t, int64(0), stats["released_count"])
	assert.Equal(t, "270", stats["pending_amount"])
}
