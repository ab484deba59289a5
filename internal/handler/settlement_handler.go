package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tthaingoc/EcoFashion-sub003/internal/config"
	"github.com/tthaingoc/EcoFashion-sub003/internal/logic"
	"gorm.io/gorm"
)

// SettlementHandler 结算处理器
type SettlementHandler struct {
	settlementLogic *logic.SettlementLogic
	cfg             *config.Config
}

// NewSettlementHandler 创建结算处理器
func NewSettlementHandler(db *gorm.DB, cfg *config.Config) *SettlementHandler {
	return &SettlementHandler{
		settlementLogic: logic.NewSettlementLogic(db),
		cfg:             cfg,
	}
}

// CreateSettlements 为订单生成结算记录
func (h *SettlementHandler) CreateSettlements(c *gin.Context) {
	orderIDStr := c.Param("id")
	orderID, err := strconv.ParseInt(orderIDStr, 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的订单ID")
		return
	}

	var req CreateSettlementsRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	rate := decimal.NewFromFloat(h.cfg.Platform.CommissionRate)
	if req.CommissionRate != nil {
		rate = decimal.NewFromFloat(*req.CommissionRate)
	}

	if err := h.settlementLogic.CreateSettlements(orderID, rate); err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	settlements, err := h.settlementLogic.GetOrderSettlements(orderID)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "结算记录已生成", GetOrderSettlementsResponse{
		Settlements: ToSettlementResponseList(settlements),
	})
}

// GetOrderSettlements 获取订单结算记录
func (h *SettlementHandler) GetOrderSettlements(c *gin.Context) {
	orderIDStr := c.Param("id")
	orderID, err := strconv.ParseInt(orderIDStr, 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的订单ID")
		return
	}

	settlements, err := h.settlementLogic.GetOrderSettlements(orderID)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "获取成功", GetOrderSettlementsResponse{
		Settlements: ToSettlementResponseList(settlements),
	})
}

// GetSettlementStats 获取结算统计信息
func (h *SettlementHandler) GetSettlementStats(c *gin.Context) {
	stats, err := h.settlementLogic.GetSettlementStats()
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "获取成功", GetSettlementStatsResponse{Stats: stats})
}
