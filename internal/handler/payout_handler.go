package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tthaingoc/EcoFashion-sub003/internal/config"
	"github.com/tthaingoc/EcoFashion-sub003/internal/logic"
	"gorm.io/gorm"
)

// PayoutHandler 放款处理器
type PayoutHandler struct {
	payoutLogic     *logic.PayoutLogic
	settlementLogic *logic.SettlementLogic
}

// NewPayoutHandler 创建放款处理器
func NewPayoutHandler(db *gorm.DB, cfg *config.Config) *PayoutHandler {
	return &PayoutHandler{
		payoutLogic:     logic.NewPayoutLogic(db, cfg),
		settlementLogic: logic.NewSettlementLogic(db),
	}
}

// ReleaseOrderPayouts 对单个订单放款
func (h *PayoutHandler) ReleaseOrderPayouts(c *gin.Context) {
	orderIDStr := c.Param("id")
	orderID, err := strconv.ParseInt(orderIDStr, 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的订单ID")
		return
	}

	if err := h.payoutLogic.ReleasePayouts(orderID); err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	// 放款结果通过结算记录状态反映，跳过的记录依然是 pending
	settlements, err := h.settlementLogic.GetOrderSettlements(orderID)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "放款完成", GetOrderSettlementsResponse{
		Settlements: ToSettlementResponseList(settlements),
	})
}

// ReleaseGroupPayouts 对订单组放款
func (h *PayoutHandler) ReleaseGroupPayouts(c *gin.Context) {
	groupID := c.Param("groupId")
	if groupID == "" {
		ErrorResponse(c, http.StatusBadRequest, "订单组ID不能为空")
		return
	}

	if err := h.payoutLogic.ReleasePayoutsForGroup(groupID); err != nil {
		// 组内部分订单可能已放款成功，调用方按结算记录状态核对
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "订单组放款完成", nil)
}
