package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tthaingoc/EcoFashion-sub003/internal/logic"
	"gorm.io/gorm"
)

// WalletHandler 钱包处理器
type WalletHandler struct {
	ledgerLogic *logic.LedgerLogic
}

// NewWalletHandler 创建钱包处理器
func NewWalletHandler(db *gorm.DB) *WalletHandler {
	return &WalletHandler{
		ledgerLogic: logic.NewLedgerLogic(db),
	}
}

// GetWalletByUser 按用户ID获取钱包
func (h *WalletHandler) GetWalletByUser(c *gin.Context) {
	userIDStr := c.Param("userId")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的用户ID")
		return
	}

	wallet, err := h.ledgerLogic.GetWalletByUserId(userID)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	if wallet == nil {
		ErrorResponse(c, http.StatusNotFound, "钱包不存在")
		return
	}

	SuccessResponse(c, http.StatusOK, "获取成功", ToWalletResponse(wallet))
}

// GetWalletTransactions 获取钱包流水
func (h *WalletHandler) GetWalletTransactions(c *gin.Context) {
	walletIDStr := c.Param("id")
	walletID, err := strconv.ParseInt(walletIDStr, 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的钱包ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	records, total, err := h.ledgerLogic.GetWalletTransactions(walletID, page, pageSize)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "获取成功", GetWalletTransactionsResponse{
		Transactions: ToWalletTransactionResponseList(records),
		Pagination: Pagination{
			Page:      page,
			PageSize:  pageSize,
			Total:     total,
			TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
		},
	})
}
