package handler

import (
	"time"

	"github.com/tthaingoc/EcoFashion-sub003/internal/model"
)

// 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// 分页信息结构
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"totalPage"`
}

// 结算相关响应模型

// SettlementResponse 结算记录响应模型
type SettlementResponse struct {
	ID               int64      `json:"id"`
	OrderID          int64      `json:"orderId"`
	SellerUserID     int64      `json:"sellerUserId"`
	SellerType       string     `json:"sellerType"`
	GrossAmount      string     `json:"grossAmount"`
	CommissionRate   string     `json:"commissionRate"`
	CommissionAmount string     `json:"commissionAmount"`
	NetAmount        string     `json:"netAmount"`
	Status           string     `json:"status"`
	ReleasedAt       *time.Time `json:"releasedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// GetOrderSettlementsResponse 获取订单结算记录响应
type GetOrderSettlementsResponse struct {
	Settlements []SettlementResponse `json:"settlements"`
}

// GetSettlementStatsResponse 获取结算统计响应
type GetSettlementStatsResponse struct {
	Stats map[string]interface{} `json:"stats"`
}

// CreateSettlementsRequest 生成结算记录请求
type CreateSettlementsRequest struct {
	CommissionRate *float64 `json:"commissionRate" binding:"omitempty,gte=0,lte=1"`
}

// CapturePaymentRequest 支付完成回调请求
type CapturePaymentRequest struct {
	OrderID int64 `json:"orderId" binding:"required,gt=0"`
}

// CapturePaymentResponse 支付完成回调响应
type CapturePaymentResponse struct {
	EventID string `json:"eventId"`
}

// 钱包相关响应模型

// WalletResponse 钱包响应模型
type WalletResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WalletTransactionResponse 钱包流水响应模型
type WalletTransactionResponse struct {
	ID           int64     `json:"id"`
	WalletID     int64     `json:"walletId"`
	Type         string    `json:"type"`
	Amount       string    `json:"amount"`
	OrderID      *int64    `json:"orderId,omitempty"`
	SettlementID *int64    `json:"settlementId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GetWalletTransactionsResponse 获取钱包流水响应
type GetWalletTransactionsResponse struct {
	Transactions []WalletTransactionResponse `json:"transactions"`
	Pagination   Pagination                  `json:"pagination"`
}

// 转换函数

// ToSettlementResponse 将结算记录数据库模型转换为响应模型
func ToSettlementResponse(settlement *model.SettlementModel) SettlementResponse {
	return SettlementResponse{
		ID:               settlement.Id,
		OrderID:          settlement.OrderId,
		SellerUserID:     settlement.SellerUserId,
		SellerType:       settlement.SellerType,
		GrossAmount:      settlement.GrossAmount.String(),
		CommissionRate:   settlement.CommissionRate.String(),
		CommissionAmount: settlement.CommissionAmount.String(),
		NetAmount:        settlement.NetAmount.String(),
		Status:           settlement.Status,
		ReleasedAt:       settlement.ReleasedAt,
		CreatedAt:        settlement.CreatedAt,
	}
}

// ToSettlementResponseList 将结算记录数据库模型列表转换为响应模型列表
func ToSettlementResponseList(settlements []model.SettlementModel) []SettlementResponse {
	result := make([]SettlementResponse, len(settlements))
	for i, settlement := range settlements {
		result[i] = ToSettlementResponse(&settlement)
	}
	return result
}

// ToWalletResponse 将钱包数据库模型转换为响应模型
func ToWalletResponse(wallet *model.WalletModel) WalletResponse {
	return WalletResponse{
		ID:        wallet.Id,
		UserID:    wallet.UserId,
		Balance:   wallet.Balance.String(),
		CreatedAt: wallet.CreatedAt,
		UpdatedAt: wallet.UpdatedAt,
	}
}

// ToWalletTransactionResponse 将钱包流水数据库模型转换为响应模型
func ToWalletTransactionResponse(record *model.WalletTransactionModel) WalletTransactionResponse {
	return WalletTransactionResponse{
		ID:           record.Id,
		WalletID:     record.WalletId,
		Type:         record.Type,
		Amount:       record.Amount.String(),
		OrderID:      record.OrderId,
		SettlementID: record.SettlementId,
		CreatedAt:    record.CreatedAt,
	}
}

// ToWalletTransactionResponseList 将钱包流水数据库模型列表转换为响应模型列表
func ToWalletTransactionResponseList(records []model.WalletTransactionModel) []WalletTransactionResponse {
	result := make([]WalletTransactionResponse, len(records))
	for i, record := range records {
		result[i] = ToWalletTransactionResponse(&record)
	}
	return result
}
