package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tthaingoc/EcoFashion-sub003/internal/event"
)

// PaymentHandler 支付回调处理器
type PaymentHandler struct {
	monitor *event.PaymentMonitor
}

// NewPaymentHandler 创建支付回调处理器
func NewPaymentHandler(monitor *event.PaymentMonitor) *PaymentHandler {
	return &PaymentHandler{monitor: monitor}
}

// CapturePayment 支付完成回调，异步触发结算拆分
func (h *PaymentHandler) CapturePayment(c *gin.Context) {
	var req CapturePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	eventID, err := h.monitor.Publish(req.OrderID)
	if err != nil {
		if errors.Is(err, event.ErrQueueFull) {
			ErrorResponse(c, http.StatusServiceUnavailable, "事件队列已满，请稍后重试")
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusAccepted, "支付事件已接收", CapturePaymentResponse{EventID: eventID})
}
