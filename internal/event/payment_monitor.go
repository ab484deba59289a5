package event

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"
	"github.com/tthaingoc/EcoFashion-sub003/internal/config"
	"github.com/tthaingoc/EcoFashion-sub003/internal/logger"
	"github.com/tthaingoc/EcoFashion-sub003/internal/logic"
	"github.com/tthaingoc/EcoFashion-sub003/internal/model"
	"gorm.io/gorm"
)

// PaymentCapturedEvent 支付网关回调的支付完成事件
type PaymentCapturedEvent struct {
	EventId    string    `json:"event_id"`
	OrderId    int64     `json:"order_id"`
	CapturedAt time.Time `json:"captured_at"`
}

// ErrQueueFull 事件队列已满
var ErrQueueFull = errors.New("payment event queue is full")

const eventQueueSize = 256
const workerPoolSize = 8

// PaymentMonitor 支付事件监控器
// 支付完成事件进队列后由协程池消费：把订单标记为已支付，再触发结算拆分。
type PaymentMonitor struct {
	db              *gorm.DB
	cfg             *config.Config
	settlementLogic *logic.SettlementLogic
	pool            *ants.Pool
	events          chan PaymentCapturedEvent
	ctx             context.Context
	cancel          context.CancelFunc
}

// NewPaymentMonitor 创建支付事件监控器
func NewPaymentMonitor(db *gorm.DB, cfg *config.Config) *PaymentMonitor {
	ctx, cancel := context.WithCancel(context.Background())

	return &PaymentMonitor{
		db:              db,
		cfg:             cfg,
		settlementLogic: logic.NewSettlementLogic(db),
		events:          make(chan PaymentCapturedEvent, eventQueueSize),
		ctx:             ctx,
		cancel:          cancel,
	}
}

// Start 启动监控
func (m *PaymentMonitor) Start() error {
	logger.Info("Starting payment event monitor")

	pool, err := ants.NewPool(workerPoolSize)
	if err != nil {
		return err
	}
	m.pool = pool

	go m.loop()

	return nil
}

// Stop 停止监控
func (m *PaymentMonitor) Stop() {
	logger.Info("Stopping payment event monitor")
	m.cancel()
	if m.pool != nil {
		m.pool.Release()
	}
}

// Publish 投递一条支付完成事件，返回事件ID
func (m *PaymentMonitor) Publish(orderId int64) (string, error) {
	event := PaymentCapturedEvent{
		EventId:    uuid.NewString(),
		OrderId:    orderId,
		CapturedAt: time.Now(),
	}

	select {
	case m.events <- event:
		logger.Debug("Published payment event %s for order %d", event.EventId, orderId)
		return event.EventId, nil
	default:
		return "", ErrQueueFull
	}
}

// loop 消费循环
func (m *PaymentMonitor) loop() {
	for {
		select {
		case <-m.ctx.Done():
			logger.Info("Payment event monitor stopped")
			return
		case event := <-m.events:
			err := m.pool.Submit(func() {
				m.processEvent(event)
			})
			if err != nil {
				logger.Error("Failed to submit payment event %s to pool: %v", event.EventId, err)
			}
		}
	}
}

// processEvent 处理单条支付完成事件
func (m *PaymentMonitor) processEvent(event PaymentCapturedEvent) {
	logger.Info("Processing payment event %s for order %d", event.EventId, event.OrderId)

	// 标记订单已支付，已经是 paid 的订单不重复改支付时间
	res := m.db.Model(&model.OrderModel{}).
		Where("id = ? AND payment_status = ?", event.OrderId, model.PaymentStatusUnpaid).
		Updates(map[string]interface{}{
			"payment_status": string(model.PaymentStatusPaid),
			"paid_at":        event.CapturedAt,
		})
	if res.Error != nil {
		logger.Error("Failed to mark order %d paid: %v", event.OrderId, res.Error)
		return
	}

	// 触发结算拆分，CreateSettlements 自身幂等
	rate := decimal.NewFromFloat(m.cfg.Platform.CommissionRate)
	if err := m.settlementLogic.CreateSettlements(event.OrderId, rate); err != nil {
		logger.Error("Failed to create settlements for order %d: %v", event.OrderId, err)
	}
}
