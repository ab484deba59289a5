package task

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/tthaingoc/EcoFashion-sub003/internal/config"
	"github.com/tthaingoc/EcoFashion-sub003/internal/logger"
	"github.com/tthaingoc/EcoFashion-sub003/internal/model"
	"gorm.io/gorm"
)

// PendingSettlementJob 滞留结算记录巡检任务
// 只负责发现和上报超龄的 pending 结算记录（比如托管余额一直不够、
// 卖家一直没开钱包的情况），不会自动放款。
type PendingSettlementJob struct {
	db     *gorm.DB
	config *config.Config
}

// NewPendingSettlementJob 创建滞留结算记录巡检任务
func NewPendingSettlementJob(db *gorm.DB, cfg *config.Config) *PendingSettlementJob {
	return &PendingSettlementJob{
		db:     db,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *PendingSettlementJob) GetName() string {
	return "pending_settlement_watchdog"
}

// GetSchedule 获取调度配置
func (j *PendingSettlementJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.Interval) * time.Second)
}

// stuckOrder 按订单聚合的滞留情况
type stuckOrder struct {
	OrderId int64
	Count   int64
	Oldest  time.Time
}

// Execute 执行任务
func (j *PendingSettlementJob) Execute() {
	cutoff := time.Now().Add(-time.Duration(j.config.Task.PendingMaxAge) * time.Second)

	var stuck []stuckOrder
	err := j.db.Model(&model.SettlementModel{}).
		Select("order_id, COUNT(*) as count, MIN(created_at) as oldest").
		Where("status = ? AND created_at < ?", model.SettlementStatusPending, cutoff).
		Group("order_id").
		Scan(&stuck).Error
	if err != nil {
		logger.Error("Pending settlement watchdog query failed: %v", err)
		return
	}

	if len(stuck) == 0 {
		logger.Debug("Pending settlement watchdog: nothing stuck")
		return
	}

	for _, s := range stuck {
		logger.Warn("Order %d has %d settlements pending since %s",
			s.OrderId, s.Count, s.Oldest.Format(time.RFC3339))
	}
}
