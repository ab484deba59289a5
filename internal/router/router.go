package router

import (
	"github.com/gin-gonic/gin"
	"github.com/tthaingoc/EcoFashion-sub003/internal/config"
	"github.com/tthaingoc/EcoFashion-sub003/internal/event"
	"github.com/tthaingoc/EcoFashion-sub003/internal/handler"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, monitor *event.PaymentMonitor, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "ecofashion-settlement-service",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 支付回调
		paymentHandler := handler.NewPaymentHandler(monitor)
		v1.POST("/payments/capture", paymentHandler.CapturePayment)

		// 结算相关路由
		settlementHandler := handler.NewSettlementHandler(db, cfg)
		payoutHandler := handler.NewPayoutHandler(db, cfg)
		orders := v1.Group("/orders")
		{
			orders.POST("/:id/settlements", settlementHandler.CreateSettlements)
			orders.GET("/:id/settlements", settlementHandler.GetOrderSettlements)
			orders.POST("/:id/payouts", payoutHandler.ReleaseOrderPayouts)
		}
		v1.POST("/order-groups/:groupId/payouts", payoutHandler.ReleaseGroupPayouts)
		v1.GET("/settlements/stats", settlementHandler.GetSettlementStats)

		// 钱包相关路由
		walletHandler := handler.NewWalletHandler(db)
		wallets := v1.Group("/wallets")
		{
			wallets.GET("/user/:userId", walletHandler.GetWalletByUser)
			wallets.GET("/:id/transactions", walletHandler.GetWalletTransactions)
		}
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
