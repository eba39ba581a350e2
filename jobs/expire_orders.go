package jobs

import (
	"log"
	"time"

	"lacak/database"
	"lacak/models"
	tasks "lacak/task"
)

func StartOrderExpiryScheduler() {
	tickerExpire := time.NewTicker(1 * time.Minute)
	go func() {
		for {
			<-tickerExpire.C
			ExpireOverdueOrders()
		}
	}()

	tickerCleanup := time.NewTicker(1 * time.Hour)
	go func() {
		for {
			<-tickerCleanup.C
			tasks.CleanupExpiredSessions()
		}
	}()
}

// ExpireOverdueOrders menandai order pending yang lewat batas waktu bayar.
// Guard status = pending memastikan order yang keburu paid tidak tersentuh.
func ExpireOverdueOrders() {
	result := database.DB.Model(&models.TokenOrder{}).
		Where("status = ? AND payment_expired_at < ?", models.OrderStatusPending, time.Now()).
		Update("status", models.OrderStatusExpired)

	if result.Error != nil {
		log.Println("❌ Failed to expire overdue orders:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Marked %d overdue orders as expired\n", result.RowsAffected)
	}
}
