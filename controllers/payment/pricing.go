package payment

import (
	"errors"

	"lacak/models"

	"gorm.io/gorm"
)

type packageRule struct {
	Quantity          int64
	Amount            int64
	FirstPurchaseOnly bool
}

// Paket token dengan harga spesial. Di luar daftar ini berlaku harga
// normal 1000 per token.
var tokenPackages = []packageRule{
	{Quantity: 5, Amount: 5000, FirstPurchaseOnly: true},
	{Quantity: 10, Amount: 10000},
	{Quantity: 50, Amount: 45000},
	{Quantity: 100, Amount: 90000},
}

const tokenUnitPrice = 1000

// validatePackage mengecek kombinasi (qty, amount) terhadap daftar paket.
// Paket first-purchase hanya sah kalau user belum pernah punya order paid;
// flag dari client tidak pernah dipercaya, selalu dicek ulang ke database.
// Kombinasi yang cocok dengan paket bernama tidak jatuh ke aturan harga
// normal lagi.
func validatePackage(db *gorm.DB, userID uint, qty, amount int64) bool {
	for _, pkg := range tokenPackages {
		if pkg.Quantity == qty && pkg.Amount == amount {
			if !pkg.FirstPurchaseOnly {
				return true
			}
			return isFirstPurchase(db, userID)
		}
	}

	return qty >= 1 && amount == qty*tokenUnitPrice
}

func isFirstPurchase(db *gorm.DB, userID uint) bool {
	var paid models.TokenOrder
	err := db.Where("user_id = ? AND status = ?", userID, models.OrderStatusPaid).First(&paid).Error
	return errors.Is(err, gorm.ErrRecordNotFound)
}
