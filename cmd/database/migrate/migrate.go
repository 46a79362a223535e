package migration

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kolomarket-backend/domain"
	"kolomarket-backend/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Coupon{}); err != nil {
		log.Fatalf("Error migrating coupon database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ProviderFee{}); err != nil {
		log.Fatalf("Error migrating provider fee database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Order{}); err != nil {
		log.Fatalf("Error migrating order database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PointsTransaction{}); err != nil {
		log.Fatalf("Error migrating points transaction database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PointsRequest{}); err != nil {
		log.Fatalf("Error migrating points request database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PaymentTransaction{}); err != nil {
		log.Fatalf("Error migrating payment transaction database: %v", err)
		return err
	}

	if err := seedCoupons(db); err != nil {
		return err
	}
	if err := seedFeeSchedule(db); err != nil {
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

func intPtr(v int) *int { return &v }

func seedCoupons(db *gorm.DB) error {
	coupons := []entities.Coupon{
		{
			Code:            "BASIC5",
			DiscountPercent: 5,
			ExpiryDate:      time.Date(2027, 12, 31, 23, 59, 59, 0, time.UTC),
			IsActive:        true,
		},
		{
			Code:              "PREMIUM20",
			DiscountPercent:   20,
			ExpiryDate:        time.Date(2027, 12, 31, 23, 59, 59, 0, time.UTC),
			MinPurchasePoints: intPtr(100),
			MaxDiscountPoints: intPtr(500),
			RequiresPremium:   true,
			IsActive:          true,
		},
		{
			Code:                  "FIDELE10",
			DiscountPercent:       10,
			ExpiryDate:            time.Date(2027, 12, 31, 23, 59, 59, 0, time.UTC),
			MinUserLifetimePoints: intPtr(5000),
			IsActive:              true,
		},
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoNothing: true,
	}).Create(&coupons).Error
}

// seedFeeSchedule loads the flat FCFA fee bands the Mobile Money operators
// publish for merchant payments.
func seedFeeSchedule(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.ProviderFee{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	fees := []entities.ProviderFee{
		{Provider: domain.ProviderMTNMomo, MinAmountFiat: 0, MaxAmountFiat: 5000, FeeFiat: 50, IsActive: true},
		{Provider: domain.ProviderMTNMomo, MinAmountFiat: 5000.01, MaxAmountFiat: 100000, FeeFiat: 175, IsActive: true},
		{Provider: domain.ProviderMTNMomo, MinAmountFiat: 100000.01, MaxAmountFiat: 500000, FeeFiat: 375, IsActive: true},
		{Provider: domain.ProviderMoovMoney, MinAmountFiat: 0, MaxAmountFiat: 40000, FeeFiat: 100, IsActive: true},
		{Provider: domain.ProviderMoovMoney, MinAmountFiat: 40000.01, MaxAmountFiat: 200000, FeeFiat: 250, IsActive: true},
		{Provider: domain.ProviderCeltiisCash, MinAmountFiat: 0, MaxAmountFiat: 100000, FeeFiat: 150, IsActive: true},
	}

	return db.Create(&fees).Error
}
