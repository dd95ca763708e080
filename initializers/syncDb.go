package initializers

import (
	"log"

	"github.com/azimeazdhan1231/trynex-lifestyle-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.CustomOrder{},
	)
	log.Println("Database synced successfully.")
}
