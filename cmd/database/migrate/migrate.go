package migration

import (
	"fmt"
	"log"

	"github.com/EdoFendy/lanadot-restaurant/entities"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// The six menu sections of the site, in display order. Seeded once; extra
// categories can exist but are never created through the API.
var defaultCategories = []entities.Category{
	{Name: "Antipasti", DisplayOrder: 1},
	{Name: "Primi", DisplayOrder: 2},
	{Name: "Carne", DisplayOrder: 3},
	{Name: "Pesce e Crudité", DisplayOrder: 4},
	{Name: "Dolci", DisplayOrder: 5},
	{Name: "Vini", DisplayOrder: 6},
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuItem{}); err != nil {
		log.Fatalf("Error migrating menu item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuItemImage{}); err != nil {
		log.Fatalf("Error migrating menu item image database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.AdminUser{}); err != nil {
		log.Fatalf("Error migrating admin user database: %v", err)
		return err
	}

	if err := seed(db); err != nil {
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

func seed(db *gorm.DB) error {
	for _, category := range defaultCategories {
		var existing entities.Category
		if err := db.Where(entities.Category{Name: category.Name}).
			Attrs(entities.Category{DisplayOrder: category.DisplayOrder}).
			FirstOrCreate(&existing).Error; err != nil {
			return err
		}
	}

	// The login path checks fixed credentials; the seeded row keeps the
	// admin_users table populated for an eventual real credential store.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	var admin entities.AdminUser
	return db.Where(entities.AdminUser{Username: "admin"}).
		Attrs(entities.AdminUser{PasswordHash: string(hash)}).
		FirstOrCreate(&admin).Error
}
