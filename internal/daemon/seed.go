package daemon

import (
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/config"
	"github.com/rupachimney/website/internal/db/models"
)

// defaultAdminUsername is the login of the initial back-office account.
const defaultAdminUsername = "sukesh2294@gmail.com"

func seed(_ *config.Config, db *gorm.DB) {
	// Seed initial data on first start

	var count int64

	db.Model(&models.Admin{}).Where("username = ?", defaultAdminUsername).Count(&count)
	if count == 0 {
		db.Create(
			&models.Admin{
				Username:     defaultAdminUsername,
				PasswordHash: models.HashPassword("sky123"),
			},
		)
	}

	db.Model(&models.Service{}).Count(&count)
	if count == 0 {
		services := defaultServices()
		db.Create(&services)
	}

	db.Model(&models.Setting{}).Count(&count)
	if count == 0 {
		settings := defaultSettings()
		db.Create(&settings)
	}
}

func defaultServices() []models.Service {
	return []models.Service{
		{
			Title:        "1 Number Bricks",
			Description:  "High-quality red bricks perfect for construction",
			Price:        "₹ 9/Piece",
			Features:     "Durable, Weather resistant, Standard size",
			Image:        "brick1.jpg",
			IsActive:     true,
			DisplayOrder: 1,
		},
		{
			Title:        "2 Number Bricks",
			Description:  "Premium quality bricks for superior construction",
			Price:        "₹ 12/Piece",
			Features:     "High strength, Perfect for load bearing, Long lasting",
			Image:        "brick2.jpg",
			IsActive:     true,
			DisplayOrder: 2,
		},
		{
			Title:        "Piket Red Brick",
			Description:  "Clay piket bricks for decorative purposes",
			Price:        "₹ 8.50/Piece",
			Features:     "Aesthetic appeal, Smooth finish, Decorative",
			Image:        "piket_brick.jpg",
			IsActive:     true,
			DisplayOrder: 3,
		},
		{
			Title:        "Industrial Chimneys",
			Description:  "Custom industrial chimneys for factories",
			Price:        "Contact for Price",
			Features:     "Custom sizes, High temperature resistance, Durable",
			Image:        "chimney.jpg",
			IsActive:     true,
			DisplayOrder: 4,
		},
	}
}

func defaultSettings() []models.Setting {
	return []models.Setting{
		{Key: "company_name", Value: "Rupa Chimney"},
		{Key: "company_phone", Value: "+91-6299924802, +91-7549149491"},
		{Key: "company_email", Value: "rupachimney@gmail.com"},
		{Key: "company_address", Value: "Nawada Road, Sikandra, Jamui, Bihar - 811315"},
		{Key: "company_description", Value: "Leading manufacturer of high-quality bricks and industrial chimneys since 1998"},
		{Key: "whatsapp_number", Value: "917549149491"},
		{Key: "facebook_url", Value: "#"},
		{Key: "twitter_url", Value: "#"},
		{Key: "instagram_url", Value: "#"},
		{Key: "linkedin_url", Value: "#"},
		{Key: "youtube_url", Value: "#"},
	}
}
