// Package seed creates the default admin account and demo catalog on first
// start. Both steps are gated on zero counts, so re-running is a no-op.
package seed

import (
	"fmt"
	"log/slog"

	"github.com/localsearch/backend/internal/models"
	"github.com/localsearch/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@localsearch.com"
	defaultAdminPassword = "admin123"
)

// Run seeds the default admin user and the demo categories/businesses.
func Run(users repository.UserRepository, categories repository.CategoryRepository, businesses repository.BusinessRepository) error {
	if err := seedAdmin(users); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	if err := seedCatalog(categories, businesses); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}

func seedAdmin(users repository.UserRepository) error {
	count, err := users.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: defaultAdminUsername,
		Email:    defaultAdminEmail,
		Password: string(hash),
		Role:     models.RoleSuperAdmin,
		Enabled:  true,
	}
	if err := users.Create(&admin); err != nil {
		return err
	}

	slog.Info("default admin user created", "username", defaultAdminUsername)
	return nil
}

func seedCatalog(categories repository.CategoryRepository, businesses repository.BusinessRepository) error {
	count, err := categories.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurants := models.Category{Name: "Restaurants", IconURL: "restaurant"}
	services := models.Category{Name: "Services", IconURL: "build"}
	homeServices := models.Category{Name: "Home Services", IconURL: "home_repair_service"}
	for _, c := range []*models.Category{&restaurants, &services, &homeServices} {
		if err := categories.Create(c); err != nil {
			return err
		}
	}

	demo := []models.Business{
		{
			Name:          "Spicy Bites",
			CategoryID:    restaurants.ID,
			City:          "Indore",
			Address:       "123 Sarafa Bazaar, MG Road",
			ContactNumber: "+91 98765 43210",
			Rating:        4.5,
			ReviewCount:   120,
			Verified:      true,
			Description:   "Best spicy food in town. Authentic Indian cuisine with mind-blowing flavors.",
			Image:         restaurantImage,
		},
		{
			Name:          "The Italian Corner",
			CategoryID:    restaurants.ID,
			City:          "Bhopal",
			Address:       "45 New Market, MP Nagar",
			ContactNumber: "+91 98765 43211",
			Rating:        4.7,
			ReviewCount:   95,
			Verified:      true,
			Description:   "Authentic Italian pizzas and pastas. Wood-fired oven specialties.",
			Image:         restaurantImage,
		},
		{
			Name:          "Quick Fix Plumbing",
			CategoryID:    homeServices.ID,
			City:          "Indore",
			Address:       "12 Vijay Nagar, AB Road",
			ContactNumber: "+91 98765 43212",
			Rating:        4.8,
			ReviewCount:   200,
			Verified:      true,
			Description:   "Expert plumber for leak repairs, pipe fitting, bathroom installations. 24/7 emergency service available.",
			Image:         plumberImage,
		},
		{
			Name:          "Jabalpur Plumbing Solutions",
			CategoryID:    homeServices.ID,
			City:          "Jabalpur",
			Address:       "78 Wright Town, Napier Town",
			ContactNumber: "+91 98765 43213",
			Rating:        4.6,
			ReviewCount:   150,
			Verified:      true,
			Description:   "Professional plumbing services. Drain cleaning, water heater installation, and more.",
			Image:         plumberImage,
		},
		{
			Name:          "Bright Spark Electricians",
			CategoryID:    homeServices.ID,
			City:          "Bhopal",
			Address:       "34 Arera Colony, Zone 1",
			ContactNumber: "+91 98765 43214",
			Rating:        4.9,
			ReviewCount:   180,
			Verified:      true,
			Description:   "Licensed electrician for wiring, repairs, installations. Fast and reliable service.",
			Image:         electricianImage,
		},
		{
			Name:          "Power Solutions Electric",
			CategoryID:    homeServices.ID,
			City:          "Indore",
			Address:       "56 Palasia Square, Treasure Island",
			ContactNumber: "+91 98765 43215",
			Rating:        4.7,
			ReviewCount:   145,
			Verified:      true,
			Description:   "Expert electrician services. Panel upgrades, lighting installation, emergency repairs.",
			Image:         electricianImage,
		},
		{
			Name:          "City Electric Works",
			CategoryID:    homeServices.ID,
			City:          "Jabalpur",
			Address:       "89 Civic Center, Russell Chowk",
			ContactNumber: "+91 98765 43216",
			Rating:        4.5,
			ReviewCount:   110,
			Verified:      false,
			Description:   "Affordable electrician for home and office. All types of electrical work.",
			Image:         electricianImage,
		},
		{
			Name:          "Spotless Cleaning Services",
			CategoryID:    homeServices.ID,
			City:          "Bhopal",
			Address:       "23 Koh-e-Fiza, Bhopal",
			ContactNumber: "+91 98765 43217",
			Rating:        4.6,
			ReviewCount:   95,
			Verified:      true,
			Description:   "Professional cleaning and sweeping services. Deep cleaning, regular maintenance, move-in/out cleaning.",
			Image:         cleaningImage,
		},
		{
			Name:          "Clean Pro Services",
			CategoryID:    homeServices.ID,
			City:          "Indore",
			Address:       "67 South Tukoganj, Indore",
			ContactNumber: "+91 98765 43218",
			Rating:        4.4,
			ReviewCount:   78,
			Verified:      true,
			Description:   "Expert sweeper and cleaning staff. Daily, weekly, or monthly plans available.",
			Image:         cleaningImage,
		},
		{
			Name:          "AC Cool Care",
			CategoryID:    services.ID,
			City:          "Jabalpur",
			Address:       "45 Madan Mahal, Jabalpur",
			ContactNumber: "+91 98765 43219",
			Rating:        4.8,
			ReviewCount:   165,
			Verified:      true,
			Description:   "AC repair, servicing, and installation. All brands supported.",
			Image:         serviceImage,
		},
		{
			Name:          "Handyman Plus",
			CategoryID:    services.ID,
			City:          "Indore",
			Address:       "90 Rau, Ring Road",
			ContactNumber: "+91 98765 43220",
			Rating:        4.5,
			ReviewCount:   88,
			Verified:      false,
			Description:   "All-in-one handyman service. Carpentry, painting, furniture assembly, and minor repairs.",
			Image:         serviceImage,
		},
	}

	for i := range demo {
		if err := businesses.Create(&demo[i]); err != nil {
			return err
		}
	}

	slog.Info("demo catalog seeded", "categories", 3, "businesses", len(demo))
	return nil
}
