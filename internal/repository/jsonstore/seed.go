package jsonstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/pkg/security"
)

// defaultCatalog is the fixed pharmacy catalog written at first boot.
var defaultCatalog = []model.Medicine{
	{ID: "1", Name: "Paracetamol 500mg", Price: 50, Stock: 100, Pharmacy: "MediCare Pharmacy"},
	{ID: "2", Name: "Amoxicillin 250mg", Price: 120, Stock: 50, Pharmacy: "HealthPlus"},
	{ID: "3", Name: "Ibuprofen 400mg", Price: 80, Stock: 75, Pharmacy: "City Pharmacy"},
	{ID: "4", Name: "Aspirin 75mg", Price: 40, Stock: 200, Pharmacy: "MediCare Pharmacy"},
	{ID: "5", Name: "Cetirizine 10mg", Price: 60, Stock: 90, Pharmacy: "HealthPlus"},
}

// EnsureSeedData writes the medicine catalog when the collection is empty and
// creates the default admin account when it does not exist.
func EnsureSeedData(ctx context.Context, store *Store, adminEmail, adminPassword string, hasher security.PasswordHasher) error {
	medicineRepo := NewMedicineRepository(store)
	medicines, err := medicineRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(medicines) == 0 {
		if err := medicineRepo.Replace(ctx, defaultCatalog); err != nil {
			return err
		}
		log.Info().Int("medicines", len(defaultCatalog)).Msg("seeded pharmacy catalog")
	}

	userRepo := NewUserRepository(store)
	if _, err := userRepo.GetByEmail(ctx, adminEmail); err == nil {
		return nil
	}

	hash, err := hasher.Hash(adminPassword)
	if err != nil {
		return err
	}
	admin := &model.User{
		ID:           uuid.New(),
		Email:        adminEmail,
		PasswordHash: hash,
		Name:         "Admin User",
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}
	log.Info().Str("email", adminEmail).Msg("created default admin account")
	return nil
}
