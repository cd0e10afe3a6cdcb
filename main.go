package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"tipdesk/config"
	"tipdesk/models"
	"tipdesk/router"
	"tipdesk/store"
	"tipdesk/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		utils.InitLogger("info")
		utils.ErrorLogger.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitLogger(cfg.App.LogLevel)
	if cfg.JWT.Secret == "" {
		utils.ErrorLogger.Fatalf("TIPDESK_JWT_SECRET is not set")
	}
	utils.InitJWT(cfg.JWT.Secret)

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := store.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate database: %v", err)
	}
	utils.InfoLogger.Println("Database migrated")

	if err := seedSuperAdmin(store.New(db)); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed super admin: %v", err)
	}

	r := router.SetupRouter(db, cfg)
	utils.InfoLogger.Printf("Listening on :%s", cfg.App.Port)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		utils.ErrorLogger.Fatalf("Server stopped: %v", err)
	}
}

// seedSuperAdmin creates the platform operator account from the
// environment on first boot. Without the variables set nothing happens.
func seedSuperAdmin(s *store.Store) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("TIPDESK_SUPERADMIN_EMAIL")))
	password := os.Getenv("TIPDESK_SUPERADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	if _, err := s.Users.ByEmail(email); err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{
		Email:    email,
		Password: string(hashed),
		Role:     models.UserRoleSuperAdmin,
	}
	if err := s.Users.Add(&user); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded super admin %s", email)
	return nil
}
