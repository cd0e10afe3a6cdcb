package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tipdesk/models"
	"tipdesk/store"
	"tipdesk/utils"
)

type UserController struct {
	Store  *store.Store
	JWTTTL time.Duration
}

func NewUserController(s *store.Store, ttl time.Duration) *UserController {
	return &UserController{Store: s, JWTTTL: ttl}
}

type registerInput struct {
	HotelName string `json:"hotel_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
}

// Register creates the hotel organization together with its admin user and
// seeds the onboarding record at the registration step.
func (uc *UserController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid registration data: "+err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := uc.Store.Users.ByEmail(email); err == nil {
		utils.RespondError(c, http.StatusConflict, "Email is already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to hash password: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to register")
		return
	}

	hotel := models.Hotel{
		OrgID:     "HTL-" + strings.ToUpper(uuid.NewString()[:8]),
		HotelName: input.HotelName,
		Email:     email,
		Phone:     input.Phone,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Status:    models.HotelStatusPending,
	}
	if err := uc.Store.Hotels.Add(&hotel); err != nil {
		utils.ErrorLogger.Printf("Failed to create hotel: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to register")
		return
	}

	user := models.User{
		Email:    email,
		Password: string(hashed),
		Role:     models.UserRoleAdmin,
		HotelID:  &hotel.ID,
	}
	if err := uc.Store.Users.Add(&user); err != nil {
		utils.ErrorLogger.Printf("Failed to create admin user: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to register")
		return
	}

	// Registration itself is the first completed onboarding step.
	if _, err := uc.Store.Onboarding.Get(hotel.ID); err != nil {
		utils.ErrorLogger.Printf("Failed to seed onboarding for hotel %d: %v", hotel.ID, err)
	}

	token, err := utils.GenerateToken(user.ID, hotel.ID, user.Role, uc.JWTTTL)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to issue token: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to register")
		return
	}

	utils.InfoLogger.Printf("Registered hotel %s (%s)", hotel.OrgID, hotel.HotelName)
	utils.RespondJSON(c, http.StatusCreated, "Registration successful", gin.H{
		"token": token,
		"hotel": hotel,
		"user":  user,
	})
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (uc *UserController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := uc.Store.Users.ByEmail(strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	var hotelID uint
	if user.HotelID != nil {
		hotelID = *user.HotelID
		hotel, err := uc.Store.Hotels.Get(hotelID)
		if err == nil && hotel.Status == models.HotelStatusSuspended {
			utils.RespondError(c, http.StatusForbidden, "This hotel account is suspended")
			return
		}
		if err == nil && hotel.Status == models.HotelStatusDeactivated {
			utils.RespondError(c, http.StatusForbidden, "This hotel account is deactivated")
			return
		}
	}

	token, err := utils.GenerateToken(user.ID, hotelID, user.Role, uc.JWTTTL)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to issue token: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	utils.InfoLogger.Printf("User %s logged in", user.Email)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

func (uc *UserController) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		utils.RespondError(c, http.StatusBadRequest, "Missing bearer token")
		return
	}
	utils.BlacklistToken(token, uc.JWTTTL)
	utils.RespondJSON(c, http.StatusOK, "Logout successful", nil)
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	user, err := uc.Store.Users.Get(userID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "User not found")
		return
	}

	resp := gin.H{"user": user}
	if user.HotelID != nil {
		if hotel, err := uc.Store.Hotels.Get(*user.HotelID); err == nil {
			resp["hotel"] = hotel
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Profile retrieved", resp)
}
