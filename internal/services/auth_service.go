package services

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/finesse-lifestyle/storefront-api/internal/config"
	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidContact     = errors.New("invalid contact number")
	ErrContactTaken       = errors.New("contact already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid contact or password")
	ErrNotCustomer        = errors.New("please login with a customer account")
	ErrAccountInactive    = errors.New("account verification required")
	ErrOtpLocked          = errors.New("otp has been locked")
	ErrInvalidCode        = errors.New("invalid code")
)

// Bangladeshi mobile format, e.g. 01712345678.
var contactPattern = regexp.MustCompile(`^[0][1][3-9][0-9]{8}$`)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
	sms SMSSender
}

func NewAuthService(db *gorm.DB, cfg *config.Config, sms SMSSender) *AuthService {
	return &AuthService{db: db, cfg: cfg, sms: sms}
}

// Register creates an inactive user plus its customer profile, then issues
// an activation code. An SMS gateway failure does not fail registration.
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if !contactPattern.MatchString(req.Contact) {
		return nil, ErrInvalidContact
	}
	if req.Name == "" || len(req.Password) < 6 {
		return nil, errors.New("name required and password must be at least 6 characters")
	}

	var existing models.User
	if err := s.db.Where("contact = ?", req.Contact).First(&existing).Error; err == nil {
		return nil, ErrContactTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Contact:  req.Contact,
		Email:    req.Email,
		Password: string(hash),
		UserType: models.UserTypeCustomer,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return s.ensureCustomer(tx, &user)
	})
	if err != nil {
		return nil, err
	}

	if err := s.SendActivationCode(req.Contact); err != nil {
		// The account exists either way; the client can re-request a code.
		slog.Error("activation code dispatch failed", "error", err, "action", "register")
	}

	return &user, nil
}

// Login validates credentials and returns the user plus a signed JWT. An
// inactive account triggers a fresh activation code and fails with
// ErrAccountInactive.
func (s *AuthService) Login(req *dto.LoginRequest) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("contact = ?", req.Contact).First(&user).Error; err != nil {
		return nil, "", ErrUserNotFound
	}

	if user.UserType != models.UserTypeCustomer {
		return nil, "", ErrNotCustomer
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsActive {
		if err := s.SendActivationCode(user.Contact); err != nil {
			slog.Error("activation code dispatch failed", "error", err, "action", "login")
		}
		return nil, "", ErrAccountInactive
	}

	if err := s.ensureCustomer(s.db, &user); err != nil {
		return nil, "", err
	}
	s.db.Preload("Customer").First(&user, "id = ?", user.ID)

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// SendActivationCode issues an OTP for the contact. Issuance is throttled:
// once the contact has requested 3 codes without consuming one, further
// requests fail with ErrOtpLocked. The code row is persisted before
// dispatch, so a gateway failure leaves a usable code behind.
func (s *AuthService) SendActivationCode(contact string) error {
	return s.issueCode(contact, func(token string) string {
		return fmt.Sprintf("Your Finesse OTP is %s", token)
	})
}

// SendPasswordResetCode issues a reset code; same token table and throttle
// as activation.
func (s *AuthService) SendPasswordResetCode(contact string) error {
	return s.issueCode(contact, func(token string) string {
		return fmt.Sprintf("Your password reset code is: %s. Please use this code to reset your password.", token)
	})
}

func (s *AuthService) issueCode(contact string, message func(token string) string) error {
	var user models.User
	if err := s.db.Where("contact = ?", contact).First(&user).Error; err != nil {
		return ErrUserNotFound
	}
	if user.OtpCount >= 3 {
		return ErrOtpLocked
	}

	token, err := NumericToken(6)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// One live code per contact: replace any prior token.
		if err := tx.Where("contact = ?", contact).Delete(&models.OTPToken{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.OTPToken{Contact: contact, Token: token}).Error; err != nil {
			return err
		}
		// Atomic increment; the row lock prevents lost updates under
		// concurrent issuance.
		return tx.Model(&models.User{}).
			Where("contact = ?", contact).
			UpdateColumn("otp_count", gorm.Expr("otp_count + 1")).Error
	})
	if err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	if err := s.sms.Send(contact, message(token)); err != nil {
		slog.Error("sms dispatch failed", "error", err, "action", "issue_code")
		return err
	}
	return nil
}

// ActivateAccount consumes a (contact, token) pair: the code is single use
// and deleted on match. Activation flips is_active and clears the OTP
// throttle counter.
func (s *AuthService) ActivateAccount(contact, token string) (*models.User, string, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("contact = ? AND token = ?", contact, token).Delete(&models.OTPToken{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInvalidCode
		}
		return tx.Model(&models.User{}).
			Where("contact = ?", contact).
			Updates(map[string]interface{}{"is_active": true, "otp_count": 0}).Error
	})
	if err != nil {
		return nil, "", err
	}

	var user models.User
	if err := s.db.Preload("Customer").Where("contact = ?", contact).First(&user).Error; err != nil {
		return nil, "", ErrUserNotFound
	}

	jwtToken, err := s.GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}

	if err := s.sms.Send(contact, "Welcome to our Finesse family! Thanks for signing up. Happy shopping!"); err != nil {
		slog.Error("welcome sms failed", "error", err, "action", "activate_account")
	}

	return &user, jwtToken, nil
}

// ResetPassword consumes a reset code and re-hashes the password.
func (s *AuthService) ResetPassword(req *dto.ResetPasswordRequest) error {
	if len(req.NewPassword) < 6 {
		return errors.New("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("contact = ? AND token = ?", req.Contact, req.Token).Delete(&models.OTPToken{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInvalidCode
		}
		return tx.Model(&models.User{}).
			Where("contact = ?", req.Contact).
			Updates(map[string]interface{}{"password": string(hash), "otp_count": 0}).Error
	})
}

func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"contact":   user.Contact,
		"user_type": user.UserType,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ensureCustomer lazily creates the customer profile attached to a user.
func (s *AuthService) ensureCustomer(db *gorm.DB, user *models.User) error {
	var customer models.Customer
	err := db.Where("user_id = ?", user.ID).First(&customer).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	customer = models.Customer{
		ID:           uuid.New(),
		UserID:       user.ID,
		CustomerName: user.Name,
		Contact:      user.Contact,
		Email:        user.Email,
	}
	if err := db.Create(&customer).Error; err != nil {
		return fmt.Errorf("failed to create customer profile: %w", err)
	}
	return nil
}
