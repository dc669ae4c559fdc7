package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/glowishii/ecommerce-api/logger"
	"github.com/glowishii/ecommerce-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TTL is how long an issued code stays valid.
const TTL = 5 * time.Minute

// Mailer delivers a verification code out-of-band.
type Mailer interface {
	SendOTP(email, code string) error
}

// Service issues and verifies email verification codes. At most one live
// code exists per email; sending again overwrites the previous one.
type Service struct {
	db     *gorm.DB
	mailer Mailer
	log    *logger.Logger
}

func NewService(db *gorm.DB, mailer Mailer, log *logger.Logger) *Service {
	return &Service{db: db, mailer: mailer, log: log}
}

// Send issues a fresh 6-digit code for the email and mails it.
func (s *Service) Send(email string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}

	record := models.EmailOTP{
		Email:     email,
		OTP:       code,
		ExpiresAt: time.Now().Add(TTL),
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"otp", "expires_at", "updated_at"}),
	}).Create(&record).Error; err != nil {
		return err
	}

	if err := s.mailer.SendOTP(email, code); err != nil {
		return err
	}
	s.log.Info("otp sent", "email", email)
	return nil
}

// Verify consumes the code for the email. It succeeds at most once per
// issued code: the record is deleted on success and on observed expiry.
func (s *Service) Verify(email, code string) (bool, error) {
	var record models.EmailOTP
	err := s.db.Where("email = ? AND otp = ?", email, code).First(&record).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if record.ExpiresAt.Before(time.Now()) {
		if err := s.db.Delete(&record).Error; err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.db.Delete(&record).Error; err != nil {
		return false, err
	}
	return true, nil
}

// SweepExpired deletes codes past their expiry. The store has no native TTL,
// so main runs this on a fixed interval.
func (s *Service) SweepExpired() (int64, error) {
	result := s.db.Where("expires_at < ?", time.Now()).Delete(&models.EmailOTP{})
	return result.RowsAffected, result.Error
}

// RunSweeper loops forever sweeping expired codes. Run it in a goroutine.
func (s *Service) RunSweeper(interval time.Duration) {
	for {
		time.Sleep(interval)
		removed, err := s.SweepExpired()
		if err != nil {
			s.log.Error("otp sweep failed", "err", err)
			continue
		}
		if removed > 0 {
			s.log.Debug("otp sweep", "removed", removed)
		}
	}
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
