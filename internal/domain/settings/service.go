// internal/domain/settings/service.go
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/soqi-sistemas/pedefacil-backend/internal/config"
)

const (
	settingsCacheKey = "settings:store"
	settingsCacheTTL = 5 * time.Minute
)

// Service handles store settings operations
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	config      *config.Config
}

// NewService creates a new settings service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		config:      cfg,
	}
}

// Get returns the store settings, creating the default record on first
// read so callers never see an empty store.
func (s *Service) Get(ctx context.Context) (*StoreSettings, error) {
	if cached, err := s.redisClient.Get(ctx, settingsCacheKey).Result(); err == nil {
		var settings StoreSettings
		if err := json.Unmarshal([]byte(cached), &settings); err == nil {
			return &settings, nil
		}
	}

	var settings StoreSettings
	err := s.db.WithContext(ctx).First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		settings = Defaults()
		if err := s.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, fmt.Errorf("failed to create default settings: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	s.cache(ctx, &settings)
	return &settings, nil
}

// Update applies a partial update to the store settings and invalidates
// the cached copy.
func (s *Service) Update(ctx context.Context, req *UpdateRequest) (*StoreSettings, error) {
	if req.PaymentMethods != nil {
		for _, m := range *req.PaymentMethods {
			if !IsValidPaymentMethod(m) {
				return nil, fmt.Errorf("invalid payment method: %s", m)
			}
		}
	}
	if req.OpenDays != nil {
		for _, d := range *req.OpenDays {
			if d < 0 || d > 6 {
				return nil, fmt.Errorf("invalid open day: %d", d)
			}
		}
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	settings.Apply(req)
	if err := s.db.WithContext(ctx).Save(settings).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	s.redisClient.Del(ctx, settingsCacheKey)
	s.cache(ctx, settings)
	return settings, nil
}

// NotificationEmail returns the configured order notification address,
// empty when none is set.
func (s *Service) NotificationEmail(ctx context.Context) string {
	settings, err := s.Get(ctx)
	if err != nil {
		return ""
	}
	return settings.NotificationEmail
}

func (s *Service) cache(ctx context.Context, settings *StoreSettings) {
	data, err := json.Marshal(settings)
	if err != nil {
		return
	}
	s.redisClient.Set(ctx, settingsCacheKey, data, settingsCacheTTL)
}
