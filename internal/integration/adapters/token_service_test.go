package adapters

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/integration/persistence"
	"github.com/partilio/backend/internal/integration/persistence/model"
)

func newTokenService(t *testing.T) adapter.TokenService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.RefreshTokenModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewTokenService("test-secret", persistence.NewTokenRepository(db))
}

func TestTokenService_BackToBackPairsAreDistinct(t *testing.T) {
	service := newTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Registration issues a pair and an immediate login issues another one
	// within the same second; both must persist.
	first, err := service.GenerateTokenPair(ctx, userID, "ana@example.com", false)
	if err != nil {
		t.Fatalf("first GenerateTokenPair() error = %v", err)
	}
	second, err := service.GenerateTokenPair(ctx, userID, "ana@example.com", false)
	if err != nil {
		t.Fatalf("second GenerateTokenPair() error = %v", err)
	}

	if first.RefreshToken == second.RefreshToken {
		t.Error("refresh tokens issued back-to-back are identical")
	}
	if first.AccessToken == second.AccessToken {
		t.Error("access tokens issued back-to-back are identical")
	}
}

func TestTokenService_RefreshTokenRoundTrip(t *testing.T) {
	service := newTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	pair, err := service.GenerateTokenPair(ctx, userID, "ana@example.com", false)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	claims, err := service.ValidateRefreshToken(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("ValidateRefreshToken() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}

	valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("IsRefreshTokenValid() error = %v", err)
	}
	if !valid {
		t.Error("freshly issued refresh token reported invalid")
	}

	if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
		t.Error("refresh token accepted as access token")
	}
}

func TestTokenService_InvalidateRefreshToken(t *testing.T) {
	service := newTokenService(t)
	ctx := context.Background()

	pair, err := service.GenerateTokenPair(ctx, uuid.New(), "ana@example.com", false)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if err := service.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
		t.Fatalf("InvalidateRefreshToken() error = %v", err)
	}

	valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("IsRefreshTokenValid() error = %v", err)
	}
	if valid {
		t.Error("invalidated refresh token reported valid")
	}
}
