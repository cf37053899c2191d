package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "test-secret-key-for-jwt-signing-32-chars"

func createTestTokenService(t *testing.T) TokenService {
	service, err := NewTokenService(
		15*time.Minute,
		"test-issuer",
		"test-audience",
		false,
		"",
		"",
		testSecretKey,
	)
	require.NoError(t, err)
	require.NotNil(t, service)
	return service
}

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name        string
		ttl         time.Duration
		useRSAKeys  bool
		privateKey  string
		publicKey   string
		secretKey   string
		expectError bool
	}{
		{
			name:        "valid HMAC configuration",
			ttl:         15 * time.Minute,
			secretKey:   testSecretKey,
			expectError: false,
		},
		{
			name:        "missing secret key",
			ttl:         15 * time.Minute,
			secretKey:   "",
			expectError: true,
		},
		{
			name:        "RSA requested without keys",
			ttl:         15 * time.Minute,
			useRSAKeys:  true,
			expectError: true,
		},
		{
			name:        "RSA with malformed PEM",
			ttl:         15 * time.Minute,
			useRSAKeys:  true,
			privateKey:  "not-a-pem-block",
			publicKey:   "not-a-pem-block",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewTokenService(tt.ttl, "test-issuer", "test-audience", tt.useRSAKeys, tt.privateKey, tt.publicKey, tt.secretKey)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, service)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, service)
			}
		})
	}
}

func TestGenerateAdminToken(t *testing.T) {
	service := createTestTokenService(t)

	tests := []struct {
		name    string
		adminID uint
	}{
		{name: "regular admin ID", adminID: 42},
		{name: "zero admin ID", adminID: 0},
		{name: "large admin ID", adminID: 4294967295},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, expiresIn, err := service.GenerateAdminToken(tt.adminID)

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.True(t, strings.HasPrefix(token, "eyJ"), "token should be a JWT")
			assert.Equal(t, int64((15 * time.Minute).Seconds()), expiresIn)
		})
	}
}

func TestGenerateAdminTokenUniqueness(t *testing.T) {
	service := createTestTokenService(t)

	first, _, err := service.GenerateAdminToken(7)
	require.NoError(t, err)
	second, _, err := service.GenerateAdminToken(7)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each token should carry a unique jti")
}

func TestValidateAdminToken(t *testing.T) {
	service := createTestTokenService(t)

	t.Run("valid token", func(t *testing.T) {
		before := time.Now().UTC().Add(-time.Second)
		token, _, err := service.GenerateAdminToken(123)
		require.NoError(t, err)
		after := time.Now().UTC().Add(time.Second)

		claims, err := service.ValidateAdminToken(token)
		require.NoError(t, err)
		require.NotNil(t, claims)

		assert.Equal(t, uint(123), claims.AdminID)
		assert.NotEmpty(t, claims.TokenID)
		assert.True(t, claims.IssuedAt.After(before) && claims.IssuedAt.Before(after))
		expectedExpiry := claims.IssuedAt.Add(15 * time.Minute)
		assert.WithinDuration(t, expectedExpiry, claims.ExpiresAt, time.Second)
	})

	t.Run("empty token", func(t *testing.T) {
		claims, err := service.ValidateAdminToken("")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("malformed token", func(t *testing.T) {
		claims, err := service.ValidateAdminToken("not.a.jwt")
		assert.ErrorIs(t, err, ErrTokenInvalid)
		assert.Nil(t, claims)
	})

	t.Run("tampered token", func(t *testing.T) {
		token, _, err := service.GenerateAdminToken(123)
		require.NoError(t, err)

		tampered := token[:len(token)-4] + "AAAA"
		claims, err := service.ValidateAdminToken(tampered)
		assert.ErrorIs(t, err, ErrTokenInvalid)
		assert.Nil(t, claims)
	})
}

func TestTokenExpiration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping expiration test in short mode")
	}

	service, err := NewTokenService(1*time.Second, "test-issuer", "test-audience", false, "", "", testSecretKey)
	require.NoError(t, err)

	token, expiresIn, err := service.GenerateAdminToken(55)
	require.NoError(t, err)
	assert.Equal(t, int64(1), expiresIn)

	claims, err := service.ValidateAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(55), claims.AdminID)

	time.Sleep(3 * time.Second)

	claims, err = service.ValidateAdminToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestTokenSecurity(t *testing.T) {
	serviceA := createTestTokenService(t)
	serviceB, err := NewTokenService(15*time.Minute, "test-issuer", "test-audience", false, "", "", "different-secret-key-for-jwt-32-chars!!")
	require.NoError(t, err)

	token, _, err := serviceA.GenerateAdminToken(99)
	require.NoError(t, err)

	claims, err := serviceB.ValidateAdminToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid, "token signed with a different key must be rejected")
	assert.Nil(t, claims)
}

func TestConcurrentTokenGeneration(t *testing.T) {
	service := createTestTokenService(t)

	const goroutines = 20
	tokens := make(chan string, goroutines)
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id uint) {
			token, _, err := service.GenerateAdminToken(id)
			if err != nil {
				errs <- err
				return
			}
			tokens <- token
		}(uint(i + 1))
	}

	seen := make(map[string]bool)
	for i := 0; i < goroutines; i++ {
		select {
		case err := <-errs:
			t.Fatalf("token generation failed: %v", err)
		case token := <-tokens:
			assert.False(t, seen[token], "duplicate token generated")
			seen[token] = true
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for token generation")
		}
	}
}

func BenchmarkGenerateAdminToken(b *testing.B) {
	service, err := NewTokenService(15*time.Minute, "test-issuer", "test-audience", false, "", "", testSecretKey)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := service.GenerateAdminToken(uint(i)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidateAdminToken(b *testing.B) {
	service, err := NewTokenService(15*time.Minute, "test-issuer", "test-audience", false, "", "", testSecretKey)
	if err != nil {
		b.Fatal(err)
	}
	token, _, err := service.GenerateAdminToken(1)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := service.ValidateAdminToken(token); err != nil {
			b.Fatal(err)
		}
	}
}
