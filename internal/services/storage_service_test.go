package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devfolio/backend/internal/config"
)

func newTestStorage() *StorageService {
	return &StorageService{
		cfg:          &config.Config{StorageBucket: "devfolio"},
		publicPrefix: "https://cdn.example.com/storage/v1/object/public/devfolio/",
	}
}

func TestExtractKey(t *testing.T) {
	s := newTestStorage()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain key", s.publicPrefix + "1715000000000-photo.png", "1715000000000-photo.png"},
		{"escaped key", s.publicPrefix + "1715000000000-my%20photo.png", "1715000000000-my photo.png"},
		{"foreign host", "https://elsewhere.example.com/a.png", ""},
		{"wrong bucket", "https://cdn.example.com/storage/v1/object/public/other/a.png", ""},
		{"prefix only", s.publicPrefix, ""},
		{"empty", "", ""},
		{"bad escape", s.publicPrefix + "a%zz.png", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.ExtractKey(tt.url))
		})
	}
}

func TestPublicURLRoundTrip(t *testing.T) {
	s := newTestStorage()

	url := s.PublicURL("1715000000000-logo.png")
	assert.Equal(t, s.publicPrefix+"1715000000000-logo.png", url)
	assert.Equal(t, "1715000000000-logo.png", s.ExtractKey(url))
}

func TestBuildObjectKey(t *testing.T) {
	key := BuildObjectKey("avatar.png")
	assert.True(t, strings.HasSuffix(key, "-avatar.png"))

	prefix := strings.TrimSuffix(key, "-avatar.png")
	assert.NotEmpty(t, prefix)
	for _, r := range prefix {
		assert.True(t, r >= '0' && r <= '9', "timestamp prefix should be numeric")
	}
}

func TestNewStorageServiceRequiresBucket(t *testing.T) {
	_, err := NewStorageService(&config.Config{})
	assert.Error(t, err)
}
