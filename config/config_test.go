package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CAFE_TEST_VALUE", "")
	assert.Equal(t, "fallback", GetEnv("CAFE_TEST_VALUE", "fallback"))
	t.Setenv("CAFE_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("CAFE_TEST_VALUE", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 100},
		{"250", 250},
		{"lots", 100},
	}
	for _, testCase := range tests {
		t.Setenv("CAFE_TEST_INT", testCase.value)
		assert.Equal(t, testCase.want, GetEnvInt("CAFE_TEST_INT", 100), testCase.value)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("CAFE_TEST_TTL", "90s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("CAFE_TEST_TTL", time.Minute))
	t.Setenv("CAFE_TEST_TTL", "soon")
	assert.Equal(t, time.Minute, GetEnvDuration("CAFE_TEST_TTL", time.Minute))
}

func TestGetEnvBool(t *testing.T) {
	for value, want := range map[string]bool{"": false, "1": true, "TRUE": true, " yes ": true, "off": false, "0": false} {
		t.Setenv("CAFE_TEST_BOOL", value)
		assert.Equal(t, want, GetEnvBool("CAFE_TEST_BOOL"), value)
	}
}

func TestLoadDotEnv_KeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CAFE_TEST_DOTENV=from-file\nCAFE_TEST_KEEP=from-file\n"), 0644))
	t.Chdir(dir)
	t.Setenv("CAFE_TEST_KEEP", "from-env")
	t.Setenv("CAFE_TEST_DOTENV", "")
	os.Unsetenv("CAFE_TEST_DOTENV")

	LoadDotEnv()
	assert.Equal(t, "from-file", os.Getenv("CAFE_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("CAFE_TEST_KEEP"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	LoadDotEnv()
}
