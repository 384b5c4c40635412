package config

import (
	"strings"
	"testing"
)

func TestConnectDBMissingConfigReturnsError(t *testing.T) {
	// No config.yaml is loaded here, so DB_HOST and DB_NAME are empty.
	db, err := ConnectDB()
	if err == nil {
		t.Fatal("expected an error with no database configuration")
	}
	if db != nil {
		t.Error("expected nil db on configuration error")
	}
	if !strings.Contains(err.Error(), "DB_HOST and DB_NAME are required") {
		t.Errorf("unexpected error: %v", err)
	}
}
