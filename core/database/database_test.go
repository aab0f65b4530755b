package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect_UnreachableHost(t *testing.T) {
	cfg := Config{
		Host:           "localhost",
		Port:           9999, // nothing listens here
		User:           "root",
		Password:       "wrongpassword",
		Name:           "emulator",
		TimeoutSeconds: 1,
	}

	db, err := Connect(cfg)
	assert.Error(t, err)
	assert.Nil(t, db)
}
