package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"test", "-a", ":6000", "-d", "postgres://flag", "-s", "flagSecret", "-t", "5"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, c.EndpointAddr, ":6000")
	assert.Equal(t, c.DatabaseDSN, "postgres://flag")
	assert.Equal(t, c.SecretKey, "flagSecret")
	assert.Equal(t, c.AccessTokenValidityDuration, 5*time.Minute)
}

func TestParseFlags_NoFlagsKeepsDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"test"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, c.EndpointAddr, ":8080")
	assert.Equal(t, c.AccessTokenValidityDuration, 15*time.Minute)
}
