package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/spakiosk/internal/flagx"
	"github.com/dmitrijs2005/spakiosk/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration. Durations use
// timex.Duration so that both "5m" and integer nanoseconds are accepted.
// Empty fields leave the corresponding default untouched.
type FileConfig struct {
	EndpointAddrGRPC           string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	MetricsAddr                string         `json:"metrics_addr" yaml:"metrics_addr"`
	DatabaseDSN                string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey                  string         `json:"secret_key" yaml:"secret_key"`
	PhoneHashKey               string         `json:"phone_hash_key" yaml:"phone_hash_key"`
	AdminTokenValidityDuration timex.Duration `json:"admin_token_validity_duration" yaml:"admin_token_validity_duration"`
	RedisAddr                  string         `json:"redis_addr" yaml:"redis_addr"`
	WhatsAppNumber             string         `json:"whatsapp_number" yaml:"whatsapp_number"`
	ResetTimezone              string         `json:"reset_timezone" yaml:"reset_timezone"`
	PolicyCacheTTL             timex.Duration `json:"policy_cache_ttl" yaml:"policy_cache_ttl"`
	ClaimsPerDay               int            `json:"claims_per_day" yaml:"claims_per_day"`
	LogLevel                   string         `json:"log_level" yaml:"log_level"`
	S3RootUser                 string         `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword             string         `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket                   string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region                   string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint             string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
}

// parseFile overlays values from the file named by -c/-config. Files ending
// in .yaml or .yml are decoded as YAML, anything else as JSON.
func parseFile(config *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	fc := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(config)
	return nil
}

func (fc *FileConfig) apply(c *Config) {
	setString(&c.EndpointAddrGRPC, fc.EndpointAddrGRPC)
	setString(&c.MetricsAddr, fc.MetricsAddr)
	setString(&c.DatabaseDSN, fc.DatabaseDSN)
	setString(&c.SecretKey, fc.SecretKey)
	setString(&c.PhoneHashKey, fc.PhoneHashKey)
	setString(&c.RedisAddr, fc.RedisAddr)
	setString(&c.WhatsAppNumber, fc.WhatsAppNumber)
	setString(&c.ResetTimezone, fc.ResetTimezone)
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.S3RootUser, fc.S3RootUser)
	setString(&c.S3RootPassword, fc.S3RootPassword)
	setString(&c.S3Bucket, fc.S3Bucket)
	setString(&c.S3Region, fc.S3Region)
	setString(&c.S3BaseEndpoint, fc.S3BaseEndpoint)

	if fc.AdminTokenValidityDuration.Duration > 0 {
		c.AdminTokenValidityDuration = fc.AdminTokenValidityDuration.Duration
	}
	if fc.PolicyCacheTTL.Duration > 0 {
		c.PolicyCacheTTL = fc.PolicyCacheTTL.Duration
	}
	if fc.ClaimsPerDay > 0 {
		c.ClaimsPerDay = fc.ClaimsPerDay
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
