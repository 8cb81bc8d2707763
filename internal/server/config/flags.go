package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/flagx"
)

var knownFlags = []string{
	"-a", "-m", "-d", "-s", "-k", "-r", "-w", "-z", "-t", "-l", "-v",
	"-u", "-p", "-b", "-g", "-e", "-x",
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics bind address (e.g., ":9090")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-k int      admin token validity, minutes
//	-r string   Redis address for rate-limit counters
//	-w string   WhatsApp business number
//	-z string   quota reset timezone
//	-t int      policy cache TTL, seconds
//	-l int      redemption claims per phone per day
//	-v string   log level
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-x string   phone lookup hash key
//
// Unknown arguments (subcommands, -c) are filtered out with flagx.FilterArgs
// before parsing.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port to serve metrics")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	adminTokenValidity := fs.Int("k", int(config.AdminTokenValidityDuration.Minutes()), "admin token validity (in minutes)")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address for rate-limit counters")
	fs.StringVar(&config.WhatsAppNumber, "w", config.WhatsAppNumber, "whatsapp business number")
	fs.StringVar(&config.ResetTimezone, "z", config.ResetTimezone, "timezone of daily quota reset")
	policyTTL := fs.Int("t", int(config.PolicyCacheTTL.Seconds()), "policy cache ttl (in seconds)")
	fs.IntVar(&config.ClaimsPerDay, "l", config.ClaimsPerDay, "redemption claims per day")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.PhoneHashKey, "x", config.PhoneHashKey, "phone lookup hash key")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	config.AdminTokenValidityDuration = time.Duration(*adminTokenValidity) * time.Minute
	config.PolicyCacheTTL = time.Duration(*policyTTL) * time.Second
	return nil
}
