package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args into a fresh config.
// A dedicated FlagSet is used so repeated calls do not collide.
//
// Flags:
//
//	-a document store address in format [host]:[port]
//	-remote remote store address used by the agent, [host]:[port]
//	-agent-address agent API address in format [host]:[port]
//	-driver storage backend (sqlite3, pgx, redis)
//	-d database DSN
//	-redis-url redis connection URL
//	-schema-dir directory with per-collection JSON schemas
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-probe-interval reachability probe interval
//	-sync-interval automatic drain interval
//	-max-retries replay attempts before a mutation is abandoned
//	-log-level zerolog level name
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, remoteAddress, agentAddress NetAddress
	var driver, databaseDSN, redisURL string
	var schemaDir, jsonConfigPath, logLevel string
	var requestTimeout, probeInterval, syncInterval time.Duration
	var maxRetries int

	fs := flag.NewFlagSet("site-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&remoteAddress, "remote", "Remote store address host:port")
	fs.Var(&agentAddress, "agent-address", "Agent API address host:port")
	fs.StringVar(&driver, "driver", "", "Storage backend: sqlite3, pgx or redis")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "redis-url", "", "Redis URL")
	fs.StringVar(&schemaDir, "schema-dir", "", "Directory with collection schemas")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Reachability probe interval")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Automatic sync interval")
	fs.IntVar(&maxRetries, "max-retries", 0, "Replay attempts before a mutation is abandoned")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel:  logLevel,
			SchemaDir: schemaDir,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
			Redis: Redis{
				URL: redisURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress.String(),
			RequestTimeout: requestTimeout,
			ProbeInterval:  probeInterval,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Sync: Sync{
			MaxRetries: maxRetries,
		},
		Agent: Agent{
			HTTPAddress: agentAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
