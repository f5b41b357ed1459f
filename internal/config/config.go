package config

import (
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Pg            Pg       `yaml:"pg"`
	JwtTTLSeconds int64    `yaml:"jwt_ttl_seconds"`
	Port          int      `yaml:"port"`
	CorsOrigins   []string `yaml:"cors_origins"` // default permissive
	LogLevel      string   `yaml:"log_level"`
	LogJSON       bool     `yaml:"log_json"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
}

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return time.Duration(s.Public.JwtTTLSeconds) * time.Second
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyEnv()
	return cfg
}

// applyEnv lets deployment override file-based config. CORS_ORIGINS is a
// comma-separated list; empty entries are dropped.
func (s *Config) applyEnv() {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		var parsed []string
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				parsed = append(parsed, o)
			}
		}
		if len(parsed) > 0 {
			s.Public.CorsOrigins = parsed
		}
	}
	if key := os.Getenv("JWT_KEY"); key != "" {
		s.private.JwtKey = key
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			s.Public.Port = p
		}
	}
	if len(s.Public.CorsOrigins) == 0 {
		s.Public.CorsOrigins = []string{"*"}
	}
}
