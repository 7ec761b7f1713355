package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 2330
	defaultEnv        = "development"
	defaultBaseURL    = "http://localhost:2330"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "agrotech"
	defaultDBCharset  = "utf8mb4"
	defaultRedisURL   = "redis://localhost:6379/0"
	defaultStaticDir  = "static"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"` // "development" | "production"
	BaseURL        string         `yaml:"base_url"`
	DSN            string         `yaml:"dsn"`
	Database       DatabaseConfig `yaml:"database"`
	RedisURL       string         `yaml:"redis_url"`
	JWTSecret      string         `yaml:"jwt_secret"`
	AllowedOrigins []string       `yaml:"allowed_origins"`
	StaticDir      string         `yaml:"static_dir"`
	Upload         UploadConfig   `yaml:"upload"`
}

// DatabaseConfig holds discrete MySQL connection parameters, used when a full
// DSN is not supplied.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
}

// UploadConfig configures the file upload module. When S3 is disabled,
// uploads land in StaticDir and are served back by this process.
type UploadConfig struct {
	S3Enable        bool   `yaml:"s3_enable"`
	S3Bucket        string `yaml:"s3_bucket"`
	S3Region        string `yaml:"s3_region"`
	S3Endpoint      string `yaml:"s3_endpoint"`
	S3AccessKeyID   string `yaml:"s3_access_key_id"`
	S3SecretKey     string `yaml:"s3_secret_access_key"`
	S3PublicBaseURL string `yaml:"s3_public_base_url"`
}

// Load reads the YAML config file at path and applies defaults. A missing
// file is not an error; defaults plus environment overrides are used.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// run on defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("AGRO_DSN")); v != "" {
		c.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv("AGRO_REDIS_URL")); v != "" {
		c.RedisURL = v
	}
	if v := strings.TrimSpace(os.Getenv("AGRO_JWT_SECRET")); v != "" {
		c.JWTSecret = v
	}
	if v := strings.TrimSpace(os.Getenv("AGRO_BASE_URL")); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("AGRO_ENV")); v != "" {
		c.Env = v
	}
}

func (c *AppConfig) applyDefaults() {
	if c.Port <= 0 {
		c.Port = defaultPort
	}
	if strings.TrimSpace(c.Env) == "" {
		c.Env = defaultEnv
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = defaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if strings.TrimSpace(c.RedisURL) == "" {
		c.RedisURL = defaultRedisURL
	}
	if strings.TrimSpace(c.StaticDir) == "" {
		c.StaticDir = defaultStaticDir
	}
	if c.DSN == "" {
		c.DSN = c.Database.buildDSN()
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development")
}

// ResolveStaticDir returns the absolute static directory path.
func (c *AppConfig) ResolveStaticDir() string {
	dir := c.StaticDir
	if !filepath.IsAbs(dir) {
		if wd, err := os.Getwd(); err == nil {
			dir = filepath.Join(wd, dir)
		}
	}
	return dir
}

func (d DatabaseConfig) buildDSN() string {
	host := d.Host
	if host == "" {
		host = defaultDBHost
	}
	port := d.Port
	if port <= 0 {
		port = defaultDBPort
	}
	user := d.User
	if user == "" {
		user = defaultDBUser
	}
	password := d.Password
	if password == "" {
		password = defaultDBPassword
	}
	name := d.Name
	if name == "" {
		name = defaultDBName
	}
	charset := d.Charset
	if charset == "" {
		charset = defaultDBCharset
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		user, password, host, port, name, charset)
}
