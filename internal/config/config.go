package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string            `yaml:"env" env:"PORTFOLIO_ENV" env-default:"local"`
	DSN         string            `yaml:"dsn" env:"PORTFOLIO_DSN" env-required:"true"`
	HTTP        HTTPConfig        `yaml:"http"`
	FileStorage FileStorageConfig `yaml:"file_storage"`
	Redis       RedisConf         `yaml:"redis"`
	Auth        AuthConfig        `yaml:"auth"`
	Admin       AdminSite         `yaml:"admin"`
	Contact     ContactConfig     `yaml:"contact"`
	Seed        SeedConfig        `yaml:"seed"`
}

type HTTPConfig struct {
	Host          string        `yaml:"host" env:"HTTP_HOST"`
	Port          string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	SessionSecret string        `yaml:"session_secret" env:"HTTP_SESSION_SECRET" env-default:"change-me"`
	Timeout       time.Duration `yaml:"timeout" env-default:"10s"`
}

type FileStorageConfig struct {
	BaseDir string `yaml:"base_dir" env:"MEDIA_ROOT" env-default:"./media"`
	BaseURL string `yaml:"base_url" env:"MEDIA_URL" env-default:"/media"`
	MaxSize int64  `yaml:"max_size" env-default:"10485760"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redispassword" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB"`
}

// AuthConfig holds the single administrator credential. PasswordHash is a
// bcrypt hash, never a plain password.
type AuthConfig struct {
	AdminEmail   string        `yaml:"admin_email" env:"ADMIN_EMAIL"`
	PasswordHash string        `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH"`
	TokenSecret  string        `yaml:"token_secret" env:"ADMIN_TOKEN_SECRET" env-default:"change-me"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"1h"`
}

// AdminSite is presentation metadata for the administrative surface. It is
// set once at start and read for the life of the process.
type AdminSite struct {
	SiteHeader string `yaml:"site_header" env-default:"Portfolio Admin"`
	SiteTitle  string `yaml:"site_title" env-default:"Portfolio Admin"`
	IndexTitle string `yaml:"index_title" env-default:"Welcome to Your Portfolio Dashboard"`
}

type ContactConfig struct {
	RateLimit  int           `yaml:"rate_limit" env-default:"5"`
	RateWindow time.Duration `yaml:"rate_window" env-default:"10m"`
	CacheTTL   time.Duration `yaml:"cache_ttl" env-default:"5m"`
}

type SeedConfig struct {
	FixturePath string `yaml:"fixture_path" env:"SEED_FIXTURE" env-default:"config/seed.yaml"`
	AssetsDir   string `yaml:"assets_dir" env:"SEED_ASSETS" env-default:"."`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	if f := flag.Lookup("config"); f != nil {
		res = f.Value.String()
	} else {
		flag.StringVar(&res, "config", "", "path to config file")
		flag.Parse()
	}

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
