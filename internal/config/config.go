package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	BlobDriverBunny = "bunny"
	BlobDriverLocal = "local"
)

type Config struct {
	Env         string          `yaml:"env" env:"ENV" env-default:"local"`
	DSN         string          `yaml:"dsn" env:"DATABASE_DSN" env-required:"true"`
	AdminSecret string          `yaml:"admin_secret" env:"ADMIN_SECRET" env-required:"true"`
	SiteDomain  string          `yaml:"site_domain" env:"SITE_DOMAIN" env-default:"weddingservice.com"`
	HTTP        HTTPConfig      `yaml:"http"`
	BlobStore   BlobStoreConfig `yaml:"blob_store"`
	Redis       RedisConf       `yaml:"redis"`
}

type HTTPConfig struct {
	Host         string        `yaml:"host" env:"HTTP_HOST"`
	Port         string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"60s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"60s"`
}

// BlobStoreConfig для driver=bunny нужны storage_url, access_key и cdn_base_url,
// для driver=local base_dir и cdn_base_url (URL, под которым echo отдает base_dir).
type BlobStoreConfig struct {
	Driver     string `yaml:"driver" env:"BLOB_STORE_DRIVER" env-default:"bunny"`
	StorageURL string `yaml:"storage_url" env:"BUNNY_STORAGE_URL"`
	AccessKey  string `yaml:"access_key" env:"BUNNY_ACCESS_KEY"`
	CDNBaseURL string `yaml:"cdn_base_url" env:"BUNNY_CDN_URL"`
	BaseDir    string `yaml:"base_dir" env:"BLOB_STORE_BASE_DIR" env-default:"./uploads"`
}

// RedisConf пустой addr отключает кэш тенантов.
type RedisConf struct {
	RedisAddr     string        `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string        `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int           `yaml:"redis_db" env:"REDIS_DB"`
	TenantTTL     time.Duration `yaml:"tenant_ttl" env-default:"5m"`
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

	switch cfg.BlobStore.Driver {
	case BlobDriverBunny, BlobDriverLocal:
	default:
		panic("unknown blob_store.driver: " + cfg.BlobStore.Driver)
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
