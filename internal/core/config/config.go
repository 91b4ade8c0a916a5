package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type CRMHTTP struct {
	Host string
	Port int
}

type App struct {
	Name        string
	Env         string
	CORSOrigins []string
	HTTP        HTTP
	CRM         CRMHTTP
}

type Log struct {
	Level string
	JSON  bool
}

type JWT struct {
	AccessSecret       string
	RefreshSecret      string
	Issuer             string
	AccessTokenTTLMin  int
	RefreshTokenTTLMin int
}

type Redis struct {
	Addr             string `mapstructure:"addr"`
	Password         string `mapstructure:"password"`
	DB               int    `mapstructure:"db"`
	StoreCacheTTLSec int    `mapstructure:"store_cache_ttl_sec"`
}

type DB struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Config struct {
	App       App
	Log       Log
	JWT       JWT
	DB        DB
	Redis     Redis `mapstructure:"redis"`
	PageLimit int
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("jwt.accesstokenttlmin", 360)
	v.SetDefault("jwt.refreshtokenttlmin", 43200) // 30 days
	v.SetDefault("pagelimit", 20)
	v.SetDefault("redis.store_cache_ttl_sec", 30)

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	return &c
}
