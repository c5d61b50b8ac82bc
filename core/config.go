package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env          string
		Debug        bool
		TestMode     bool
		AppName      string
		Build        string
		SchoolName   string
		RollbarToken string
		Server       ServerConfig
		Seed         SeedConfig
	}

	ServerConfig struct {
		Host            string
		Address         string
		DebugHost       string
		DisableReqLogs  bool
		ShutdownTimeout time.Duration
	}

	SeedConfig struct {
		Demo     bool
		RandSeed int64
	}
)

// NewConfig loads the configuration from defaults, an optional `config/.env.<env>` file and the environment.
// Environment variables are prefixed with the upper-cased env name, e.g. `DEV_SERVER_ADDRESS`.
func NewConfig() *Config {
	conf := viper.New()

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", env == "DEV")
	conf.SetDefault("testMode", env == "TEST")
	conf.SetDefault("appName", "Matokeo")
	conf.SetDefault("build", "develop")
	conf.SetDefault("schoolName", "Matokeo Public School")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("server.host", hostname())
	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("server.debugHost", ":4000")
	conf.SetDefault("server.disableReqLogs", false)
	conf.SetDefault("server.shutdownTimeout", 10*time.Second)
	conf.SetDefault("seed.demo", env == "DEV")
	conf.SetDefault("seed.randSeed", int64(1))

	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	if root, err := ProjectRoot(); err == nil {
		dotEnvPath := filepath.Join(root, "config", ".env."+strings.ToLower(env))
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
			}
		} else if !os.IsNotExist(err) {
			log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
		}
	}
	conf.AutomaticEnv()

	return &Config{
		Env:          env,
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		SchoolName:   conf.GetString("schoolName"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            conf.GetString("server.host"),
			Address:         conf.GetString("server.address"),
			DebugHost:       conf.GetString("server.debugHost"),
			DisableReqLogs:  conf.GetBool("server.disableReqLogs"),
			ShutdownTimeout: conf.GetDuration("server.shutdownTimeout"),
		},
		Seed: SeedConfig{
			Demo:     conf.GetBool("seed.demo"),
			RandSeed: conf.GetInt64("seed.randSeed"),
		},
	}
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return h
}
