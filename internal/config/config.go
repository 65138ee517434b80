package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"sync"
	"time"
)

type Config struct {
	Env      string `yaml:"env" env-default:"local"`
	Telegram struct {
		ApiKey  string `yaml:"api_key" env-default:""`
		AdminId int64  `yaml:"admin_id" env-default:"0"`
		BotName string `yaml:"bot_name" env-default:"CorpSiteBot"`
		Enabled bool   `yaml:"enabled" env-default:"false"`
	} `yaml:"telegram"`
	Join struct {
		SubmitTimeout time.Duration `yaml:"submit_timeout" env-default:"10s"`
		SessionTTL    time.Duration `yaml:"session_ttl" env-default:"2h"`
	} `yaml:"join"`
	Bootcamp struct {
		// RFC 3339, e.g. 2026-12-01T09:00:00+09:00
		Deadline string `yaml:"deadline" env-default:""`
	} `yaml:"bootcamp"`
	Hero struct {
		First  time.Duration `yaml:"first" env-default:"8s"`
		Second time.Duration `yaml:"second" env-default:"8s"`
		Fade   time.Duration `yaml:"fade" env-default:"1500ms"`
	} `yaml:"hero"`
	Faq struct {
		Path  string `yaml:"path" env-default:""`
		Watch bool   `yaml:"watch" env-default:"true"`
	} `yaml:"faq"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port   string `yaml:"port" env-default:"9100"`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("%s; %s", err, desc)
			instance = nil
			log.Fatal(err)
		}
	})
	return instance
}

// BootcampDeadline parses the configured deadline; zero time when unset.
func (c *Config) BootcampDeadline() (time.Time, error) {
	if c.Bootcamp.Deadline == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, c.Bootcamp.Deadline)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse bootcamp deadline: %w", err)
	}
	return t, nil
}
