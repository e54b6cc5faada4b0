// internal/config/settings.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// WindowSettings описывает окно приложения.
type WindowSettings struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Title     string `mapstructure:"title"`
	Resizable bool   `mapstructure:"resizable"`
}

// VisualSettings — административные настройки анимации.
type VisualSettings struct {
	// Visuals — атрибут включения: "" трактуется как "on", "off" выключает,
	// любое другое значение включает.
	Visuals string `mapstructure:"visuals"`
	// ReducedMotion — платформенное предпочтение уменьшенного движения.
	ReducedMotion bool  `mapstructure:"reduced_motion"`
	Seed          int64 `mapstructure:"seed"`
	Overlay       bool  `mapstructure:"overlay"`
}

// LoggerSettings настраивает zap-логгер.
type LoggerSettings struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // "console" или "json"
	File       string `mapstructure:"file"`   // пустая строка — без файла
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Settings — полная конфигурация приложения.
type Settings struct {
	Window  WindowSettings `mapstructure:"window"`
	Visuals VisualSettings `mapstructure:"visuals"`
	Logger  LoggerSettings `mapstructure:"logger"`
}

// Load читает настройки из файла (по умолчанию ./field.yaml) и переменных
// окружения с префиксом FIELD. Отсутствие файла по умолчанию не является ошибкой.
func Load(path string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("window.width", DefaultWindowWidth)
	v.SetDefault("window.height", DefaultWindowHeight)
	v.SetDefault("window.title", DefaultWindowTitle)
	v.SetDefault("window.resizable", true)
	v.SetDefault("visuals.visuals", "")
	v.SetDefault("visuals.reduced_motion", false)
	v.SetDefault("visuals.seed", 0)
	v.SetDefault("visuals.overlay", false)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size_mb", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age_days", 7)
	v.SetDefault("logger.compress", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("field")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("FIELD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Файл не найден — работаем на дефолтах и env
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &s, nil
}
