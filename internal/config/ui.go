package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// UISettings controls presentation details of the server-rendered pages.
type UISettings struct {
	Title    string `mapstructure:"title"`
	Currency string `mapstructure:"currency"`
}

func DefaultUISettings() UISettings {
	return UISettings{
		Title:    "Product Catalog",
		Currency: "R$",
	}
}

// UISettingsHolder keeps the current UI settings and swaps them atomically on
// config file changes.
type UISettingsHolder struct {
	current atomic.Value // holds UISettings
}

func NewUISettingsHolder() (*UISettingsHolder, error) {
	v := viper.New()

	v.SetConfigName("catalog")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/catalog")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultUISettings()
		v.SetDefault("ui.title", defaults.Title)
		v.SetDefault("ui.currency", defaults.Currency)
	}

	var settings UISettings
	if err := v.UnmarshalKey("ui", &settings); err != nil {
		return nil, err
	}
	applyUIDefaults(&settings)
	if err := validateUISettings(settings); err != nil {
		return nil, err
	}

	holder := &UISettingsHolder{}
	holder.current.Store(settings)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated UISettings
		if err := v.UnmarshalKey("ui", &updated); err != nil {
			log.Printf("[ui-settings] reload failed: %v", err)
			return
		}
		applyUIDefaults(&updated)
		if err := validateUISettings(updated); err != nil {
			log.Printf("[ui-settings] invalid settings ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[ui-settings] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *UISettingsHolder) Get() UISettings {
	return h.current.Load().(UISettings)
}

func applyUIDefaults(settings *UISettings) {
	defaults := DefaultUISettings()
	if strings.TrimSpace(settings.Title) == "" {
		settings.Title = defaults.Title
	}
	if strings.TrimSpace(settings.Currency) == "" {
		settings.Currency = defaults.Currency
	}
}

func validateUISettings(settings UISettings) error {
	if strings.TrimSpace(settings.Title) == "" {
		return errors.New("ui.title cannot be empty")
	}
	return nil
}
