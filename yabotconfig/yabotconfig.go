// Package yabotconfig holds bot credentials and destination chats, keyed by
// a logical bot name, so the notification service can address "alerts" or
// "billing" instead of raw tokens. A StaticProvider covers the common case
// of a fixed set of bots registered at startup or loaded from environment
// variables.
//
// Example usage:
//
//	provider, err := yabotconfig.NewStaticProvider(yabotconfig.BotConfig{
//	    Name:   "alerts",
//	    Token:  os.Getenv("ALERTS_TOKEN"),
//	    ChatID: -1001234567890,
//	})
package yabotconfig

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaTgNotify/yaerrors"
)

// BotConfig identifies one bot and the chat it posts to.
type BotConfig struct {
	Name   string
	Token  string
	ChatID int64
}

// Validate checks that the config is complete enough to send with.
func (c BotConfig) Validate() yaerrors.Error {
	if strings.TrimSpace(c.Name) == "" {
		return yaerrors.FromString(http.StatusBadRequest, "bot name cannot be empty")
	}

	if strings.TrimSpace(c.Token) == "" {
		return yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("bot %q: token cannot be empty", c.Name),
		)
	}

	if c.ChatID == 0 {
		return yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("bot %q: chat id cannot be zero", c.Name),
		)
	}

	return nil
}

// Provider resolves bot names to configurations.
type Provider interface {
	// Get returns the config registered under name.
	Get(name string) (BotConfig, bool)

	// Exists reports whether a config is registered under name.
	Exists(name string) bool

	// All returns a copy of every registered config keyed by name.
	All() map[string]BotConfig

	// Size returns the number of registered configs.
	Size() int
}

// StaticProvider is a thread-safe in-memory Provider.
type StaticProvider struct {
	configs *safeMap[string, BotConfig]
}

// NewStaticProvider creates a provider pre-populated with the given configs.
// Every config is validated; duplicate names are rejected.
//
// Example usage:
//
//	provider, err := yabotconfig.NewStaticProvider(alerts, billing)
func NewStaticProvider(configs ...BotConfig) (*StaticProvider, yaerrors.Error) {
	provider := &StaticProvider{configs: newSafeMap[string, BotConfig]()}

	for _, cfg := range configs {
		if err := provider.Register(cfg); err != nil {
			return nil, err.Wrap("failed to build static provider")
		}
	}

	return provider, nil
}

// Register validates and adds a config. Registering a name twice fails.
func (p *StaticProvider) Register(cfg BotConfig) yaerrors.Error {
	if err := cfg.Validate(); err != nil {
		return err.Wrap("failed to register bot config")
	}

	if _, loaded := p.configs.GetOrSet(cfg.Name, cfg); loaded {
		return yaerrors.FromString(
			http.StatusConflict,
			fmt.Sprintf("bot %q is already registered", cfg.Name),
		)
	}

	return nil
}

func (p *StaticProvider) Get(name string) (BotConfig, bool) {
	return p.configs.Get(name)
}

func (p *StaticProvider) Exists(name string) bool {
	return p.configs.Has(name)
}

func (p *StaticProvider) All() map[string]BotConfig {
	return p.configs.Copy()
}

func (p *StaticProvider) Size() int {
	return p.configs.Length()
}
