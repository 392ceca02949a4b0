package yabotconfig

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/YaCodeDev/GoYaTgNotify/yaerrors"
)

const (
	envTokenSuffix  = "_TOKEN"
	envChatIDSuffix = "_CHAT_ID"
)

// FromEnv builds a StaticProvider from environment variables of the form
//
//	<PREFIX>_<BOT>_TOKEN
//	<PREFIX>_<BOT>_CHAT_ID
//
// where <BOT> becomes the lowercased bot name. A .env file in the working
// directory is loaded first when present, real environment variables win
// over it. At least one complete bot must be found.
//
// Example usage:
//
//	// TGNOTIFY_ALERTS_TOKEN=123:abc
//	// TGNOTIFY_ALERTS_CHAT_ID=-1001234567890
//	provider, err := yabotconfig.FromEnv("TGNOTIFY")
func FromEnv(prefix string) (*StaticProvider, yaerrors.Error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, yaerrors.FromString(http.StatusBadRequest, "env prefix cannot be empty")
	}

	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	prefix = strings.ToUpper(prefix) + "_"

	tokens := make(map[string]string)
	chatIDs := make(map[string]int64)

	for _, entry := range os.Environ() {
		key, value, found := strings.Cut(entry, "=")
		if !found || !strings.HasPrefix(key, prefix) {
			continue
		}

		rest := strings.TrimPrefix(key, prefix)

		switch {
		case strings.HasSuffix(rest, envTokenSuffix):
			name := strings.ToLower(strings.TrimSuffix(rest, envTokenSuffix))
			if name != "" {
				tokens[name] = value
			}
		case strings.HasSuffix(rest, envChatIDSuffix):
			name := strings.ToLower(strings.TrimSuffix(rest, envChatIDSuffix))
			if name == "" {
				continue
			}

			chatID, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
			if err != nil {
				return nil, yaerrors.FromError(
					http.StatusBadRequest,
					err,
					fmt.Sprintf("failed to parse chat id from %s", key),
				)
			}

			chatIDs[name] = chatID
		}
	}

	provider := &StaticProvider{configs: newSafeMap[string, BotConfig]()}

	for name, token := range tokens {
		chatID, ok := chatIDs[name]
		if !ok {
			return nil, yaerrors.FromString(
				http.StatusBadRequest,
				fmt.Sprintf("bot %q has a token but no chat id variable", name),
			)
		}

		if err := provider.Register(BotConfig{Name: name, Token: token, ChatID: chatID}); err != nil {
			return nil, err.Wrap("failed to load bot config from env")
		}
	}

	if provider.Size() == 0 {
		return nil, yaerrors.FromString(
			http.StatusNotFound,
			fmt.Sprintf("no bot configs found under prefix %q", strings.TrimSuffix(prefix, "_")),
		)
	}

	return provider, nil
}
