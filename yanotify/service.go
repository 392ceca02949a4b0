package yanotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/YaCodeDev/GoYaTgNotify/yabotconfig"
	"github.com/YaCodeDev/GoYaTgNotify/yacaption"
	"github.com/YaCodeDev/GoYaTgNotify/yaerrors"
	"github.com/YaCodeDev/GoYaTgNotify/yalogger"
	"github.com/YaCodeDev/GoYaTgNotify/yamarkup"
	"github.com/YaCodeDev/GoYaTgNotify/yaretry"
	"github.com/YaCodeDev/GoYaTgNotify/yasplit"
	"github.com/YaCodeDev/GoYaTgNotify/yatgapi"
	"github.com/YaCodeDev/GoYaTgNotify/yatgerrors"
)

// DefaultSoftLimit leaves headroom under Telegram's 4096 character message
// limit so part framing never pushes a part over it.
const DefaultSoftLimit = 3900

const partFrame = "Part %d/%d\n\n%s"

// Service formats notifications and delivers them through named bots. It
// splits long messages into framed parts, throttles sends through a shared
// rate limiter and retries rate-limited sends per its backoff policy.
//
// A Service is safe for concurrent use.
type Service struct {
	provider        yabotconfig.Provider
	formatter       Formatter
	policy          yaretry.Policy
	softLimit       int
	captionStrategy yacaption.Strategy
	factory         yatgapi.ClientFactory
	limiter         *rate.Limiter
	log             yalogger.Logger

	mu      sync.Mutex
	clients map[string]yatgapi.Client
}

// Option configures a Service.
type Option func(*Service)

// WithSoftLimit overrides the per-part character budget used when splitting
// long messages.
func WithSoftLimit(limit int) Option {
	return func(s *Service) {
		s.softLimit = limit
	}
}

// WithCaptionStrategy selects what happens to media captions longer than
// Telegram's caption limit. The default carries the overflow over into
// follow-up messages.
func WithCaptionStrategy(strategy yacaption.Strategy) Option {
	return func(s *Service) {
		s.captionStrategy = strategy
	}
}

// WithClientFactory substitutes the transport constructor. Tests use this to
// inject fakes.
func WithClientFactory(factory yatgapi.ClientFactory) Option {
	return func(s *Service) {
		s.factory = factory
	}
}

// WithRateLimit replaces the default limiter of one send per second.
func WithRateLimit(limiter *rate.Limiter) Option {
	return func(s *Service) {
		s.limiter = limiter
	}
}

// WithLogger replaces the default logger.
func WithLogger(log yalogger.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// NewService validates and creates a notification service.
//
// Example usage:
//
//	service, err := yanotify.NewService(provider, formatter, yaretry.Default())
func NewService(
	provider yabotconfig.Provider,
	formatter Formatter,
	policy yaretry.Policy,
	opts ...Option,
) (*Service, yaerrors.Error) {
	if provider == nil {
		return nil, yaerrors.FromString(http.StatusBadRequest, "provider cannot be nil")
	}

	if formatter == nil {
		return nil, yaerrors.FromString(http.StatusBadRequest, "formatter cannot be nil")
	}

	service := &Service{
		provider:        provider,
		formatter:       formatter,
		policy:          policy,
		softLimit:       DefaultSoftLimit,
		captionStrategy: yacaption.StrategySendRest,
		factory:         yatgapi.NewBotClient,
		limiter:         rate.NewLimiter(rate.Limit(1), 1),
		clients:         make(map[string]yatgapi.Client),
	}

	for _, opt := range opts {
		opt(service)
	}

	if service.softLimit <= 0 {
		return nil, yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("soft limit must be positive, got %d", service.softLimit),
		)
	}

	if service.factory == nil {
		return nil, yaerrors.FromString(http.StatusBadRequest, "client factory cannot be nil")
	}

	if service.limiter == nil {
		return nil, yaerrors.FromString(http.StatusBadRequest, "rate limiter cannot be nil")
	}

	if service.log == nil {
		service.log = yalogger.NewBaseLogger(nil).NewLogger()
	}

	return service, nil
}

// Send formats the message with its severity template and delivers it through
// the named bot, splitting it into framed parts when it exceeds the soft
// limit.
//
// Example usage:
//
//	err := service.Send(ctx, "alerts", msg)
func (s *Service) Send(ctx context.Context, botName string, msg *Message) yaerrors.Error {
	text, err := s.formatter.Format(msg)
	if err != nil {
		return err.Wrap("failed to send notification")
	}

	return s.SendText(ctx, botName, text)
}

// SendWithDialect formats the message with the default templates of another
// dialect and delivers it through the named bot. The service's own formatter
// is not consulted.
func (s *Service) SendWithDialect(
	ctx context.Context,
	botName string,
	msg *Message,
	dialect yamarkup.Dialect,
) yaerrors.Error {
	formatter, err := NewFormatter(dialect)
	if err != nil {
		return err.Wrap("failed to send notification")
	}

	text, err := formatter.Format(msg)
	if err != nil {
		return err.Wrap("failed to send notification")
	}

	client, err := s.clientFor(botName)
	if err != nil {
		return err.Wrap("failed to send notification")
	}

	return s.deliver(ctx, botName, client, text, dialect)
}

// SendWithTemplate formats the message with a caller-supplied template and
// delivers it through the named bot.
func (s *Service) SendWithTemplate(
	ctx context.Context,
	botName string,
	msg *Message,
	template string,
) yaerrors.Error {
	text, err := s.formatter.FormatWithTemplate(msg, template)
	if err != nil {
		return err.Wrap("failed to send notification")
	}

	return s.SendText(ctx, botName, text)
}

// SendText delivers already rendered text through the named bot. The text
// must be valid in the service's dialect.
func (s *Service) SendText(ctx context.Context, botName string, text string) yaerrors.Error {
	client, err := s.clientFor(botName)
	if err != nil {
		return err.Wrap("failed to send notification")
	}

	return s.deliver(ctx, botName, client, text, s.formatter.Dialect())
}

// SendPhoto sends a photo through the named bot. Captions longer than
// Telegram's caption limit are resolved with the configured caption strategy;
// overflow is delivered as follow-up messages after the photo.
//
// Example usage:
//
//	err := service.SendPhoto(ctx, "alerts", yatgapi.PhotoByURL{URL: chartURL}, caption)
func (s *Service) SendPhoto(
	ctx context.Context,
	botName string,
	source yatgapi.PhotoSource,
	caption string,
) yaerrors.Error {
	client, err := s.clientFor(botName)
	if err != nil {
		return err.Wrap("failed to send photo")
	}

	result, err := yacaption.Process(caption, s.captionStrategy, s.formatter.Dialect())
	if err != nil {
		return err.Wrap("failed to send photo")
	}

	log := s.log.WithBotName(botName)

	sendErr := s.sendWithRetry(ctx, log, func() error {
		_, err := client.SendPhoto(ctx, source, result.Caption, s.formatter.Dialect())

		return err
	})
	if sendErr != nil {
		return sendErr.Wrap("failed to send photo")
	}

	if result.HasRemaining() {
		return s.deliver(ctx, botName, client, result.Remaining, s.formatter.Dialect())
	}

	return nil
}

// SendDocument sends a document through the named bot, handling over-long
// captions the same way SendPhoto does.
func (s *Service) SendDocument(
	ctx context.Context,
	botName string,
	source yatgapi.DocumentSource,
	caption string,
) yaerrors.Error {
	client, err := s.clientFor(botName)
	if err != nil {
		return err.Wrap("failed to send document")
	}

	result, err := yacaption.Process(caption, s.captionStrategy, s.formatter.Dialect())
	if err != nil {
		return err.Wrap("failed to send document")
	}

	log := s.log.WithBotName(botName)

	sendErr := s.sendWithRetry(ctx, log, func() error {
		_, err := client.SendDocument(ctx, source, result.Caption, s.formatter.Dialect())

		return err
	})
	if sendErr != nil {
		return sendErr.Wrap("failed to send document")
	}

	if result.HasRemaining() {
		return s.deliver(ctx, botName, client, result.Remaining, s.formatter.Dialect())
	}

	return nil
}

// deliver splits text into parts, frames them when there is more than one and
// sends them in order through the shared rate limiter.
func (s *Service) deliver(
	ctx context.Context,
	botName string,
	client yatgapi.Client,
	text string,
	dialect yamarkup.Dialect,
) yaerrors.Error {
	parts, err := yasplit.SafeSplit(text, s.softLimit, dialect)
	if err != nil {
		return err.Wrap("failed to deliver notification")
	}

	log := s.log.WithBotName(botName)

	if len(parts) > 1 {
		log.Debugf("splitting notification into %d parts", len(parts))

		for i, part := range parts {
			parts[i] = fmt.Sprintf(partFrame, i+1, len(parts), part)
		}
	}

	for _, part := range parts {
		if limitErr := s.limiter.Wait(ctx); limitErr != nil {
			return yaerrors.FromError(
				http.StatusRequestTimeout,
				limitErr,
				"rate limiter wait cancelled",
			)
		}

		sendErr := s.sendWithRetry(ctx, log, func() error {
			_, err := client.SendMessage(ctx, part, dialect)

			return err
		})
		if sendErr != nil {
			return sendErr.Wrap("failed to deliver notification")
		}
	}

	return nil
}

// sendWithRetry runs send, retrying rate-limited failures per the policy.
// Attempt counts completed failures, so the first retry waits the base delay
// unless the server supplied a retry-after hint.
func (s *Service) sendWithRetry(
	ctx context.Context,
	log yalogger.Logger,
	send func() error,
) yaerrors.Error {
	for attempt := 0; ; attempt++ {
		err := send()
		if err == nil {
			return nil
		}

		if !yatgerrors.IsRetryable(err) || !s.policy.ShouldRetry(attempt) {
			return yaerrors.FromError(errorCode(err), err, "send failed")
		}

		hint, _ := yatgerrors.RetryAfterHint(err)

		delay, delayErr := s.policy.For429(attempt, hint)
		if delayErr != nil {
			return delayErr.Wrap("failed to compute retry delay")
		}

		log.Warnf("rate limited, retry %d in %s", attempt+1, delay)

		if waitErr := yaretry.Wait(ctx, delay); waitErr != nil {
			return waitErr.Wrap("send abandoned")
		}
	}
}

// clientFor returns the cached client for the bot name, creating it on first
// use.
func (s *Service) clientFor(botName string) (yatgapi.Client, yaerrors.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if client, ok := s.clients[botName]; ok {
		return client, nil
	}

	cfg, ok := s.provider.Get(botName)
	if !ok {
		return nil, yaerrors.FromString(
			http.StatusNotFound,
			fmt.Sprintf("bot %q is not registered", botName),
		)
	}

	client, err := s.factory(cfg, s.log)
	if err != nil {
		return nil, err.Wrap(fmt.Sprintf("failed to create client for bot %q", botName))
	}

	s.clients[botName] = client

	return client, nil
}

func errorCode(err error) int {
	var apiErr *yatgerrors.APIError
	if errors.As(err, &apiErr) && apiErr.Code != 0 {
		return apiErr.Code
	}

	return http.StatusBadGateway
}
