package helpdesksdk

import "time"

type viewConfig struct {
	locale   Locale
	location *time.Location
	notifier Notifier
}

// ViewOption configures the view models.
type ViewOption func(*viewConfig)

func WithLocale(l Locale) ViewOption {
	return func(c *viewConfig) { c.locale = l }
}

// WithLocation sets the time zone used to format timestamps.
func WithLocation(loc *time.Location) ViewOption {
	return func(c *viewConfig) { c.location = loc }
}

func WithNotifier(n Notifier) ViewOption {
	return func(c *viewConfig) {
		if n != nil {
			c.notifier = n
		}
	}
}

func newViewConfig(opts []ViewOption) viewConfig {
	cfg := viewConfig{locale: LocalePTBR, location: time.Local, notifier: nopNotifier{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c viewConfig) msg(key MessageKey) string {
	return Message(c.locale, key)
}
