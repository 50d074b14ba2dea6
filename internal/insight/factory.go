// Package insight turns a session's emissions into a prompt and asks a hosted
// language model for reduction advice.
package insight

import (
	"fmt"
	"sync"

	"smartcarbon/internal/config"
	"smartcarbon/internal/port"
)

// ProviderFactory creates an InsightGenerator from a provider config.
type ProviderFactory func(cfg *config.InsightProviderConfig) (port.InsightGenerator, error)

// registry of provider factories, populated by init() in each provider package
// or explicitly via RegisterProvider.
var (
	providersMu sync.RWMutex
	providers   = map[string]ProviderFactory{}
)

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providersMu.Lock()
	defer providersMu.Unlock()
	providers[name] = factory
}

// NewGenerator creates an InsightGenerator using the registered factory.
func NewGenerator(cfg *config.InsightProviderConfig) (port.InsightGenerator, error) {
	providersMu.RLock()
	factory, ok := providers[cfg.Provider]
	providersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown insight provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// NewChain builds the configured provider chain. A single provider is returned
// as is; two or more are wrapped in a FallbackGenerator.
func NewChain(cfg *config.InsightsConfig) (port.InsightGenerator, error) {
	configs := []*config.InsightProviderConfig{cfg.PrimaryConfig()}
	if s := cfg.SecondaryConfig(); s != nil {
		configs = append(configs, s)
	}
	if t := cfg.TertiaryConfig(); t != nil {
		configs = append(configs, t)
	}

	generators := make([]port.InsightGenerator, 0, len(configs))
	names := make([]string, 0, len(configs))
	for _, c := range configs {
		g, err := NewGenerator(c)
		if err != nil {
			return nil, err
		}
		generators = append(generators, g)
		names = append(names, c.Provider)
	}

	if len(generators) == 1 {
		return generators[0], nil
	}
	return NewFallbackGenerator(generators, names), nil
}

// ResolveAPIKey prefers the per-request key over the configured one.
// FallbackGenerator only forwards a request key to its first provider.
func ResolveAPIKey(requestKey, configured string) string {
	if requestKey != "" {
		return requestKey
	}
	return configured
}
