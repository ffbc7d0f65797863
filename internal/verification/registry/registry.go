// Package registry resolves provider names to construct-once capability
// provider instances and exposes the convenience resolvers the orchestrator
// uses per check domain.
package registry

import (
	"fmt"
	"sync"

	"vouch/internal/platform/config"
	"vouch/internal/verification/policy"
	"vouch/internal/verification/providers"
	"vouch/internal/verification/providers/certiscreen"
	"vouch/internal/verification/providers/dojah"
	"vouch/internal/verification/providers/localcheck"
	"vouch/internal/verification/providers/smileid"
	"vouch/internal/verification/providers/termii"
)

// Registry caches one provider instance per name for the process lifetime.
// Construction is lazy on first resolve and safe under concurrent first use
// from simultaneous verification requests.
type Registry struct {
	cfg config.Providers

	mu        sync.Mutex
	instances map[string]providers.Provider
}

// New builds an empty registry over the vendor configuration.
func New(cfg config.Providers) *Registry {
	return &Registry{
		cfg:       cfg,
		instances: make(map[string]providers.Provider),
	}
}

// Resolve returns the singleton provider for a name, constructing it on
// first use.
func (r *Registry) Resolve(name string) (providers.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.instances[name]; ok {
		return p, nil
	}

	p, err := r.construct(name)
	if err != nil {
		return nil, err
	}
	r.instances[name] = p
	return p, nil
}

func (r *Registry) construct(name string) (providers.Provider, error) {
	switch name {
	case policy.ProviderSmileID:
		return smileid.New(r.cfg), nil
	case policy.ProviderDojah:
		return dojah.New(r.cfg), nil
	case policy.ProviderCertiscreen:
		return certiscreen.New(r.cfg), nil
	case policy.ProviderLocalCheck:
		return localcheck.New(), nil
	case policy.ProviderTermii:
		return termii.New(r.cfg), nil
	}
	return nil, fmt.Errorf("%w: %s", providers.ErrUnknownProvider, name)
}

// ForCountry resolves the primary provider for a country's document-family
// checks. Fallback entries in the routing table are not tried automatically;
// callers wanting fallback behavior iterate ProvidersForCountry explicitly.
func (r *Registry) ForCountry(country string) (providers.Provider, error) {
	names := policy.ProvidersForCountry(country)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w for country %s", providers.ErrNoProvider, country)
	}
	return r.Resolve(names[0])
}

// ProvidersForCountry resolves the country's full ordered provider list,
// primary first.
func (r *Registry) ProvidersForCountry(country string) ([]providers.Provider, error) {
	names := policy.ProvidersForCountry(country)
	resolved := make([]providers.Provider, 0, len(names))
	for _, name := range names {
		p, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, p)
	}
	return resolved, nil
}

// Email returns the fixed email-check provider.
func (r *Registry) Email() providers.Provider {
	return r.mustResolve(policy.ProviderLocalCheck)
}

// Phone returns the SMS vendor when its credentials are configured, else the
// built-in pattern checker.
func (r *Registry) Phone() providers.Provider {
	if r.cfg.Termii.Configured() {
		return r.mustResolve(policy.ProviderTermii)
	}
	return r.mustResolve(policy.ProviderLocalCheck)
}

// AML returns the fixed screening provider.
func (r *Registry) AML() providers.Provider {
	return r.mustResolve(policy.ProviderCertiscreen)
}

// mustResolve backs the fixed resolvers; the names it receives are
// compile-time constants that construct cannot reject.
func (r *Registry) mustResolve(name string) providers.Provider {
	p, err := r.Resolve(name)
	if err != nil {
		panic(fmt.Sprintf("registry: fixed provider %s failed to construct: %v", name, err))
	}
	return p
}
