package ashrand

import (
	"fmt"
	"log/slog"

	"github.com/Borislavv/go-ash-rand/config"
	"github.com/Borislavv/go-ash-rand/internal/shared/mix"
)

// New builds a generator from configuration: the algorithm is resolved by
// tag against the built-in registry and seeded according to the config's
// seed precedence (explicit registers, then numeric seed, then seed text,
// then system entropy).
func New(cfg *config.GeneratorCfg, logger *slog.Logger) (Generator, error) {
	return NewWithRegistry(NewRegistry(), cfg, logger)
}

// NewWithRegistry is New against a caller-assembled registry, for callers
// that register their own algorithms or doubles.
func NewWithRegistry(reg *Registry, cfg *config.GeneratorCfg, logger *slog.Logger) (Generator, error) {
	if !cfg.Enabled() {
		cfg = &config.GeneratorCfg{}
	}
	tag := cfg.Algorithm
	if tag == "" {
		tag = config.DefaultAlgorithm
	}

	g, err := reg.New(tag)
	if err != nil {
		return nil, fmt.Errorf("build generator: %w", err)
	}

	source := "entropy"
	switch {
	case len(cfg.State) > 0:
		if err = applyState(g, cfg.State); err != nil {
			return nil, fmt.Errorf("build generator %q: %w", tag, err)
		}
		source = "state"
	case cfg.Seed != nil:
		g.Seed(*cfg.Seed)
		source = "seed"
	case cfg.SeedText != "":
		g.Seed(mix.FromText(cfg.SeedText))
		source = "seed_text"
	}

	if logger != nil {
		logger.Debug("generator initialized",
			"algorithm", tag,
			"state_count", g.StateCount(),
			"seed_source", source,
		)
	}
	return g, nil
}

func applyState(g Generator, state []uint64) error {
	if !g.SupportsWriteAccess() {
		return fmt.Errorf("explicit state rejected: %w", ErrUnsupportedOperation)
	}
	if len(state) != g.StateCount() {
		return fmt.Errorf("state length %d, algorithm has %d registers: %w",
			len(state), g.StateCount(), ErrInvalidArgument)
	}
	for i, v := range state {
		if err := g.SetSelectedState(i, v); err != nil {
			return fmt.Errorf("set register %d: %w", i, err)
		}
	}
	return nil
}
