package config

// GeneratorCfg selects and seeds one generator algorithm.
//
// Seed precedence, highest first: State (explicit registers), Seed
// (single value), SeedText (hashed to a value), otherwise the system
// entropy source.
type GeneratorCfg struct {
	// Algorithm is the four-character tag of the algorithm to construct
	// (for example "SpMx" or "XoSS"). Empty selects the default.
	Algorithm string `yaml:"algorithm"`

	// Seed is a single deterministic seed value. A pointer so that an
	// explicit seed of 0 is distinguishable from an absent one.
	Seed *uint64 `yaml:"seed"`

	// SeedText seeds deterministically from an arbitrary string, useful
	// for human-memorable world or session names.
	SeedText string `yaml:"seed_text"`

	// State sets the algorithm's registers verbatim (after forbidden
	// state repair). Length must equal the algorithm's register count.
	State []uint64 `yaml:"state"`
}

func (cfg *GeneratorCfg) Enabled() bool {
	return cfg != nil
}
