package help

import "github.com/Borislavv/go-ash-rand/config"

func Cfg() *config.Rand {
	c := &config.Rand{
		Generator: &config.GeneratorCfg{
			Algorithm: "XoSS",
		},
		Stream: &config.StreamCfg{
			Rate:   100,
			Count:  10,
			Format: "u64",
		},
	}
	c.AdjustConfig()
	return c
}

func SeededCfg(seed uint64) *config.Rand {
	c := Cfg()
	c.Generator.Seed = &seed
	return c
}

func SeedTextCfg(text string) *config.Rand {
	c := Cfg()
	c.Generator.SeedText = text
	return c
}

func StateCfg(state ...uint64) *config.Rand {
	c := Cfg()
	c.Generator.State = state
	return c
}
