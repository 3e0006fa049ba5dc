package bot

// DepthForDifficulty maps the difficulty names used by the API to a search
// depth. Unknown names get the full depth.
func DepthForDifficulty(difficulty string) int {
	switch difficulty {
	case "easy":
		return 2
	case "medium":
		return 3
	default:
		return DefaultConfig().Depth
	}
}

// WithDifficulty returns a copy of cfg searching at the depth of difficulty.
func (cfg Config) WithDifficulty(difficulty string) Config {
	if difficulty == "" {
		return cfg
	}
	cfg.Depth = DepthForDifficulty(difficulty)
	return cfg
}
