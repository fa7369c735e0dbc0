package fracray

var (
	RAW              = false // set to true to also dump the raw frame next to the image
	StrategyOverride = ""    // overrides the configured scheduling strategy when non-empty
)
