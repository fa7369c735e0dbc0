package fracray

// Channel indices for readability.
const (
	ChR = 0
	ChG = 1
	ChB = 2

	Width  = 500
	Height = 500

	ConvergenceThreshold = 0.001
	MaxIterations        = 16 * 16 * 16
	BandsPerWorker       = 8  // row bands per worker for the static strategy
	BisectRows           = 16 // bisection stops splitting at this band height
	Ambient              = 15 // ambient intensity added to every channel
	ShadowEpsilon        = 1e-3
	ZoomFactor           = 0.8
	GIFDelay             = 10 // 100ths of a second per frame
	Output               = "out.png"

	// a hit closer than this to the ray origin is the surface the ray left from
	epsDist = 1e-12
)
