package appconf

// Environment names the operating environment the application runs in. It
// mostly affects logging verbosity and a few test-only guard rails.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the value of the env flag/config key to an
// Environment. Unknown values fall back to Development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the application: the port
// the server listens on, the operating environment, the path of the source
// CSV, and the per-client rate limit. Values are merged from defaults, an
// optional config file and command-line flags before the server starts.
type Config struct {
	Port      int
	Env       Environment
	DataPath  string
	RateLimit int
}
