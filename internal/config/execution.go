package config

// ExecutionConfig configures how solvers run.
type ExecutionConfig struct {
	// Maximum number of days solved at once
	Parallelism int `yaml:"parallelism"`

	// Timeout for a whole run, as a Go duration
	Timeout string `yaml:"timeout"`
}
