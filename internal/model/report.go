package model

// TrialStatus represents the outcome of testing one mutant.
type TrialStatus string

const (
	// Killed indicates the test command failed against the mutant.
	Killed TrialStatus = "killed"
	// Survived indicates the test command passed against the mutant.
	Survived TrialStatus = "survived"
	// Timeout indicates the test command exceeded the per-mutation timeout.
	Timeout TrialStatus = "timeout"
	// Errored indicates the trial could not be executed at all.
	Errored TrialStatus = "errored"
)

// TrialReport records the outcome of one mutant trial.
type TrialReport struct {
	Mutation Mutation    `yaml:"mutation"`
	Source   Path        `yaml:"source"`
	Status   TrialStatus `yaml:"status"`
	// Output holds the tail of the test command output, kept for surviving
	// and errored mutants so they can be investigated later.
	Output string `yaml:"output,omitempty"`
	// Patch is the unified diff of the mutant against the original.
	Patch string `yaml:"patch,omitempty"`
}

// FileResult groups trial reports for a single source file.
type FileResult struct {
	Source  Path          `yaml:"source"`
	Reports []TrialReport `yaml:"reports"`
}
