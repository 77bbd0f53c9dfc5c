package model

// TargetStatus is the outcome of rerouting one object file.
type TargetStatus string

const (
	// StatusRerouted indicates the file was rewritten.
	StatusRerouted TargetStatus = "rerouted"
	// StatusUnchanged indicates nothing in the file needed a mock.
	StatusUnchanged TargetStatus = "unchanged"
	// StatusPlanned indicates a dry run found names to reroute but left the file alone.
	StatusPlanned TargetStatus = "planned"
	// StatusFailed indicates planning or rewriting failed.
	StatusFailed TargetStatus = "failed"
	// StatusCanceled indicates the run stopped before the file was processed.
	StatusCanceled TargetStatus = "canceled"
)

// TargetResult records what happened to a single target object file.
type TargetResult struct {
	Path     Path         `yaml:"path"`
	Status   TargetStatus `yaml:"status"`
	Rerouted []Symbol     `yaml:"rerouted,omitempty"`
	Error    string       `yaml:"error,omitempty"`
	Err      error        `yaml:"-"`
}

// RerouteReport is the persisted summary of a reroute run.
type RerouteReport struct {
	Prefix   string         `yaml:"prefix"`
	Mocks    []Path         `yaml:"mocks"`
	Registry []Symbol       `yaml:"registry"`
	DryRun   bool           `yaml:"dry_run"`
	Targets  []TargetResult `yaml:"targets"`
}

// Failed returns the results whose status is StatusFailed.
func (r RerouteReport) Failed() []TargetResult {
	var failed []TargetResult

	for _, target := range r.Targets {
		if target.Status == StatusFailed {
			failed = append(failed, target)
		}
	}

	return failed
}
