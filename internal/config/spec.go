// Package config loads, normalizes, and validates dmclockd's YAML
// configuration, grounded on the Load/Normalize/Validate pipeline shape
// of internal/config in the teacher repo.
package config

// QueueSpec configures the pkg/dmclock engine constructor.
type QueueSpec struct {
	SystemCapacity      float64 `yaml:"system_capacity"`
	WinSize             float64 `yaml:"win_size"`
	IdleAge             float64 `yaml:"idle_age"`
	EraseAge            float64 `yaml:"erase_age"`
	CheckTime           float64 `yaml:"check_time"`
	AllowLimitBreak     bool    `yaml:"allow_limit_break"`
	AnticipationTimeout float64 `yaml:"anticipation_timeout"`
}

// RegistrySpec locates the client-profile registry file.
type RegistrySpec struct {
	Path string `yaml:"path"`
}

// DemoSpec configures cmd/dmclockd's synthetic workload generators.
type DemoSpec struct {
	RequestsPerSec map[string]float64 `yaml:"requests_per_sec"`
	DurationSecs   float64            `yaml:"duration_secs"`
	Render         string             `yaml:"render"` // "live" or "headless"
}

// Spec is the top-level dmclockd configuration document.
type Spec struct {
	Queue    QueueSpec    `yaml:"queue"`
	Registry RegistrySpec `yaml:"registry"`
	Demo     DemoSpec     `yaml:"demo"`
}
