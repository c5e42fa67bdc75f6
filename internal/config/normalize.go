package config

// Normalize fills in defaults for fields the user is allowed to omit.
func Normalize(spec *Spec) {
	if spec.Queue.CheckTime == 0 {
		spec.Queue.CheckTime = spec.Queue.IdleAge / 10
	}
	if spec.Queue.EraseAge == 0 {
		spec.Queue.EraseAge = spec.Queue.IdleAge
	}
	if spec.Queue.WinSize == 0 {
		spec.Queue.WinSize = 30
	}
	if spec.Registry.Path == "" {
		spec.Registry.Path = "clients.yaml"
	}
	if spec.Demo.RequestsPerSec == nil {
		spec.Demo.RequestsPerSec = map[string]float64{}
	}
	if spec.Demo.DurationSecs == 0 {
		spec.Demo.DurationSecs = 10
	}
	if spec.Demo.Render == "" {
		spec.Demo.Render = "headless"
	}
}
