package config

import "strings"

// Validate enforces the engine constructor's precondition (erase_age >=
// idle_age, check_time < idle_age) plus positivity of the rates that
// feed tag arithmetic, collecting every violation instead of stopping
// at the first.
func Validate(spec *Spec) error {
	collector := &issueCollector{}

	validateQueue(spec.Queue, collector.add)
	if strings.TrimSpace(spec.Registry.Path) == "" {
		collector.add("registry.path", "is required")
	}
	validateDemo(spec.Demo, collector.add)

	return collector.result()
}

func validateQueue(q QueueSpec, add issueAdder) {
	if q.SystemCapacity <= 0 {
		add("queue.system_capacity", "must be > 0")
	}
	if q.WinSize <= 0 {
		add("queue.win_size", "must be > 0")
	}
	if q.IdleAge <= 0 {
		add("queue.idle_age", "must be > 0")
	}
	if q.EraseAge < q.IdleAge {
		add("queue.erase_age", "must be >= idle_age")
	}
	if q.CheckTime >= q.IdleAge {
		add("queue.check_time", "must be < idle_age")
	}
	if q.AnticipationTimeout < 0 {
		add("queue.anticipation_timeout", "must be >= 0")
	}
}

func validateDemo(d DemoSpec, add issueAdder) {
	if d.DurationSecs <= 0 {
		add("demo.duration_secs", "must be > 0")
	}
	if d.Render != "live" && d.Render != "headless" {
		add("demo.render", "must be \"live\" or \"headless\"")
	}
	for class, rate := range d.RequestsPerSec {
		if rate < 0 {
			add("demo.requests_per_sec["+class+"]", "must be >= 0")
		}
	}
}
