package telemetry

import (
	"sort"
	"strings"
	"time"

	"github.com/armon/go-metrics"
)

const (
	stepKey         = "step"
	durationSuffix  = "duration"
	failuresSuffix  = "failed"
	sinkInterval    = time.Minute
	sinkRetainCount = 10
)

// Recorder keeps step metrics of one process in memory.
type Recorder struct {
	service string
	metrics *metrics.Metrics
	sink    *metrics.InmemSink
}

func New(service string) (*Recorder, error) {
	sink := metrics.NewInmemSink(sinkInterval, sinkRetainCount*sinkInterval)

	conf := metrics.DefaultConfig(service)
	conf.EnableHostname = false
	conf.EnableRuntimeMetrics = false
	conf.TimerGranularity = time.Millisecond

	m, err := metrics.New(conf, sink)
	if err != nil {
		return nil, err
	}
	return &Recorder{service: service, metrics: m, sink: sink}, nil
}

// Measurer measures the duration of one step and counts its failures.
// It is not thread-safe.
type Measurer struct {
	recorder  *Recorder
	name      string
	startTime time.Time
}

func (r *Recorder) NewMeasurer(name string) *Measurer {
	return &Measurer{
		recorder:  r,
		name:      name,
		startTime: time.Now(),
	}
}

func (m *Measurer) Restart() {
	m.startTime = time.Now()
}

// Measure records the time since start. A non-nil err is also counted as a failure.
func (m *Measurer) Measure(err error) {
	m.recorder.metrics.MeasureSince([]string{stepKey, m.name, durationSuffix}, m.startTime)
	if err != nil {
		m.recorder.metrics.IncrCounter([]string{stepKey, m.name, failuresSuffix}, 1)
	}
}

type StepStat struct {
	Name     string
	Count    int
	Total    time.Duration
	Max      time.Duration
	Failures int
}

// Steps aggregates all retained intervals into per-step statistics sorted by name.
func (r *Recorder) Steps() []StepStat {
	prefix := r.service + "." + stepKey + "."
	stats := make(map[string]*StepStat)
	get := func(name string) *StepStat {
		if s, ok := stats[name]; ok {
			return s
		}
		s := &StepStat{Name: name}
		stats[name] = s
		return s
	}

	for _, interval := range r.sink.Data() {
		interval.RLock()
		for key, sample := range interval.Samples {
			name, ok := stepName(key, prefix, durationSuffix)
			if !ok {
				continue
			}
			s := get(name)
			s.Count += sample.Count
			s.Total += msToDuration(sample.Sum)
			if longest := msToDuration(sample.Max); longest > s.Max {
				s.Max = longest
			}
		}
		for key, counter := range interval.Counters {
			name, ok := stepName(key, prefix, failuresSuffix)
			if !ok {
				continue
			}
			get(name).Failures += int(counter.Sum)
		}
		interval.RUnlock()
	}

	res := make([]StepStat, 0, len(stats))
	for _, s := range stats {
		res = append(res, *s)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

func stepName(key, prefix, suffix string) (string, bool) {
	if !strings.HasPrefix(key, prefix) || !strings.HasSuffix(key, "."+suffix) {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(key, prefix), "."+suffix), true
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
