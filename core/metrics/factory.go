package metrics

import "github.com/kilianp07/naukma-schedule/core/factory"

var sinkRegistry = factory.NewRegistry[IngestSink]()

// RegisterSink adds a sink factory identified by name.
func RegisterSink(name string, f factory.Factory[IngestSink]) error {
	return sinkRegistry.Register(name, f)
}

// NewSink creates an IngestSink from the provided configuration.
func NewSink(cfgs []factory.ModuleConfig) (IngestSink, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	if len(cfgs) == 1 {
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]IngestSink, len(cfgs))
	for i, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			return nil, err
		}
		sinks[i] = s
	}
	return NewMultiSink(sinks...), nil
}
