package metrics

import (
	"github.com/kilianp07/naukma-schedule/core/factory"
	coremetrics "github.com/kilianp07/naukma-schedule/core/metrics"
)

// init registers built-in metrics sinks.
func init() {
	_ = coremetrics.RegisterSink("nop", func(map[string]any) (coremetrics.IngestSink, error) {
		return coremetrics.NopSink{}, nil
	})

	_ = coremetrics.RegisterSink("prometheus", func(conf map[string]any) (coremetrics.IngestSink, error) {
		var c struct {
			Textfile string `json:"textfile"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewPromSink(c.Textfile)
	})
}
