package export

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kilianp07/naukma-schedule/core/factory"
	coremqtt "github.com/kilianp07/naukma-schedule/core/mqtt"
	"github.com/kilianp07/naukma-schedule/core/schedule"
	"github.com/kilianp07/naukma-schedule/infra/mqtt"
)

// DefaultTopic receives the schedule when no topic is configured.
const DefaultTopic = "naukma/schedule"

var newPublisher = func(cfg mqtt.Config) (coremqtt.Publisher, error) {
	return mqtt.NewPahoPublisher(cfg)
}

func init() {
	_ = Register("mqtt", func(conf map[string]any) (Exporter, error) {
		var c struct {
			Topic      string `json:"topic"`
			PerFaculty bool   `json:"per_faculty"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		var mc mqtt.Config
		if err := factory.Decode(conf, &mc); err != nil {
			return nil, err
		}
		return &MQTTExporter{Config: mc, Topic: c.Topic, PerFaculty: c.PerFaculty}, nil
	})
}

// MQTTExporter publishes the schedule as a retained JSON message. With
// PerFaculty every faculty is also published under `<topic>/<faculty>`.
type MQTTExporter struct {
	Config     mqtt.Config
	Topic      string
	PerFaculty bool
}

func (e *MQTTExporter) Export(ctx context.Context, s *schedule.Schedule) error {
	topic := strings.TrimSuffix(e.Topic, "/")
	if topic == "" {
		topic = DefaultTopic
	}
	pub, err := newPublisher(e.Config)
	if err != nil {
		return fmt.Errorf("mqtt connect: %w", err)
	}
	defer pub.Disconnect()

	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := pub.Publish(ctx, topic, payload, true); err != nil {
		return err
	}
	if !e.PerFaculty {
		return nil
	}
	for _, f := range s.FacultyList() {
		payload, err := json.Marshal(f)
		if err != nil {
			return err
		}
		if err := pub.Publish(ctx, topic+"/"+f.Name, payload, true); err != nil {
			return err
		}
	}
	return nil
}
