package events

import (
	"encoding/json"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const mqttPublishQoS = 1
const mqttPublishRetain = false

var errConnectTimeout = errors.New("mqtt connect timed out")

// mqttPayload is the wire shape published for every event: a small JSON
// envelope over MQTT.
type mqttPayload struct {
	Timestamp     int64         `json:"timestamp"`
	EventID       string        `json:"event_id"`
	Severity      string        `json:"severity"`
	Template      string        `json:"template"`
	Args          []interface{} `json:"args"`
	CorrelationID string        `json:"correlation_id"`
}

// MQTTSink publishes every emitted event as JSON to a topic, for a ground
// control station already subscribed to the vehicle's MQTT broker.
type MQTTSink struct {
	client mqtt.Client
	topic  string
}

func NewMQTTSink(client mqtt.Client, topic string) *MQTTSink {
	return &MQTTSink{client: client, topic: topic}
}

// DialMQTT connects to broker and returns a ready Client, or an error if
// the connection doesn't come up within a few seconds.
func DialMQTT(broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID)

	client := mqtt.NewClient(opts)

	tok := client.Connect()
	if err := tok.Error(); err != nil {
		return nil, err
	}
	if !tok.WaitTimeout(5 * time.Second) {
		return nil, errConnectTimeout
	}
	if err := tok.Error(); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *MQTTSink) Emit(r Record) {
	b, err := json.Marshal(mqttPayload{
		Timestamp:     time.Now().UTC().UnixMilli(),
		EventID:       r.ID,
		Severity:      r.Severity.String(),
		Template:      r.Template,
		Args:          r.Args,
		CorrelationID: r.CorrelationID,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal event for MQTT sink")
		return
	}

	tok := s.client.Publish(s.topic, mqttPublishQoS, mqttPublishRetain, b)
	if !tok.WaitTimeout(time.Second) {
		log.Warn().Str("topic", s.topic).Msg("MQTT publish timed out")
	}
}
