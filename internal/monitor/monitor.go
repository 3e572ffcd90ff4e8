package monitor

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/whisperctl/whisperctl/internal/config"
	"github.com/whisperctl/whisperctl/internal/iputils"
	"github.com/whisperctl/whisperctl/internal/logging"
	"github.com/whisperctl/whisperctl/internal/status"
)

// StatusTopic is where recording transitions are announced
const StatusTopic = "whisperctl/status"

var mqttClient mqtt.Client

// Announce connects to the configured broker and republishes status messages
// as they arrive on status.StatusChan. A retained message keeps the last
// known state visible to late subscribers. Does nothing when no broker is
// configured.
func Announce(cfg config.Config) {
	if cfg.Broker == "" {
		return
	}

	broker := cfg.Broker
	if !strings.Contains(broker, ":") {
		broker = broker + ":1883"
	}
	mqttAddress := fmt.Sprintf("tcp://%s", broker)
	opts := mqtt.NewClientOptions().AddBroker(mqttAddress)

	// Use the machine's IP address for a unique client ID
	ip, err := iputils.LocalIPv4()
	if err != nil {
		logging.ErrorLogger.Printf("Failed to get local IP address: %v", err)
		return
	}
	opts.SetClientID(fmt.Sprintf("whisperctl-%s", ip))
	opts.SetAutoReconnect(true)

	mqttClient = mqtt.NewClient(opts)
	if token := mqttClient.Connect(); token.Wait() && token.Error() != nil {
		logging.ErrorLogger.Printf("Failed to connect to MQTT broker: %v", token.Error())
		return
	}

	// Wait for connection to be established
	attempts := 0
	maxAttempts := 5
	for !mqttClient.IsConnected() && attempts < maxAttempts {
		time.Sleep(100 * time.Millisecond)
		attempts++
	}

	if !mqttClient.IsConnected() {
		logging.ErrorLogger.Printf("Failed to establish MQTT connection after %d attempts", maxAttempts)
		return
	}

	logging.InfoLogger.Printf("MQTT announcements started on %s", mqttAddress)

	go func() {
		for msg := range status.StatusChan {
			payload, err := json.Marshal(msg)
			if err != nil {
				continue
			}
			if token := mqttClient.Publish(StatusTopic, 0, true, payload); token.Wait() && token.Error() != nil {
				logging.ErrorLogger.Printf("Failed to publish status to %s: %v", StatusTopic, token.Error())
			}
		}
	}()
}

// Disconnect closes the broker connection if one was established
func Disconnect() {
	if mqttClient != nil && mqttClient.IsConnected() {
		mqttClient.Disconnect(250)
	}
}
