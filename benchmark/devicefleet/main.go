package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxDevices int = 2000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	deviceIDs := make([]string, maxDevices)
	for i := range maxDevices {
		deviceIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v device IDs\n", maxDevices)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			registerDevice(deviceIDs[i])
			fmt.Printf("\rregistered device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			doAction(deviceIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*3)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func postJSON(path string, payload map[string]any) {
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s%s", httpHostPort, path), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
}

func registerDevice(deviceID string) {
	jsonData, _ := json.Marshal(map[string]any{
		"device_id":     deviceID,
		"manufacturer":  "BenchCo",
		"model":         fmt.Sprintf("Fleet-%v", rnd.Int31n(10)),
		"os_version":    fmt.Sprintf("%v", 10+rnd.Int31n(5)),
		"battery_level": int(rnd.Int31n(101)),
	})
	resp, err := http.Post(fmt.Sprintf("http://%s/devices", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
}

func doAction(deviceID string) {
	actions := []func(){
		genHeartbeatAction(deviceID),
		genPostLocationAction(deviceID),
		genPostSmsAction(deviceID),
	}
	actionNames := []string{
		"Heartbeat",
		"PostLocation",
		"PostSms",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for device %v", actionNames[index], deviceID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genHeartbeatAction(deviceID string) func() {
	return func() {
		postJSON("/devices/heartbeat", map[string]any{
			"device_id":     deviceID,
			"battery_level": int(rnd.Int31n(101)),
			"is_charging":   flipCoin(),
		})
	}
}

func genPostLocationAction(deviceID string) func() {
	return func() {
		postJSON("/logs/location", map[string]any{
			"device_id": deviceID,
			"latitude":  rndFloat64(-90.0, 90.0, 6),
			"longitude": rndFloat64(-180.0, 180.0, 6),
			"accuracy":  rndFloat64(1.0, 50.0, 1),
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

func genPostSmsAction(deviceID string) func() {
	return func() {
		postJSON("/logs/sms", map[string]any{
			"device_id":    deviceID,
			"phone_number": fmt.Sprintf("+1555%07d", rnd.Int31n(10000000)),
			"message":      fmt.Sprintf("bench message %v", rnd.Int31n(100000)),
			"type":         "received",
			"timestamp":    time.Now().Format(time.RFC3339),
		})
	}
}
