package main

import (
	"flag"
	"io/ioutil"
	"log"
	"runtime"
	"time"

	"github.com/buger/jsonparser"
)

// settings keys
const (
	sI2CBus     = "i2c_bus"
	sI2CAddr    = "i2c_address"
	sI2CSim     = "i2c_simulated"
	sI2CDriver  = "i2c_driver" // "raw" (/dev/i2c ioctl) or "periph"
	sPeriphBus  = "periph_bus" // bus name for the periph driver, "" = first
	sZeroChip   = "zero_at_chip"
	sBrightness = "brightness"
	sSweep      = "sweep"
	sListen     = "listen"
	sLogFile    = "logFile"
	sButtons    = "buttons" // "rpio", "keyboard" or "none"
	sPinUp      = "pin_up"
	sPinDown    = "pin_down"
	sPinPower   = "pin_power"
)

// keep settings generic strings, type-convert on the fly
type configSettings struct {
	settings map[string]interface{}
}

func defaultSettings() configSettings {
	s := make(map[string]interface{})

	// setting the type here makes the conversion "automatic" later
	s[sI2CBus] = 1
	s[sI2CAddr] = byte(0x70)
	s[sI2CDriver] = "raw"
	s[sPeriphBus] = ""
	s[sZeroChip] = false
	s[sBrightness] = 3
	s[sSweep] = false
	s[sListen] = "localhost:8080"
	s[sLogFile] = ""
	s[sButtons] = "none"
	// GPIO 4 collides with i2c operations, stay clear of it
	s[sPinUp] = 19
	s[sPinDown] = 26
	s[sPinPower] = 13

	// no real bus off the pi
	on := true
	if runtime.GOARCH == "arm" {
		on = false
	}
	s[sI2CSim] = on

	return configSettings{settings: s}
}

func (s *configSettings) settingsFromJSON(data []byte) error {
	tmp := defaultSettings()
	for k, initVal := range tmp.settings {
		// ignore missing fields
		switch initVal.(type) {
		case byte:
			val, err := jsonparser.GetInt(data, k)
			if err == nil {
				s.settings[k] = byte(val)
			}
		case int:
			val, err := jsonparser.GetInt(data, k)
			if err == nil {
				s.settings[k] = int(val)
			}
		case bool:
			val, err := jsonparser.GetBoolean(data, k)
			if err == nil {
				s.settings[k] = val
			}
		case time.Duration:
			val, err := jsonparser.GetString(data, k)
			if err == nil {
				dur, err2 := time.ParseDuration(val)
				if err2 != nil {
					return err2
				}
				s.settings[k] = dur
			}
		case string:
			val, err := jsonparser.GetString(data, k)
			if err == nil {
				s.settings[k] = val
			}
		}
	}
	return nil
}

// initSettings builds the runtime settings: defaults, then the
// -config file on top when there is one
func initSettings() configSettings {
	s := defaultSettings()

	configFile := flag.String("config", "", "config file path")
	flag.Parse()

	if *configFile == "" {
		return s
	}

	data, err := ioutil.ReadFile(*configFile)
	if err != nil {
		log.Fatalf("Could not load conf file '%s', terminating", *configFile)
	}

	log.Printf("Reading configuration from '%s'", *configFile)
	if err := s.settingsFromJSON(data); err != nil {
		log.Fatal(err.Error())
	}

	return s
}

func (s *configSettings) GetString(key string) string {
	switch v := s.settings[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

func (s *configSettings) GetBool(key string) bool {
	switch v := s.settings[key].(type) {
	case bool:
		return v
	default:
		return false
	}
}

func (s *configSettings) GetDuration(key string) time.Duration {
	switch v := s.settings[key].(type) {
	case time.Duration:
		return v
	default:
		return -1
	}
}

func (s *configSettings) GetByte(key string) byte {
	switch v := s.settings[key].(type) {
	case byte:
		return v
	case int: // cast to byte
		return byte(v)
	default:
		return 0
	}
}

func (s *configSettings) GetInt(key string) int {
	switch v := s.settings[key].(type) {
	case int:
		return v
	default:
		return 0
	}
}

func (s *configSettings) Dump() {
	for k, v := range s.settings {
		log.Printf("%s : %T: %v\n", k, v, v)
	}
}
