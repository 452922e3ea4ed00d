package main

import (
	"testing"

	"gotest.tools/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := defaultSettings()
	assert.Equal(t, s.GetInt(sI2CBus), 1)
	assert.Equal(t, s.GetByte(sI2CAddr), byte(0x70))
	assert.Equal(t, s.GetString(sI2CDriver), "raw")
	assert.Equal(t, s.GetBool(sZeroChip), false)
	assert.Equal(t, s.GetInt(sBrightness), 3)
}

func TestSettingsFromJSON(t *testing.T) {
	s := defaultSettings()
	data := []byte(`{
		"i2c_bus": 0,
		"i2c_address": 113,
		"zero_at_chip": true,
		"brightness": 9,
		"buttons": "rpio",
		"listen": ""
	}`)
	assert.NilError(t, s.settingsFromJSON(data))

	assert.Equal(t, s.GetInt(sI2CBus), 0)
	// 113 == 0x71, the next solder-jumper address
	assert.Equal(t, s.GetByte(sI2CAddr), byte(0x71))
	assert.Equal(t, s.GetBool(sZeroChip), true)
	assert.Equal(t, s.GetInt(sBrightness), 9)
	assert.Equal(t, s.GetString(sButtons), "rpio")
	assert.Equal(t, s.GetString(sListen), "")

	// untouched keys keep their defaults
	assert.Equal(t, s.GetString(sI2CDriver), "raw")
	assert.Equal(t, s.GetInt(sPinUp), 19)
}

func TestSettingsTypeFallbacks(t *testing.T) {
	s := defaultSettings()
	// wrong-type lookups come back zeroed, not panicking
	assert.Equal(t, s.GetString(sI2CBus), "")
	assert.Equal(t, s.GetInt(sI2CDriver), 0)
	assert.Equal(t, s.GetByte(sI2CBus), byte(1))
}
