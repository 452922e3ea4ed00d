package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gotest.tools/assert"

	"dscheirer.com/bargraph/bargraph_backpack"
)

func testService() (*httpConfigService, runtimeConfig) {
	rt := initTestRuntime(testSettings())
	svc := &httpConfigService{}
	svc.handler = newAPIHandler(&rt)
	return svc, rt
}

func doRequest(svc *httpConfigService, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	svc.routes().ServeHTTP(w, req)
	return w
}

func TestAPIStatus(t *testing.T) {
	svc, _ := testService()

	w := doRequest(svc, "GET", "/api/status", "")
	assert.Equal(t, w.Code, http.StatusOK)

	var state apiState
	assert.NilError(t, json.NewDecoder(w.Body).Decode(&state))
	assert.Equal(t, state.Brightness, 3)
	assert.Equal(t, state.On, true)
}

func TestAPILevel(t *testing.T) {
	svc, rt := testService()

	// no color: zone-colored meter
	w := doRequest(svc, "POST", "/api/level", `{"level":12}`)
	assert.Equal(t, w.Code, http.StatusOK)
	e := effectRead(t, rt.comms.effects)
	assert.Equal(t, e.id, eMeter)
	v, _ := toInt(e.val)
	assert.Equal(t, v, 12)

	// explicit color: solid fill
	w = doRequest(svc, "POST", "/api/level", `{"level":8,"color":"green"}`)
	assert.Equal(t, w.Code, http.StatusOK)
	e = effectRead(t, rt.comms.effects)
	assert.Equal(t, e.id, eLevel)
	ls, _ := toLevelSet(e.val)
	assert.Equal(t, ls.level, 8)
	assert.Equal(t, ls.color, bargraph_backpack.COLOR_GREEN)

	// junk is rejected before it reaches the display
	w = doRequest(svc, "POST", "/api/level", `{"level":99}`)
	assert.Equal(t, w.Code, http.StatusBadRequest)
	w = doRequest(svc, "POST", "/api/level", `{"level":5,"color":"mauve"}`)
	assert.Equal(t, w.Code, http.StatusBadRequest)
	assert.Equal(t, len(rt.comms.effects), 0)
}

func TestAPIBar(t *testing.T) {
	svc, rt := testService()

	w := doRequest(svc, "POST", "/api/bar", `{"bar":23,"color":"amber"}`)
	assert.Equal(t, w.Code, http.StatusOK)
	e := effectRead(t, rt.comms.effects)
	assert.Equal(t, e.id, eBar)
	bs, _ := toBarSet(e.val)
	assert.Equal(t, bs.bar, 23)
	assert.Equal(t, bs.color, bargraph_backpack.COLOR_AMBER)

	w = doRequest(svc, "POST", "/api/bar", `{"bar":24,"color":"red"}`)
	assert.Equal(t, w.Code, http.StatusBadRequest)
}

func TestAPIBrightnessAndBlink(t *testing.T) {
	svc, rt := testService()

	// out of range brightness is accepted; the driver clamps it
	w := doRequest(svc, "POST", "/api/brightness", `{"level":20}`)
	assert.Equal(t, w.Code, http.StatusOK)
	e := effectRead(t, rt.comms.effects)
	assert.Equal(t, e.id, eBrightness)

	// blink is strict, matching the driver
	w = doRequest(svc, "POST", "/api/blink", `{"rate":2}`)
	assert.Equal(t, w.Code, http.StatusOK)
	e = effectRead(t, rt.comms.effects)
	assert.Equal(t, e.id, eBlink)

	w = doRequest(svc, "POST", "/api/blink", `{"rate":4}`)
	assert.Equal(t, w.Code, http.StatusBadRequest)
	assert.Equal(t, len(rt.comms.effects), 0)
}

func TestAPIPowerAndSweep(t *testing.T) {
	svc, rt := testService()

	w := doRequest(svc, "POST", "/api/power", `{"on":false}`)
	assert.Equal(t, w.Code, http.StatusOK)
	e := effectRead(t, rt.comms.effects)
	assert.Equal(t, e.id, ePower)

	w = doRequest(svc, "POST", "/api/sweep", `{"on":true}`)
	assert.Equal(t, w.Code, http.StatusOK)
	e = effectRead(t, rt.comms.effects)
	assert.Equal(t, e.id, eSweep)

	// status reflects the last commands
	w = doRequest(svc, "GET", "/api/status", "")
	var state apiState
	assert.NilError(t, json.NewDecoder(w.Body).Decode(&state))
	assert.Equal(t, state.On, false)
	assert.Equal(t, state.Sweep, true)
}
