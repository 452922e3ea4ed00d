package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"golang.org/x/net/context"

	"dscheirer.com/bargraph/bargraph_backpack"
)

type apiResponse struct {
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// apiState is the last commanded display state; the device itself is
// write-only so this is all a status query can report
type apiState struct {
	Level      int   `json:"level"`
	Brightness int   `json:"brightness"`
	BlinkRate  uint8 `json:"blinkRate"`
	On         bool  `json:"on"`
	Sweep      bool  `json:"sweep"`
}

type apiHandler struct {
	rt    *runtimeConfig
	mutex sync.Mutex
	state apiState
}

func newAPIHandler(rt *runtimeConfig) *apiHandler {
	return &apiHandler{
		rt: rt,
		state: apiState{
			Brightness: rt.settings.GetInt(sBrightness),
			On:         true,
			Sweep:      rt.settings.GetBool(sSweep),
		},
	}
}

func parseColor(s string) (bargraph_backpack.BarColor, bool) {
	switch strings.ToLower(s) {
	case "off":
		return bargraph_backpack.COLOR_OFF, true
	case "red":
		return bargraph_backpack.COLOR_RED, true
	case "yellow", "amber":
		return bargraph_backpack.COLOR_YELLOW, true
	case "green":
		return bargraph_backpack.COLOR_GREEN, true
	default:
		return bargraph_backpack.COLOR_OFF, false
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func apiBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, apiResponse{Error: msg})
}

func apiOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, apiResponse{Response: "ok"})
}

func (m *apiHandler) apiStatus(w http.ResponseWriter, r *http.Request) {
	m.mutex.Lock()
	state := m.state
	m.mutex.Unlock()
	writeJSON(w, http.StatusOK, state)
}

func (m *apiHandler) apiLevel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Level int    `json:"level"`
		Color string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiBadRequest(w, err.Error())
		return
	}
	if req.Level < 0 || req.Level > bargraph_backpack.BAR_COUNT {
		apiBadRequest(w, "level out of range")
		return
	}

	if req.Color == "" {
		// no color means zone coloring
		m.rt.comms.effects <- meterEffect(req.Level)
	} else {
		color, ok := parseColor(req.Color)
		if !ok {
			apiBadRequest(w, "bad color: "+req.Color)
			return
		}
		m.rt.comms.effects <- setLevelEffect(req.Level, color)
	}

	m.mutex.Lock()
	m.state.Level = req.Level
	m.mutex.Unlock()
	apiOK(w)
}

func (m *apiHandler) apiBar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Bar   int    `json:"bar"`
		Color string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiBadRequest(w, err.Error())
		return
	}
	if req.Bar < 0 || req.Bar >= bargraph_backpack.BAR_COUNT {
		apiBadRequest(w, "bar out of range")
		return
	}
	color, ok := parseColor(req.Color)
	if !ok {
		apiBadRequest(w, "bad color: "+req.Color)
		return
	}

	m.rt.comms.effects <- setBarEffect(req.Bar, color)
	apiOK(w)
}

func (m *apiHandler) apiBrightness(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Level int `json:"level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiBadRequest(w, err.Error())
		return
	}

	// brightness is best effort, the driver clamps
	m.rt.comms.effects <- brightnessEffect(req.Level)

	m.mutex.Lock()
	m.state.Brightness = req.Level
	m.mutex.Unlock()
	apiOK(w)
}

func (m *apiHandler) apiBlink(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rate uint8 `json:"rate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiBadRequest(w, err.Error())
		return
	}
	if req.Rate > bargraph_backpack.BLINK_HALFHZ {
		apiBadRequest(w, "bad blink rate")
		return
	}

	m.rt.comms.effects <- blinkEffect(req.Rate)

	m.mutex.Lock()
	m.state.BlinkRate = req.Rate
	m.mutex.Unlock()
	apiOK(w)
}

func (m *apiHandler) apiPower(w http.ResponseWriter, r *http.Request) {
	var req struct {
		On bool `json:"on"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiBadRequest(w, err.Error())
		return
	}

	m.rt.comms.effects <- powerEffect(req.On)

	m.mutex.Lock()
	m.state.On = req.On
	m.mutex.Unlock()
	apiOK(w)
}

func (m *apiHandler) apiSweep(w http.ResponseWriter, r *http.Request) {
	var req struct {
		On bool `json:"on"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiBadRequest(w, err.Error())
		return
	}

	m.rt.comms.effects <- sweepEffect(req.On)

	m.mutex.Lock()
	m.state.Sweep = req.On
	m.mutex.Unlock()
	apiOK(w)
}

type httpConfigService struct {
	srv     *http.Server
	handler *apiHandler
}

func (h *httpConfigService) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/status", h.handler.apiStatus).Methods("GET")
	r.HandleFunc("/api/level", h.handler.apiLevel).Methods("POST")
	r.HandleFunc("/api/bar", h.handler.apiBar).Methods("POST")
	r.HandleFunc("/api/brightness", h.handler.apiBrightness).Methods("POST")
	r.HandleFunc("/api/blink", h.handler.apiBlink).Methods("POST")
	r.HandleFunc("/api/power", h.handler.apiPower).Methods("POST")
	r.HandleFunc("/api/sweep", h.handler.apiSweep).Methods("POST")
	return r
}

func (h *httpConfigService) launch(rt *runtimeConfig, addr string) {
	h.handler = newAPIHandler(rt)
	h.srv = &http.Server{Addr: addr, Handler: h.routes()}

	// add to the wg
	wg.Add(1)

	// launch the server
	go func() {
		defer wg.Done()
		log.Println("starting config service http server")
		err := h.srv.ListenAndServe()
		log.Print(err)
		log.Print("Exiting config service")
	}()
}

func (h *httpConfigService) stop() {
	if h.srv != nil {
		h.srv.Shutdown(context.Background())
	}
}
