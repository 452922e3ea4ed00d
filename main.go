// bargraph drives a 24-bar bi-color LED bar graph on an HT16K33
// backpack: a manual/REST/button-driven level meter.
//
// bargraph -config={config file}
package main

import (
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"
)

var wg sync.WaitGroup

func setupLogging(settings configSettings) {
	logFile := settings.GetString(sLogFile)
	if logFile == "" {
		// stderr it is
		return
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
	})
}

func main() {
	settings := initSettings()
	setupLogging(settings)
	settings.Dump()

	rt := initRuntime(settings)

	wg.Add(1)
	go runEffects(rt)

	wg.Add(1)
	go runWatchButtons(rt)

	var svc httpConfigService
	if addr := settings.GetString(sListen); addr != "" {
		svc.launch(&rt, addr)
	}

	// run until a signal says otherwise
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Println("shutting down")
	close(rt.comms.quit)
	svc.stop()
	wg.Wait()
}
