package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/greenstem/irrigator/internal/actuator"
	"github.com/greenstem/irrigator/internal/catalog"
	"github.com/greenstem/irrigator/internal/controller"
	"github.com/greenstem/irrigator/internal/hal"
	"github.com/greenstem/irrigator/internal/selection"
	"github.com/greenstem/irrigator/internal/sensor"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Printf("irrigator: loaded .env")
	}
	cfg := loadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigc
		log.Printf("irrigator: shutdown requested")
		cancel()
	}()

	devices, err := hal.Open(cfg.Hardware)
	if err != nil {
		log.Fatalf("hardware init: %v", err)
	}
	defer devices.Close()

	devices.Screen.ShowLines("Irrigation unit", "")
	time.Sleep(cfg.MessageDelay)
	devices.Screen.ShowLines("Starting...", "")
	time.Sleep(cfg.MessageDelay)

	cat := catalog.Default()
	machine := selection.NewMachine(cat, devices.Keys, devices.Screen, cfg.KeyPollDelay, cfg.MessageDelay)
	cropID, params, err := machine.Run(ctx)
	if err != nil {
		log.Printf("irrigator: selection aborted: %v", err)
		return
	}

	reader := sensor.NewReader(
		devices.ADC,
		cfg.Hardware.VCC, cfg.Hardware.ADCMax,
		cfg.Hardware.TempChannel, cfg.Hardware.HumidityChannel,
	)
	pump := actuator.NewDriver(devices.Pump)

	ctrl := controller.New(reader, pump, devices.Screen, cropID, params, cfg.CycleInterval, cfg.MessageDelay)
	ctrl.Start(ctx)
}
