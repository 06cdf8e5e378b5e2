package utils

import (
	"log"
	"math"

	"github.com/shirou/gopsutil/v4/cpu"
)

// GetCPUUsage samples aggregate CPU utilisation for the health endpoint. The
// sample covers the interval since the previous call, so the handler never
// blocks on it; a failed read reports -1 instead of failing the check.
func GetCPUUsage() float64 {
	percents, err := cpu.Percent(0, false)
	if err != nil {
		log.Printf("Error sampling CPU usage: %v", err)
		return -1
	}
	if len(percents) == 0 {
		return -1
	}
	return math.Round(percents[0]*10) / 10
}
