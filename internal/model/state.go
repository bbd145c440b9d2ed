package model

// SystemState is the process-wide controller state. It is owned by the main
// control thread and passed down explicitly; there is no global instance.
// SelectionConfirmed transitions false→true exactly once per process, the
// rest mutate every cycle.
type SystemState struct {
	ActiveReading      SensorReading
	ActuatorOn         bool
	SelectionConfirmed bool
	SelectedCropID     int
}
