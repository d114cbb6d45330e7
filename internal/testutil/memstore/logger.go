package memstore

import "time"

// NopLogger логгер, который ничего не пишет
type NopLogger struct{}

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}

// FixedClock TimeProvider с фиксированным временем
type FixedClock struct{ T time.Time }

func (c FixedClock) Now() time.Time { return c.T }
