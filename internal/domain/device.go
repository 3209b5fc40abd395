package domain

import "time"

type DeviceFlowStatus string

const (
	DeviceFlowIdle    DeviceFlowStatus = "idle"
	DeviceFlowPending DeviceFlowStatus = "pending"
	DeviceFlowSuccess DeviceFlowStatus = "success"
	DeviceFlowError   DeviceFlowStatus = "error"
)

func (s DeviceFlowStatus) Terminal() bool {
	return s == DeviceFlowSuccess || s == DeviceFlowError
}

// DeviceSession is the transient state of one device-authorization
// attempt. It is never persisted: it lives from Start until the flow
// reaches a terminal status, is cancelled, or expires.
type DeviceSession struct {
	DeviceCode              string
	UserCode                string
	VerificationURI         string
	VerificationURIComplete string
	ExpiresAt               time.Time
	PollInterval            time.Duration
	Status                  DeviceFlowStatus
	Message                 string
	AccountID               AccountID
}

// VerificationTarget prefers the complete URI when the provider
// supplies one.
func (s DeviceSession) VerificationTarget() string {
	if s.VerificationURIComplete != "" {
		return s.VerificationURIComplete
	}
	return s.VerificationURI
}

func (s DeviceSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
