// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ConnectivityState is a point-in-time view of the client's reachability.
//
// IsRemoteConnected is only ever true while IsDeviceOnline is true: a device
// that lost its network is never considered connected to the remote store.
type ConnectivityState struct {
	// IsDeviceOnline is the last known device-level network reachability.
	IsDeviceOnline bool `json:"is_device_online"`

	// IsRemoteConnected is the last known reachability of the remote
	// document store. It can be false while the device is online, e.g. when
	// the store connection was disabled manually.
	IsRemoteConnected bool `json:"is_remote_connected"`

	// LastSyncAt is set on every successful (re)connection and after every
	// completed drain pass. Nil until the first one happens.
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`

	// PendingOperationCount is the number of online-path operations
	// currently in flight. It is unrelated to the mutation queue length.
	PendingOperationCount uint `json:"pending_operation_count"`
}

// Online reports whether remote calls should be attempted directly.
func (s ConnectivityState) Online() bool {
	return s.IsDeviceOnline && s.IsRemoteConnected
}
