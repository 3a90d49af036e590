// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync agent runtime.
//
// It wires the local cache, the remote store adapter, the connectivity
// monitor, background workers and the local facade API into a single
// process lifecycle.
package client
