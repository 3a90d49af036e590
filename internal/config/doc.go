// Package config provides configuration loading, merging, and validation
// facilities for the sync agent and the reference document store.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults fill whatever remains unset. The main entry points are
// [GetClientConfig] for the agent and [GetServerConfig] for the store.
package config
