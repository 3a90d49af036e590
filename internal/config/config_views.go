// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "os"

// ClientConfig is the subset of settings the sync agent needs.
type ClientConfig struct {
	App     App
	Adapter Adapter
	Workers Workers
	Sync    Sync
	Agent   Agent
}

// ServerConfig is the subset of settings the reference document store needs.
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
}

// GetClientConfig loads the merged configuration from os.Args and the
// environment and returns the agent view of it.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

// GetServerConfig loads the merged configuration from os.Args and the
// environment and returns the document store view of it.
func GetServerConfig() (*ServerConfig, error) {
	return getServerConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder(args).withEnv().withFlags().withJSON().build()
	if err != nil {
		return nil, err
	}

	clientCfg := cfg.Client()
	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

func getServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := newConfigBuilder(args).withEnv().withFlags().withJSON().build()
	if err != nil {
		return nil, err
	}

	serverCfg := cfg.ServerView()
	if err := serverCfg.validate(); err != nil {
		return nil, err
	}
	return serverCfg, nil
}

// Client projects the agent settings out of the full configuration.
func (cfg *StructuredConfig) Client() *ClientConfig {
	return &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Workers: cfg.Workers,
		Sync:    cfg.Sync,
		Agent:   cfg.Agent,
	}
}

// ServerView projects the document store settings out of the full configuration.
func (cfg *StructuredConfig) ServerView() *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}
}
