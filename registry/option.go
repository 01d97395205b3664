// Copyright 2025 The Thaumaturgia Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package registry

import "go.uber.org/zap"

// An Option configures a Registry or a List.
type Option interface {
	applyToRegistry(*registryConfig)
	applyToList(*listConfig)
}

type registryConfig struct {
	Logger         *zap.Logger
	AllowOverwrite bool
}

type listConfig struct {
	Logger *zap.Logger
}

func newRegistryConfig(opts []Option) *registryConfig {
	cfg := &registryConfig{Logger: zap.NewNop()}
	for _, opt := range opts {
		opt.applyToRegistry(cfg)
	}
	return cfg
}

func newListConfig(opts []Option) *listConfig {
	cfg := &listConfig{Logger: zap.NewNop()}
	for _, opt := range opts {
		opt.applyToList(cfg)
	}
	return cfg
}

type loggerOption struct {
	logger *zap.Logger
}

// WithLogger logs registrations and sealing at debug level. Failures are
// always returned to the caller, whether or not they're logged. By default,
// nothing is logged.
func WithLogger(logger *zap.Logger) Option {
	return &loggerOption{logger}
}

func (o *loggerOption) applyToRegistry(cfg *registryConfig) {
	if o.logger != nil {
		cfg.Logger = o.logger
	}
}

func (o *loggerOption) applyToList(cfg *listConfig) {
	if o.logger != nil {
		cfg.Logger = o.logger
	}
}

type allowOverwriteOption struct{}

// AllowOverwrite lets a later registration under an existing key replace the
// earlier object, so that content can be redefined before the registry is
// sealed. Without it, duplicate keys fail with thaum.CodeDuplicateKey. It has
// no effect on a List.
func AllowOverwrite() Option {
	return &allowOverwriteOption{}
}

func (o *allowOverwriteOption) applyToRegistry(cfg *registryConfig) {
	cfg.AllowOverwrite = true
}

func (o *allowOverwriteOption) applyToList(*listConfig) {}
