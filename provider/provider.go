// Package provider defines the translation engine interface and implementations.
package provider

import "github.com/frndlabs/gobhasha"

// Provider is the interface for translation engine backends.
// This is an alias to the main package interface for convenience.
type Provider = gobhasha.Provider

// Request is an alias to the main package type.
type Request = gobhasha.ProviderRequest
