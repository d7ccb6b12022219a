// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources override later ones for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig], which returns the merged and
// validated server configuration. The signing secret and both database DSNs
// are required; token lifecycle settings and connect timeouts receive
// defaults during validation.
package config
