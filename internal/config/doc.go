// Package config provides configuration loading, merging, and validation
// for the PriceWise server.
//
// Configuration is assembled from multiple sources. The first source that
// sets a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
