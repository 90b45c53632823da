// Package branding holds the public-facing application identity.
package branding

// AppName is the display name used across web pages and protocol surfaces.
const AppName = "Mergington High School Activities"
