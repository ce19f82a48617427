// Package worksets exposes module-level metadata for the worksets tool.
package worksets

// Version is the worksets release version.
const Version = "0.1.0"
