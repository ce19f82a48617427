// Package types defines the workset entities, the Host capability
// interface, configuration, and standard errors for the worksets system.
package types
