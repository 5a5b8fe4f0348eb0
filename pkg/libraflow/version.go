// Package libraflow holds build metadata for the LibraFlow binaries.
package libraflow

// Version is the release version reported by `libraflow version`.
const Version = "0.1.0"
