// Package main provides build targets for the libraflow project using Mage.
//
// Usage:
//
//	mage build       Compile libraflow binary to bin/
//	mage test:all    Run all tests
//	mage test:race   Run all tests with the race detector
//	mage test:cover  Run tests and write coverage.out
//	mage lint        Run golangci-lint
//	mage clean       Remove build artifacts
//	mage install     Install libraflow to GOPATH/bin
package main
