// Package main provides build targets for the lawg-go project using Mage.
//
// Usage:
//
//	mage build            Compile the lawg binary to bin/
//	mage test:all         Run all tests (unit and integration)
//	mage test:unit        Run only unit tests (excludes tests/)
//	mage test:integration Run only integration tests (builds first)
//	mage lint             Run golangci-lint
//	mage clean            Remove build artifacts
//	mage install          Install lawg to GOPATH/bin
package main
