// Package mocks provides hand-written mock implementations of the store and
// service interfaces for use in tests.
package mocks
