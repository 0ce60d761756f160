// Package testsupport builds isolated configurations for tests.
package testsupport
