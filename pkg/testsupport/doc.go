// Package testsupport holds fakes and golden-file helpers shared by the
// package tests.
package testsupport
