// Package fileutil holds small filesystem helpers shared by writers of
// generated files.
package fileutil
