// Package textutil turns notation names into filesystem-safe tokens.
package textutil
