// Package match finds the known directive closest to a misspelled one.
package match
