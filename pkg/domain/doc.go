// Package domain contains the core value types of the Wishbone client:
// the input count matrix, the run configuration, the three result tables
// and the error taxonomy shared by all adapters.
package domain
