// Package ports declares the driven-port interfaces of the Wishbone client.
// Adapters under pkg/adapters implement them; tests substitute stubs.
package ports
