// Package services implements the driving ports.
//
// Services coordinate the corpus walker, the normalisers, the corpus table
// and the run ledger. They hold no state between calls.
package services
