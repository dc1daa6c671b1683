// Package services implements the driving ports: configuration
// resolution, question-set building, fuzzy option ranking, message
// composition and scope history.
//
// Services depend only on domain types and driven ports, never on
// adapters.
package services
