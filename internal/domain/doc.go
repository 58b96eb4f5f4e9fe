// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo). This root package
// holds sentinel errors, the ValidationError type, and the composable field
// validators entity packages build their rules from.
package domain
