// Package driving defines the interfaces through which the outside world
// calls INTO the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and MCP adapters depend on these interfaces, and core services
// implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
