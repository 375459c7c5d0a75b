// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - WorksheetStore: Durable persistence of the worksheet record
//   - TileCatalog: Read-only registry of stage and sub-tile content
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Notifier: User-visible messages. Without it, messages are dropped.
//   - DocumentRenderer: Turns a document into bytes. Without it, export is disabled.
//   - FileSaver: Writes rendered documents. Without it, export is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
