// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The three core services are:
//
//   - WorksheetService: the persisted collection of saved items
//   - Navigator: the stage / sub-tile state machine with deep linking
//   - DocumentBuilder and ExportService: worksheet and journey documents
//
// Services are pure Go with no CGO dependencies.
package services
