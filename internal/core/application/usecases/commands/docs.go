// Package commands contains the operations that run draws and change stored state.
//
// Every command follows the same pattern: a NewXCommand constructor validates
// the input, and XCommandHandler.Handle checks the constructor guard before
// doing any work. Draw commands are the orchestration layer of the drafting
// core; they are the only place that talks to notifiers and metrics.
package commands
