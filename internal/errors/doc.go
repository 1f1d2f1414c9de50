// Package errors provides structured error handling for compendium-i18n.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("folder not found")
//	err := errors.InvalidArgumentf("invalid locale: %q", locale)
//
// Adding metadata:
//
//	err := errors.NotFound("folder not found").
//	    WithMeta("folder_id", folderID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get folder")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("panel_id", input.PanelID, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Wrap repository errors with business context
package errors
