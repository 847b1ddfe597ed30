// Package errors provides the structured error type shared by every layer of
// hunt-ballistics.
//
// An Error carries a Code (the broad category, mapped 1:1 onto gRPC status
// codes), a human readable Message, an optional Cause, free-form Meta and a
// machine readable Reason. Codes answer "how should a caller react"; reasons
// answer "which rule was broken".
//
// Creating errors:
//
//	err := errors.InvalidArgumentf("distance must be >= 0, got %v", d)
//	err := errors.Internal("no ammunition type registered").
//	    WithReason(ReasonUnknownAmmunitionCombination).
//	    WithMeta("flags", flags.String())
//
// Wrapping keeps the code, meta and reason of the wrapped error:
//
//	if err != nil {
//	    return errors.Wrapf(err, "failed to resolve damage for %s", weapon.Name)
//	}
//
// Checking:
//
//	if errors.HasReason(err, ReasonUndefinedHeadshotModifier) {
//	    // skip combination
//	}
//
// Handlers convert with ToGRPCError; clients convert back with FromGRPCError.
// Code, reason and meta travel as a google.protobuf.Struct status detail.
//
// Validation of multi-field inputs goes through ValidationBuilder, which
// produces a single InvalidArgument error listing every offending field.
package errors
