// Package errors provides coded, structured errors for the pokedex.
//
// Every error that crosses a package boundary carries a Code so callers can
// branch on the failure kind without string matching:
//
//	record, err := svc.FetchRecord(ctx, input)
//	switch {
//	case errors.IsFetchFailed(err):
//	    // one of the four requests failed; errors.GetMeta(err)["operation"] says which
//	case errors.IsDescriptionUnavailable(err):
//	    // species had no flavor text in the requested language
//	}
//
// Wrapping keeps the original code unless WrapWithCode is used:
//
//	if err := decode(resp); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeFetchFailed, "failed to decode pokemon")
//	}
//
// Component configs collect field problems with a ValidationBuilder and
// return a single InvalidArgument error from Validate.
package errors
