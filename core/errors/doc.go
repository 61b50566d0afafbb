// Package errors provides the standard error constructors shared by all
// stringhandler modules.
//
// Package: errors
// Title: Standard Error Constructors
// Description: Every module reports failures through the same three kinds of
//              error: EncodingError for text that is not valid in the declared
//              encoding, LookupError for a language tag without a
//              transliteration table and InvalidArgument for contractual misuse.
//              All of them are *sherror.Error values with the module and the
//              operation recorded as details.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Usage:
//
//	if err := stringx.Validate(input); err != nil {
//	    if errors.IsEncodingError(err) {
//	        offset, _ := errors.ExtractDetails(err)["offset"].(int)
//	        ...
//	    }
//	}
//
// The builder is available for module-specific errors:
//
//	err := errors.NewErrorBuilder(errors.ModuleConfig).
//	    Operation("load").
//	    Code(sherror.CodeInvalidConfig).
//	    Detail("path", path).
//	    Build()
package errors
