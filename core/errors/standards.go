// File: standards.go
// Title: Error Standards for stringhandler Modules
// Description: Provides module identifiers and the standard constructors for
//              encoding, lookup and argument errors, plus predicates that walk
//              wrapped error chains.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package errors

import (
	stderrors "errors"
	"fmt"

	sherror "github.com/msto63/stringhandler/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx  = "stringx"
	ModuleTranslit = "translit"
	ModuleConfig   = "config"
	ModuleSupport  = "support"
	ModuleCLI      = "cli"
)

// EncodingError reports text that is not valid in the declared encoding.
// offset is the byte offset of the first offending byte, or -1 when unknown.
func EncodingError(module, operation, encoding string, offset int) *sherror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(sherror.CodeEncoding).
		Messagef("invalid %s input", encoding).
		Detail("encoding", encoding).
		Detail("offset", offset).
		Build()
}

// LookupError reports a language tag that has no transliteration table
func LookupError(module, operation, language string, cause error) *sherror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(sherror.CodeLookup).
		Messagef("no transliteration table for language %q", language).
		Cause(cause).
		Detail("language", language).
		Build()
}

// InvalidArgument reports contractual misuse of an operation
func InvalidArgument(module, operation, argument string, value interface{}, expected string) *sherror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(sherror.CodeInvalidArgument).
		Messagef("invalid argument %s for %s.%s: expected %s", argument, module, operation, expected).
		Detail("argument", argument).
		Detail("value", value).
		Detail("expected", expected).
		Build()
}

// OperationFailed wraps an unexpected failure of a dependency
func OperationFailed(module, operation string, code sherror.Code, cause error) *sherror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(code).
		Cause(cause).
		Build()
}

// IsEncodingError reports whether err carries CodeEncoding
func IsEncodingError(err error) bool {
	return sherror.HasCode(err, sherror.CodeEncoding)
}

// IsLookupError reports whether err carries CodeLookup
func IsLookupError(err error) bool {
	return sherror.HasCode(err, sherror.CodeLookup)
}

// IsInvalidArgument reports whether err carries CodeInvalidArgument
func IsInvalidArgument(err error) bool {
	return sherror.HasCode(err, sherror.CodeInvalidArgument)
}

// ExtractDetails returns the details of the outermost structured error
func ExtractDetails(err error) map[string]interface{} {
	var e *sherror.Error
	if stderrors.As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractModule returns the module recorded on a standardized error
func ExtractModule(err error) string {
	return detailString(err, "module")
}

// ExtractOperation returns the operation recorded on a standardized error
func ExtractOperation(err error) string {
	return detailString(err, "operation")
}

// IsModuleOperation reports whether err was raised by module.operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

func detailString(err error, key string) string {
	if v, ok := ExtractDetails(err)[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
	return ""
}
