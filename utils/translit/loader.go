// File: loader.go
// Title: Transliteration Table Files
// Description: Reads additional transliteration tables from YAML or TOML
//              files through the configuration loader.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package translit

import (
	"fmt"

	"github.com/msto63/stringhandler/core/config"
	sherror "github.com/msto63/stringhandler/core/error"
	"github.com/msto63/stringhandler/core/errors"
)

// loadFile reads a {language: {character: replacement}} document. The
// format follows the file extension (.yaml/.yml, anything else is TOML).
func loadFile(path string) (map[string]map[string]string, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	result := make(map[string]map[string]string)
	for lang, raw := range cfg.GetAll() {
		entries, ok := raw.(map[string]interface{})
		if !ok {
			return nil, invalidEntry("table", lang, "a mapping of characters to replacements", nil).
				WithDetail("path", path)
		}

		mapping := make(map[string]string, len(entries))
		for char, value := range entries {
			repl, ok := value.(string)
			if !ok {
				return nil, invalidEntry("replacement", fmt.Sprintf("%s.%s", lang, char), "a string", nil).
					WithDetail("path", path)
			}
			mapping[char] = repl
		}
		result[lang] = mapping
	}

	return result, nil
}

func invalidEntry(what, value, expected string, cause error) *sherror.Error {
	return errors.NewErrorBuilder(errors.ModuleTranslit).
		Operation("load").
		Code(sherror.CodeInvalidFormat).
		Messagef("invalid table %s %q: expected %s", what, value, expected).
		Cause(cause).
		Detail("entry", value).
		Build()
}
