// File: support.go
// Title: Package Descriptor and Resource Paths
// Description: Reads the package descriptor infos.json and resolves
//              resources relative to the package root.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package support

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"

	sherror "github.com/msto63/stringhandler/core/error"
	"github.com/msto63/stringhandler/core/errors"
)

// InfosFile is the descriptor path relative to the package root
const InfosFile = "support/infos.json"

//go:embed infos.json
var infosJSON []byte

// Author is one entry of the descriptor's author list
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Info is the package descriptor
type Info struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Version     string          `json:"version"`
	Authors     []Author        `json:"authors"`
	License     string          `json:"license"`
	Homepage    string          `json:"homepage"`
	SemVer      *semver.Version `json:"-"`
}

// Infos returns the descriptor compiled into the binary
func Infos() (*Info, error) {
	return parseInfos(infosJSON, InfosFile)
}

// LoadInfos reads a descriptor from disk
func LoadInfos(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := sherror.CodeInternal
		if os.IsNotExist(err) {
			code = sherror.CodeNotFound
		}
		return nil, errors.OperationFailed(errors.ModuleSupport, "LoadInfos", code, err).
			WithDetail("path", path)
	}
	return parseInfos(data, path)
}

func parseInfos(data []byte, source string) (*Info, error) {
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleSupport).
			Operation("Infos").
			Code(sherror.CodeInvalidFormat).
			Message("malformed package descriptor").
			Cause(err).
			Detail("path", source).
			Build()
	}

	sv, err := semver.NewVersion(info.Version)
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleSupport).
			Operation("Infos").
			Code(sherror.CodeValidationFailed).
			Messagef("invalid version %q in package descriptor", info.Version).
			Cause(err).
			Detail("path", source).
			Build()
	}
	info.SemVer = sv

	return &info, nil
}

// Path returns resource resolved against the package root. A missing
// leading separator is added; an empty resource yields the root itself.
func Path(resource string) string {
	if resource != "" && !strings.HasPrefix(resource, string(filepath.Separator)) {
		resource = string(filepath.Separator) + resource
	}
	return Root() + resource
}

// Root returns the package root directory, the parent of this package's
// source directory. It is only meaningful while the source tree exists,
// as in tests and development builds.
func Root() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	return filepath.Dir(filepath.Dir(file))
}

// String returns "name version"
func (i *Info) String() string {
	return i.Name + " " + i.Version
}
