// Package support exposes the stringhandler package descriptor.
//
// Package: support
// Title: Package Descriptor
// Description: The descriptor infos.json (name, description, version,
//              authors, license, homepage) is embedded at build time and
//              validated on read; its version must be a semantic version.
//              Nothing in the string utilities depends on it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
package support
