// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// NotAvailable replaces build metadata that was not injected at link time.
const NotAvailable = "N/A"

// AppBuildInfo carries build-time metadata of a binary. Values are injected
// with -ldflags "-X main.buildVersion=..." and shown by the TUI footer and
// the server version endpoint.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"build_date"`
	Commit  string `json:"build_commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing empty values with
// NotAvailable.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(buildVersion),
		Date:    orNotAvailable(buildDate),
		Commit:  orNotAvailable(buildCommit),
	}
}

// WithVersion returns a copy whose Version is replaced by version unless it
// is empty.
func (a AppBuildInfo) WithVersion(version string) AppBuildInfo {
	if version != "" {
		a.Version = version
	}
	return a
}

// HasVersion reports whether a version was provided.
func (a AppBuildInfo) HasVersion() bool {
	return a.Version != "" && a.Version != NotAvailable
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", orNotAvailable(a.Version), orNotAvailable(a.Commit), orNotAvailable(a.Date))
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
