// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/vibechef/models"
)

func renderBuildInfoWindow(t theme, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: VibeChef\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.Version))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.Date))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.Commit))

	return t.page("ABOUT", b.String(), "esc: back")
}
