// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means config.Server carries neither an HTTP nor a
// gRPC address. The server cannot start without at least one transport.
var errNoHandlersAreCreated = errors.New("no transport address configured")
