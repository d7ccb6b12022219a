// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dimas Pramesti

package http

import "errors"

// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
// incoming request does not include an "Authorization" header at all. The
// client-facing rejection body is the fixed "Token is missing!" envelope.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
