// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package extractor

import "errors"

// ErrInvalidURL returned when the URL to be fetched is empty, not
// parseable, or not an absolute HTTP or HTTPS URL.
// No request is made when this error returned.
var ErrInvalidURL = errors.New(`invalid URL`)

// ErrConnection returned when the request cannot be sent, the response
// cannot be read, or the server response with HTTP status code 400 or
// above.
var ErrConnection = errors.New(`connection error`)
