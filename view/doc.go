// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package view renders an account snapshot as a page of sections, each with
// text, contact links and the actions a signed-in viewer can take. Pages are
// plain data; handlers render them as HTML and the CLI as text.
package view
