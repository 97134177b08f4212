// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package client fetches account snapshots from a running node and keeps
// them fresh with a Watcher.
package client
