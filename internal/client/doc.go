// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive kiosk runtime.
//
// It wires the terminal UI flows and the business services into a single
// process lifecycle: restore or pass the registration gate, then browse the
// showcase until exit or sign-out.
package client
