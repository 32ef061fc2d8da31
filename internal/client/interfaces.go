// SPDX-License-Identifier: Apache-2.0

package client

// Client defines the minimal lifecycle contract for runnable kiosk
// applications.
type Client interface {
	// Run starts the kiosk and blocks until exit.
	Run() error
}
