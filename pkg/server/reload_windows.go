//go:build windows

package server

import "os"

// SIGHUP does not exist on Windows; reload is unsupported there.
func notifyReload(ch chan<- os.Signal) {}
