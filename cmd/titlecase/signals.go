package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

const LINE_SEP = "-----------------------------------------"

// CancelOnSigintSigterm creates a goroutine that calls cancel on reception of a SIGINT or SIGTERM signal.
// A second signal exits the process with the status 128+signal. The returned function stops the
// signal handling.
func CancelOnSigintSigterm(cancel context.CancelFunc) (stop func()) {
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM /*All listed signals should be in the switch statement further below.*/)

	done := make(chan struct{})

	go func() {
		received := 0
		for {
			select {
			case <-done:
				return
			case sig := <-ch:
				received++
				if received == 1 {
					cancel()
					continue
				}

				var s int
				switch sig {
				case syscall.SIGINT:
					s = int(syscall.SIGINT)
				case syscall.SIGTERM:
					s = int(syscall.SIGTERM)
				}
				os.Exit(128 + s) //https://tldp.org/LDP/abs/html/exitcodes.html
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
