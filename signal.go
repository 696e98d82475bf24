package progressw

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// InterruptExitCode is the conventional status of a process stopped by SIGINT.
const InterruptExitCode = 130

// Ender is a bar that can be stopped early.
type Ender interface {
	End() error
}

// OnInterrupt ends e and calls exit(InterruptExitCode) when the process is
// interrupted, restoring the cursor before the process goes away. exit
// defaults to os.Exit. The returned stop unregisters the handler and is safe
// to call more than once.
func OnInterrupt(e Ender, exit func(code int)) (stop func()) {
	if exit == nil {
		exit = os.Exit
	}
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigs:
			log.Debugf("received %s, ending bar", sig)
			if err := e.End(); err != nil {
				log.Warnf("end bar on interrupt: %s", err)
			}
			exit(InterruptExitCode)
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(done)
		})
	}
}
