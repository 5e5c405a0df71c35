package uiutil

import (
	"time"

	"github.com/jmigpin/scrollview/util/uiutil/event"
)

// Forwards events from in to out, keeping only the last mouse move per frame. Returns when in is closed.
func MouseMoveFilterLoop(in <-chan interface{}, out chan<- interface{}, fps *int) {
	var lastMoveEv interface{}
	var ticker *time.Ticker
	var timeToSend <-chan time.Time
	var lastTimeSent time.Time

	keepMoveEv := func(ev interface{}) {
		frameDur := time.Second / time.Duration(*fps)
		lastMoveEv = ev
		if ticker == nil {
			// Send event immediately if the frame duration already passed
			now := time.Now()
			if now.Sub(lastTimeSent) >= frameDur {
				lastTimeSent = now
				out <- lastMoveEv
			} else {
				d := frameDur - now.Sub(lastTimeSent)
				ticker = time.NewTicker(d)
				timeToSend = ticker.C
			}
		}
	}

	sendMoveEv := func() {
		ticker.Stop()
		ticker = nil
		timeToSend = nil
		lastTimeSent = time.Now()
		out <- lastMoveEv
	}

	sendMoveEvIfKept := func() {
		if ticker != nil {
			sendMoveEv()
		}
	}

	for {
		select {
		case ev, ok := <-in:
			if !ok {
				sendMoveEvIfKept()
				return
			}

			if isMouseMove(ev) {
				keepMoveEv(ev)
			} else {
				sendMoveEvIfKept()
				out <- ev
			}
		case <-timeToSend:
			sendMoveEv()
		}
	}
}

func isMouseMove(ev interface{}) bool {
	if wi, ok := ev.(*event.WindowInput); ok {
		_, ok := wi.Event.(*event.MouseMove)
		return ok
	}
	return false
}
