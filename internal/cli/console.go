package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/NOVBobLee/ringq/internal/queue"
)

// console drives one queue at a time through the library API. The
// queue operations themselves tolerate a nil queue, so "no queue"
// surfaces as the operations' own failure signals.
type console struct {
	out    io.Writer
	logger *slog.Logger
	q      *queue.Queue
}

func newConsole(out io.Writer, logger *slog.Logger) *console {
	return &console{out: out, logger: logger}
}

func (co *console) dispatch(line string) (bool, error) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	co.logger.Debug("dispatch", "cmd", cmd, "args", args)

	switch cmd {
	case "new":
		co.q.Free()
		co.q = queue.New()
	case "free":
		co.q.Free()
		co.q = nil
	case "ih", "it":
		return false, co.insert(cmd, args)
	case "rh", "rt":
		return false, co.remove(cmd, args)
	case "size":
		fmt.Fprintln(co.out, co.q.Size())
	case "dm":
		if !co.q.DeleteMid() {
			return false, errors.New("dm failed: queue is missing or empty")
		}
	case "dedup":
		if !co.q.DeleteDup() {
			return false, errors.New("dedup failed: no queue")
		}
	case "swap":
		co.q.SwapPairs()
	case "reverse":
		co.q.Reverse()
	case "sort":
		co.q.Sort()
	case "shuffle":
		co.q.Shuffle()
	case "show":
		co.show()
	case "help":
		co.help()
	case "quit", "exit":
		co.q.Free()
		co.q = nil
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q", cmd)
	}
	return false, nil
}

func (co *console) insert(cmd string, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: %s value [count]", cmd)
	}
	count := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("bad count %q", args[1])
		}
		count = n
	}
	for i := 0; i < count; i++ {
		ok := false
		if cmd == "ih" {
			ok = co.q.InsertHead(args[0])
		} else {
			ok = co.q.InsertTail(args[0])
		}
		if !ok {
			return fmt.Errorf("%s failed: no queue", cmd)
		}
	}
	return nil
}

func (co *console) remove(cmd string, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("usage: %s [expected]", cmd)
	}

	var e *queue.Element
	if cmd == "rh" {
		e = co.q.RemoveHead(nil)
	} else {
		e = co.q.RemoveTail(nil)
	}
	if e == nil {
		return fmt.Errorf("%s failed: queue is missing or empty", cmd)
	}

	got := e.Value()
	e.Release()
	if len(args) == 1 && got != args[0] {
		return fmt.Errorf("removed %q, expected %q", got, args[0])
	}
	fmt.Fprintf(co.out, "removed %q\n", got)
	return nil
}

func (co *console) show() {
	if co.q == nil {
		fmt.Fprintln(co.out, "q = NULL")
		return
	}
	fmt.Fprintf(co.out, "q = [%s]\n", strings.Join(co.q.Values(), " "))
}

func (co *console) help() {
	fmt.Fprint(co.out, `commands:
  new              create a fresh queue
  free             destroy the current queue
  ih value [n]     insert value at the head, n times
  it value [n]     insert value at the tail, n times
  rh [expected]    remove from the head, optionally checking the value
  rt [expected]    remove from the tail, optionally checking the value
  size             print the element count
  dm               delete the middle element
  dedup            delete every duplicated value (queue must be sorted)
  swap             swap adjacent pairs
  reverse          reverse the queue
  sort             stable ascending sort
  shuffle          uniform random shuffle
  show             print the queue contents
  quit             exit
`)
}
