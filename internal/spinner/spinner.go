package spinner

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/eduardofuncao/dbkit/internal/styles"
)

var stages = []string{" ", ".", "o", "O", "@", "*"}

const interval = 100 * time.Millisecond

// Spinner draws a pulsing marker with the elapsed time on a single line.
type Spinner struct {
	w     io.Writer
	start time.Time
	done  chan struct{}
	wg    sync.WaitGroup
	once  sync.Once
}

// Start begins drawing to w until Stop is called.
func Start(w io.Writer) *Spinner {
	s := &Spinner{
		w:     w,
		start: time.Now(),
		done:  make(chan struct{}),
	}
	s.wg.Add(1)
	go s.loop()
	return s
}

func (s *Spinner) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		fmt.Fprintf(s.w, "\r%s %.2fs", styles.Success.Render(stages[i%len(stages)]), time.Since(s.start).Seconds())
		select {
		case <-s.done:
			fmt.Fprint(s.w, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}

// Stop clears the line and returns the time since Start. It is safe to call
// more than once.
func (s *Spinner) Stop() time.Duration {
	s.once.Do(func() { close(s.done) })
	s.wg.Wait()
	return time.Since(s.start)
}
