package notifications

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
)

// Service publishes notices.
type Service interface {
	Publish(ctx context.Context, notice Notice) error
}

// NewService returns a console publisher writing to w, or a noop publisher
// when w is nil.
func NewService(w io.Writer) Service {
	if w == nil {
		return noopService{}
	}
	return &consoleService{writer: w, colorize: shouldColorize(w)}
}

type consoleService struct {
	mu       sync.Mutex
	writer   io.Writer
	colorize bool
}

func (c *consoleService) Publish(_ context.Context, notice Notice) error {
	line := notice.String()
	if c.colorize {
		if color := kindColor(notice.Kind); color != "" {
			line = color + line + ansiReset
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintln(c.writer, line); err != nil {
		return fmt.Errorf("write notice: %w", err)
	}
	return nil
}

func kindColor(kind Kind) string {
	switch kind {
	case KindSuccess:
		return ansiGreen
	case KindWarning:
		return ansiYellow
	case KindError:
		return ansiRed
	default:
		return ""
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type noopService struct{}

func (noopService) Publish(context.Context, Notice) error { return nil }
