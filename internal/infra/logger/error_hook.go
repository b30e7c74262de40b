package logger

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrorFileHook copies error, fatal and panic entries to a separate sink,
// usually a rotating file.
type ErrorFileHook struct {
	mu        sync.Mutex
	out       io.Writer
	formatter logrus.Formatter
}

func NewErrorFileHook(out io.Writer) *ErrorFileHook {
	return &ErrorFileHook{
		out: out,
		formatter: &logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		},
	}
}

func (h *ErrorFileHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}
}

func (h *ErrorFileHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.out.Write(line)
	return err
}
