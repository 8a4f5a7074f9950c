package monitor

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
)

// LogTailer reads the audit log's most recent lines and can watch it for
// appends, upgrading the polling `tail -f` style loop to an fsnotify watch.
type LogTailer struct {
	path string
}

// NewLogTailer returns a tailer over the audit log at path.
func NewLogTailer(path string) *LogTailer {
	return &LogTailer{path: path}
}

// Last returns the last n lines of the audit log, oldest first.
func (t *LogTailer) Last(n int) ([]string, error) {
	file, err := os.Open(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read audit log: %w", err)
	}

	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// Status derives the run-level half of a Status (run ID, last dispatched
// command, event count) from the tail of the audit log.
func (t *LogTailer) Status() (Status, error) {
	lines, err := t.Last(4096)
	if err != nil {
		return Status{}, err
	}

	var st Status
	st.EventCount = len(lines)
	for _, line := range lines {
		var env struct {
			Type    string `json:"type"`
			RunID   string `json:"run_id"`
			Command string `json:"command,omitempty"`
		}
		if err := json.Unmarshal([]byte(line), &env); err != nil {
			continue
		}
		st.RunID = env.RunID
		if env.Type == "command.dispatch" {
			st.LastCommand = env.Command
		}
	}
	return st, nil
}

// Follow streams newly appended lines to out until ctx is canceled, waking
// on filesystem events instead of polling on a timer.
func (t *LogTailer) Follow(ctx context.Context, out io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(t.path); err != nil {
		return fmt.Errorf("watch audit log: %w", err)
	}

	file, err := os.Open(t.path)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer file.Close()
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek to end: %w", err)
	}
	reader := bufio.NewReader(file)

	drain := func() error {
		for {
			line, err := reader.ReadString('\n')
			if len(line) > 0 {
				if _, werr := fmt.Fprint(out, line); werr != nil {
					return werr
				}
			}
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}
	}

	if err := drain(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if err := drain(); err != nil {
					return err
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch audit log: %w", err)
		}
	}
}
