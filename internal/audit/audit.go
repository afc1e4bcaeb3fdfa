package audit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/PolarWolf314/flatrunner/internal/utils"
)

const timestampFormat = "2006-01-02T15:04:05.000000Z"

// Entry is a single journal entry.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"`
	User      string `json:"user"`
	Operation string `json:"op"`

	App   string `json:"app,omitempty"`
	Key   string `json:"key,omitempty"`   // For set-env / rm-env.
	Value string `json:"value,omitempty"` // For set-* operations.
	Count int    `json:"count,omitempty"` // For update.
}

// NewEntry returns an entry for op on app with id and user filled in.
func NewEntry(op, app string) Entry {
	entry := Entry{
		ID:        uuid.NewString(),
		Operation: op,
		App:       app,
	}
	if username, err := utils.GetUsername(); err == nil {
		entry.User = username
	}
	return entry
}

// Log appends entry to the journal at path. An empty path disables
// journaling. Failures are ignored.
func Log(path string, entry Entry) {
	if path == "" {
		return
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(timestampFormat)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the journal at path.
// Returns an empty slice if the journal doesn't exist.
func ReadEntries(path string) ([]Entry, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data. Malformed lines are skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// FilterByApp returns the entries that concern app.
func FilterByApp(entries []Entry, app string) []Entry {
	var filtered []Entry
	for _, e := range entries {
		if e.App == app {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
