package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// snapshot reads and writes one pretty-printed JSON document on disk.
// A missing or unparsable file yields an empty state; a failed write is
// logged and swallowed so the in-memory state stays authoritative until
// the next successful write.
type snapshot struct {
	path string
	log  *zap.Logger
}

// load unmarshals the file into v. Returns false when the file is
// missing or corrupt; v is left untouched in that case.
func (s snapshot) load(v any) bool {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("cannot read data file", zap.String("path", s.path), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		s.log.Warn("ignoring corrupt data file", zap.String("path", s.path), zap.Error(err))
		return false
	}
	return true
}

// save writes v to the file, creating parent directories as needed.
func (s snapshot) save(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.log.Warn("cannot marshal snapshot", zap.String("path", s.path), zap.Error(err))
		return
	}
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.log.Warn("cannot create data directory", zap.String("dir", dir), zap.Error(err))
			return
		}
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		s.log.Warn("cannot write data file", zap.String("path", s.path), zap.Error(err))
	}
}
