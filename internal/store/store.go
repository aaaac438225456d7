package store

import (
	"path/filepath"

	"github.com/bandland/bandland/internal/model"
)

// Content file names under the content root.
const (
	ShowsFile = "shows.json"
	MerchFile = "merch.json"
	AuditFile = "admin-audit.json"
)

// MaxBackups caps how many timestamped backups are kept per collection.
const MaxBackups = 50

// Store bundles the three content collections.  It is constructed once
// per process and injected into whatever needs content access; nothing
// else reads or writes the content paths.
type Store struct {
	Shows *Collection[model.Show]
	Merch *Collection[model.MerchItem]
	Audit *Collection[model.AuditEntry]
}

// New returns a store rooted at contentDir with backups in historyDir.
func New(contentDir, historyDir string) *Store {
	return &Store{
		Shows: NewCollection[model.Show](filepath.Join(contentDir, ShowsFile), historyDir, MaxBackups),
		Merch: NewCollection[model.MerchItem](filepath.Join(contentDir, MerchFile), historyDir, MaxBackups),
		Audit: NewCollection[model.AuditEntry](filepath.Join(contentDir, AuditFile), historyDir, MaxBackups),
	}
}

// AppendAudit prepends entry to the audit log and writes it back, so
// the audit file always reads newest first.
func (s *Store) AppendAudit(entry model.AuditEntry) error {
	existing, err := s.Audit.Read()
	if err != nil {
		return err
	}
	_, err = s.Audit.Write(append([]model.AuditEntry{entry}, existing...))
	return err
}
