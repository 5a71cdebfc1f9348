// Package directory holds the in-memory account fixture the mock API
// answers from, together with the access guard every query endpoint
// runs before touching an account.
package directory

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/upstar-club/mocksocial/internal/model"
)

var (
	ErrNotFound = errors.New("account does not exist")
	ErrPrivate  = errors.New("account is private")
)

//go:embed fixture.yaml
var defaultFixture []byte

// Directory maps usernames to account records. The snapshot is
// immutable; Reload swaps in a fresh one atomically so in-flight
// requests keep reading a consistent view.
type Directory struct {
	path     string
	snapshot atomic.Pointer[map[string]model.Account]
}

type fixtureFile struct {
	Accounts map[string]model.Account `yaml:"accounts"`
}

// Load builds a directory from the YAML fixture at path, or from the
// embedded default fixture when path is empty.
func Load(path string) (*Directory, error) {
	d := &Directory{path: path}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// Reload re-reads the fixture source and replaces the snapshot.
func (d *Directory) Reload() error {
	raw := defaultFixture
	if d.path != "" {
		data, err := os.ReadFile(d.path)
		if err != nil {
			return fmt.Errorf("read fixture: %w", err)
		}
		raw = data
	}

	accounts, err := parseFixture(raw)
	if err != nil {
		return err
	}
	d.snapshot.Store(&accounts)
	return nil
}

func parseFixture(raw []byte) (map[string]model.Account, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Accounts) == 0 {
		return nil, errors.New("fixture has no accounts")
	}
	accounts := make(map[string]model.Account, len(f.Accounts))
	for username, acct := range f.Accounts {
		acct.Username = username
		accounts[username] = acct
	}
	return accounts, nil
}

// Lookup returns the account record without any visibility check.
func (d *Directory) Lookup(username string) (model.Account, bool) {
	accounts := *d.snapshot.Load()
	acct, ok := accounts[username]
	return acct, ok
}

// Authorize enforces the query preconditions: the account must exist,
// and only then is its privacy flag consulted. The order matters - an
// unknown username always reports ErrNotFound.
func (d *Directory) Authorize(username string) (model.Account, error) {
	acct, ok := d.Lookup(username)
	if !ok {
		return model.Account{}, ErrNotFound
	}
	if acct.Private {
		return model.Account{}, ErrPrivate
	}
	return acct, nil
}

// Len reports the number of accounts in the current snapshot.
func (d *Directory) Len() int {
	return len(*d.snapshot.Load())
}

// DefaultFixture returns the embedded fixture bytes, for writing out a
// starting point that can be edited and reloaded.
func DefaultFixture() []byte {
	out := make([]byte, len(defaultFixture))
	copy(out, defaultFixture)
	return out
}
