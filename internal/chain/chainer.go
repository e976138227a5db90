// Package chain personalizes planted secrets for one player.
//
// Starting from the email in the marker record, each mapping step rewrites a
// secret with a suffix taken from a SHA-512 hash chain, so every secret a
// player finds depends on the one before it. The marker is then overwritten
// with the run's status.
package chain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"midnightcafe/internal/utils"
)

// Status values written to the marker record.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

var (
	// ErrNoEmail means the marker record does not exist.
	ErrNoEmail = errors.New("email file not found")
	// ErrInvalidEmail means the marker content is not an address.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrChainBroken means a step's secret was not found in its file.
	ErrChainBroken = errors.New("chain broken")
)

var looseEmailRE = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)

// Marker is the record holding the player's email.
type Marker interface {
	Exists() bool
	Load() (string, error)
	Save(value string) error
	Owner() (uid, gid int, err error)
	Chown(uid, gid int) error
}

// PasswordSetter changes a local account password.
type PasswordSetter interface {
	SetPassword(ctx context.Context, user, password string) error
}

// Chpasswd sets passwords through chpasswd(8).
type Chpasswd struct{}

func (Chpasswd) SetPassword(ctx context.Context, user, password string) error {
	cmd := exec.CommandContext(ctx, "chpasswd")
	cmd.Stdin = strings.NewReader(user + ":" + password + "\n")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("chpasswd %s: %w: %s", user, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Report summarizes a run.
type Report struct {
	Applied int
	Skipped int
	Status  string
}

// Chainer runs the mapping against the marker's email.
type Chainer struct {
	marker    Marker
	passwords PasswordSetter
	logger    *utils.Logger
}

// New creates a Chainer. A nil logger discards output.
func New(marker Marker, passwords PasswordSetter, logger *utils.Logger) *Chainer {
	if logger == nil {
		logger = utils.Discard()
	}
	return &Chainer{marker: marker, passwords: passwords, logger: logger}
}

// Run applies every mapping step in order and stops at the first broken
// link. Unless the marker is missing, its content is replaced with the final
// status and its ownership restored.
func (c *Chainer) Run(ctx context.Context, src MappingSource) (Report, error) {
	if !c.marker.Exists() {
		c.logger.Info("Email file not found. Exiting.")
		return Report{Status: StatusFailed}, ErrNoEmail
	}

	uid, gid, ownerErr := c.marker.Owner()
	if ownerErr != nil {
		c.logger.Warnf("read marker ownership: %v", ownerErr)
	}

	report, err := c.chain(ctx, src)
	if err != nil {
		c.logger.Error(err.Error())
		report.Status = StatusFailed
	} else {
		report.Status = StatusSuccess
	}

	if werr := c.marker.Save(report.Status); werr != nil {
		c.logger.Errorf("Failed to write final status to email file: %v", werr)
		return report, errors.Join(err, werr)
	}
	if ownerErr == nil {
		if cerr := c.marker.Chown(uid, gid); cerr != nil {
			c.logger.Errorf("restore email file ownership: %v", cerr)
			return report, errors.Join(err, cerr)
		}
	}
	c.logger.Infof("Final status '%s' written to email file.", report.Status)
	return report, err
}

func (c *Chainer) chain(ctx context.Context, src MappingSource) (Report, error) {
	var report Report

	email, err := c.marker.Load()
	if err != nil {
		return report, fmt.Errorf("read email: %w", err)
	}
	if !looseEmailRE.MatchString(email) {
		return report, ErrInvalidEmail
	}

	mapping, err := src.Mapping()
	if err != nil {
		return report, fmt.Errorf("failed to decrypt mapping file: %w", err)
	}

	hash := HashHex(email)
	c.logger.Infof("Starting secret chaining with email: %s", email)

	for i, step := range ParseMapping(mapping) {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		suffix := Suffix(hash)
		c.logger.Infof("Processing step %d: %s with suffix '%s'", i+1, step.Path, suffix)

		replacement, plaintext, err := Transform(step.Kind, step.Secret, suffix)
		if err != nil {
			c.logger.Warnf("%v. Skipping.", err)
			report.Skipped++
			continue
		}

		if err := c.apply(ctx, step, replacement, plaintext); err != nil {
			return report, err
		}
		report.Applied++
		hash = HashHex(plaintext)
	}
	return report, nil
}

func (c *Chainer) apply(ctx context.Context, step Step, replacement, plaintext string) error {
	info, err := os.Stat(step.Path)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", step.Path, err)
	}
	data, err := os.ReadFile(step.Path)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", step.Path, err)
	}
	content := string(data)
	if !strings.Contains(content, step.Secret) {
		return fmt.Errorf("%w: original secret '%s' not found in '%s'", ErrChainBroken, step.Secret, step.Path)
	}

	content = strings.Replace(content, step.Secret, replacement, 1)
	if err := os.WriteFile(step.Path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("error processing %s: %w", step.Path, err)
	}
	c.logger.Infof("Successfully replaced '%s' with '%s' in '%s'.", step.Secret, replacement, step.Path)

	if step.User == "" {
		return nil
	}
	c.logger.Infof("Changing password for user '%s'.", step.User)
	if c.passwords == nil {
		return fmt.Errorf("no password setter for user %s", step.User)
	}
	if err := c.passwords.SetPassword(ctx, step.User, plaintext); err != nil {
		return fmt.Errorf("error processing %s: %w", step.Path, err)
	}
	return nil
}
