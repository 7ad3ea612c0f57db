package environment

import (
	"errors"
	"fmt"
	"strings"
)

// Environment names the deployment the process runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ErrUnknownEnvironment is returned by Parse for unrecognised names.
var ErrUnknownEnvironment = errors.New("environment: unknown environment")

// Parse maps s to an Environment. It accepts the canonical names and the
// short aliases dev, local, stage and prod, case-insensitively. An empty
// string means Development.
func Parse(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dev", "local", string(Development):
		return Development, nil
	case "stage", string(Staging):
		return Staging, nil
	case "prod", string(Production):
		return Production, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
}

func (e Environment) String() string { return string(e) }

// IsProduction reports whether e is Production.
func (e Environment) IsProduction() bool { return e == Production }

// IsDevelopment reports whether e is Development.
func (e Environment) IsDevelopment() bool { return e == Development }
