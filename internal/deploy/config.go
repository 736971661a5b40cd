// Package deploy reads the contract deployment configuration: the compiler
// version, the networks contracts can be deployed to and the optimizer
// settings. Account keys are taken from the environment, never from the file
// itself.
package deploy

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	DefaultVersion = "0.8.9"
	DefaultNetwork = "mumbai"
	DefaultRuns    = 200

	// LocalNetwork is the in-process development chain; it needs no URL.
	LocalNetwork = "hardhat"

	// PrivateKeyEnv holds the deployer key, without the 0x prefix.
	PrivateKeyEnv = "PRIVATE_KEY"
)

// lookupEnv is a test seam for os.LookupEnv.
var lookupEnv = os.LookupEnv

var (
	privateKeyRe = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	versionRe    = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
)

type Network struct {
	URL      string   `yaml:"url,omitempty"`
	Accounts []string `yaml:"accounts,omitempty"`
}

type Optimizer struct {
	Enabled bool `yaml:"enabled"`
	Runs    int  `yaml:"runs"`
}

type Settings struct {
	Optimizer Optimizer `yaml:"optimizer"`
}

type Config struct {
	Version        string             `yaml:"version"`
	DefaultNetwork string             `yaml:"defaultNetwork"`
	Networks       map[string]Network `yaml:"networks"`
	Settings       Settings           `yaml:"settings"`
}

// document is the file layout: everything sits under "solidity".
type document struct {
	Solidity Config `yaml:"solidity"`
}

// Default is the configuration used for anything the file leaves out.
func Default() Config {
	return Config{
		Version:        DefaultVersion,
		DefaultNetwork: DefaultNetwork,
		Networks: map[string]Network{
			LocalNetwork: {},
			DefaultNetwork: {
				URL:      "https://rpc.ankr.com/polygon_mumbai",
				Accounts: []string{"0x${" + PrivateKeyEnv + "}"},
			},
		},
		Settings: Settings{Optimizer: Optimizer{Enabled: true, Runs: DefaultRuns}},
	}
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deploy config: %w", err)
	}
	return Parse(data)
}

// Parse decodes data over the defaults and expands ${VAR} references in
// network URLs and accounts from the environment. A networks section in the
// file replaces the default networks as a whole. Unset variables expand to
// the empty string; Validate reports the resulting malformed values.
func Parse(data []byte) (*Config, error) {
	def := Default()
	doc := document{Solidity: def}
	doc.Solidity.Networks = nil
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse deploy config: %w", err)
	}

	cfg := doc.Solidity
	if cfg.Networks == nil {
		cfg.Networks = def.Networks
	}
	for name, n := range cfg.Networks {
		n.URL = expand(n.URL)
		accounts := make([]string, len(n.Accounts))
		for i, a := range n.Accounts {
			accounts[i] = expand(a)
		}
		n.Accounts = accounts
		cfg.Networks[name] = n
	}
	return &cfg, nil
}

func expand(s string) string {
	return os.Expand(s, func(key string) string {
		v, _ := lookupEnv(key)
		return v
	})
}

// Validate reports every problem found, joined into one error.
func (c *Config) Validate() error {
	var errs []error

	if !versionRe.MatchString(c.Version) {
		errs = append(errs, fmt.Errorf("compiler version %q is not major.minor.patch", c.Version))
	}

	def, ok := c.Networks[c.DefaultNetwork]
	switch {
	case !ok:
		errs = append(errs, fmt.Errorf("default network %q is not configured", c.DefaultNetwork))
	case c.DefaultNetwork != LocalNetwork && def.URL == "":
		errs = append(errs, fmt.Errorf("default network %q has no url", c.DefaultNetwork))
	}

	for _, name := range c.networkNames() {
		for i, a := range c.Networks[name].Accounts {
			if !privateKeyRe.MatchString(a) {
				errs = append(errs, fmt.Errorf("network %q account %d is not a 0x-prefixed 32-byte hex key (is %s set?)", name, i, PrivateKeyEnv))
			}
		}
	}

	if c.Settings.Optimizer.Enabled && c.Settings.Optimizer.Runs <= 0 {
		errs = append(errs, errors.New("optimizer runs must be positive when the optimizer is enabled"))
	}

	return errors.Join(errs...)
}

func (c *Config) networkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Redacted returns a copy safe to print: account keys are masked.
func (c *Config) Redacted() Config {
	out := *c
	out.Networks = make(map[string]Network, len(c.Networks))
	for name, n := range c.Networks {
		masked := make([]string, len(n.Accounts))
		for i, a := range n.Accounts {
			masked[i] = mask(a)
		}
		n.Accounts = masked
		out.Networks[name] = n
	}
	return out
}

func mask(key string) string {
	if len(key) <= 12 {
		return "0x****"
	}
	return key[:6] + "..." + key[len(key)-4:]
}

// Marshal renders c in the file layout.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(document{Solidity: *c})
}
