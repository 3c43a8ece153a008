package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"
	"os"

	"github.com/automoto/swarmflag/network"
	"github.com/automoto/swarmflag/shared/netconfig"
	"github.com/joho/godotenv"
)

// Environment variables that override the built-in endpoints. The server is
// built with matching defaults, so these are for local test servers.
const (
	EnvLocalAddr  = "SWARM_LOCAL_ADDR"
	EnvServerAddr = "SWARM_SERVER_ADDR"
)

// LoadNet returns the session endpoints. It loads envFiles (a missing file
// is fine) and then applies any overrides from the environment.
func LoadNet(envFiles ...string) (network.Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return network.Config{}, fmt.Errorf("load %s: %w", f, err)
		}
		log.Printf("[config] loaded %s", f)
	}

	cfg := network.Config{
		LocalAddr:  netconfig.DefaultLocalAddr,
		ServerAddr: netconfig.DefaultServerAddr,
	}
	if err := override(&cfg.LocalAddr, EnvLocalAddr); err != nil {
		return network.Config{}, err
	}
	if err := override(&cfg.ServerAddr, EnvServerAddr); err != nil {
		return network.Config{}, err
	}
	return cfg, nil
}

func override(dst *string, env string) error {
	v, ok := os.LookupEnv(env)
	if !ok || v == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(v); err != nil {
		return fmt.Errorf("%s=%q: %w", env, v, err)
	}
	*dst = v
	return nil
}
