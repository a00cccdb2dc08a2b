package pkg

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var serverEnv = []string{"XCHESS_SSH_ADDR", "XCHESS_HOST_KEY", "XCHESS_VIEWER", "XCHESS_IDLE_TIMEOUT"}

func clearServerEnv(t *testing.T) {
	t.Helper()
	for _, k := range serverEnv {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
		} else {
			t.Cleanup(func() { os.Unsetenv(k) })
		}
		os.Unsetenv(k)
	}
}

func TestLoadServerConfigDefaults(t *testing.T) {
	clearServerEnv(t)
	cfg, err := LoadServerConfig(filepath.Join(os.TempDir(), "xchess-missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	want := ServerConfig{Addr: DefaultSSHAddr, Viewer: DefaultViewer, IdleTimeout: ServerIdleTimeout}
	if cfg != want {
		t.Errorf("wanted %+v got %+v", want, cfg)
	}
}

func TestLoadServerConfigFile(t *testing.T) {
	clearServerEnv(t)
	dir, err := ioutil.TempDir("", "xchess")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, ".env")
	body := "XCHESS_SSH_ADDR=:2022\nXCHESS_VIEWER=/usr/local/bin/xchess\nXCHESS_IDLE_TIMEOUT=90s\n"
	if err := ioutil.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	os.Setenv("XCHESS_SSH_ADDR", ":3022")

	cfg, err := LoadServerConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":3022" {
		t.Errorf("file overrode the environment: %s", cfg.Addr)
	}
	if cfg.Viewer != "/usr/local/bin/xchess" || cfg.IdleTimeout != 90*time.Second {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadServerConfigBadTimeout(t *testing.T) {
	clearServerEnv(t)
	os.Setenv("XCHESS_IDLE_TIMEOUT", "soon")
	if _, err := LoadServerConfig(); err == nil {
		t.Error("accepted a bad timeout")
	}
}
