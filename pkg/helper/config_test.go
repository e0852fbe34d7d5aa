package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCfgPath_Absolute(t *testing.T) {
	p := filepath.Join(t.TempDir(), "apiserver.yaml")
	assert.Equal(t, p, GetCfgPath(p))
}

func TestGetCfgPath_CurrentDir(t *testing.T) {
	dir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(oldWd) }()
	assert.NoError(t, os.Chdir(dir))

	assert.NoError(t, os.WriteFile(filepath.Join(dir, "apiserver.yaml"), []byte("server:\n  port: 3001\n"), 0644))
	got := GetCfgPath("apiserver.yaml")
	assert.Equal(t, "apiserver.yaml", filepath.Base(got))
	assert.True(t, filepath.IsAbs(got))
}

func TestGetCfgPath_ConfigsDir(t *testing.T) {
	dir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(oldWd) }()
	assert.NoError(t, os.Chdir(dir))

	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "apiserver.yaml"), []byte("{}"), 0644))
	got := GetCfgPath("apiserver.yaml")
	assert.Contains(t, got, filepath.Join("configs", "apiserver.yaml"))
}

func TestGetCfgPath_Fallback(t *testing.T) {
	dir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(oldWd) }()
	assert.NoError(t, os.Chdir(dir))

	assert.Equal(t, "/etc/gestiparc/missing.yaml", GetCfgPath("missing.yaml"))
}

func TestGetCfgPath_EmptyPanics(t *testing.T) {
	assert.Panics(t, func() { GetCfgPath("") })
}
