package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDump(t *testing.T) {
	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "dump", "--config", "../etc", "--json"})

	require.NoError(t, Execute())

	var dumped map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &dumped))
	assert.Equal(t, "Gojira", dumped["Title"])
}

func TestConfigDump_MissingConfig(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"config", "dump", "--config", "./does-not-exist"})

	assert.Error(t, Execute())
}
