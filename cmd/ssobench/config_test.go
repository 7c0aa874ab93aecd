package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xgzlucario/sso/internal/workload"
)

func TestConfig(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "ssobench.toml")
	assert.Nil(os.WriteFile(path, []byte(`
[corpus]
words = 1000
seed = 9

[bench]
rounds = 0
kinds = ["sso16"]
workloads = ["sum"]
index = "avl"

[log]
level = "debug"
`), 0644))

	assert.Nil(initConfig(path))
	assert.Equal("", configGetCorpusPath())
	assert.Equal(1000, configGetCorpusWords())
	assert.Equal(uint64(9), configGetCorpusSeed())
	assert.Equal(1, configGetRounds())
	assert.Equal([]string{"sso16"}, configGetKinds())
	assert.Equal([]workload.Workload{workload.Sum}, configGetWorkloads())
	assert.Equal(workload.AVL, configGetIndex())
	assert.Equal(1<<30, configGetAllocLimit())
	assert.Equal("debug", configGetLogLevel())

	words, err := loadWords()
	assert.Nil(err)
	assert.Equal(1000, len(words))

	res, err := bench("sso16", workload.Sum, workload.AVL, words, 1)
	assert.Nil(err)
	want, _ := workload.Expect(workload.Sum, words)
	assert.Equal(want, res.keys)

	assert.NotNil(initConfig(filepath.Join(t.TempDir(), "missing.toml")))
}
