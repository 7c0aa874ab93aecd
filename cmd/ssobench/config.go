package main

import (
	"github.com/spf13/viper"
	"github.com/xgzlucario/sso"
	"github.com/xgzlucario/sso/internal/workload"
)

const (
	defaultConfigFileName = "ssobench.toml"
)

func init() {
	viper.SetDefault("corpus.path", "")
	viper.SetDefault("corpus.words", 200_000)
	viper.SetDefault("corpus.seed", 1)
	viper.SetDefault("bench.rounds", 3)
	viper.SetDefault("bench.kinds", []string{"string", "bytes", "sso10", "sso20"})
	viper.SetDefault("bench.workloads", []string{"word", "increased", "sum"})
	viper.SetDefault("bench.index", string(workload.SkipList))
	viper.SetDefault("alloc.limit", sso.DefaultMaxAlloc)
	viper.SetDefault("log.level", "info")
}

func initConfig(fileName string) error {
	viper.SetConfigFile(fileName)
	return viper.ReadInConfig()
}

func configGetString(key string) string { return viper.GetString(key) }

func configGetInt(key string) int { return viper.GetInt(key) }

func configGetStrings(key string) []string { return viper.GetStringSlice(key) }

func configGetCorpusPath() string {
	return configGetString("corpus.path")
}

func configGetCorpusWords() int {
	return configGetInt("corpus.words")
}

func configGetCorpusSeed() uint64 {
	return viper.GetUint64("corpus.seed")
}

func configGetRounds() int {
	return max(configGetInt("bench.rounds"), 1)
}

func configGetKinds() []string {
	return configGetStrings("bench.kinds")
}

func configGetWorkloads() []workload.Workload {
	var ws []workload.Workload
	for _, w := range configGetStrings("bench.workloads") {
		ws = append(ws, workload.Workload(w))
	}
	return ws
}

func configGetIndex() workload.IndexKind {
	return workload.IndexKind(configGetString("bench.index"))
}

func configGetAllocLimit() int {
	return configGetInt("alloc.limit")
}

func configGetLogLevel() string {
	return configGetString("log.level")
}
