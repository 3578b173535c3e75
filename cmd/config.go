package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configKeys maps CLI flags onto keys of the defaults file.
var configKeys = map[string]string{
	"log":           "log",
	"quantum":       "scheduler.round_robin.time_quantum",
	"mlfq-quantums": "scheduler.multilevel_feedback_queue.levels_time_quantum",
	"port":          "server.port",
}

// applyConfig fills flags the user did not set explicitly from the defaults file and
// SCHEDSIM_* environment variables. An explicit flag always wins.
// With an empty path, ./schedsim.yaml is read if it exists.
func applyConfig(cmd *cobra.Command, path string) error {
	v := viper.New()
	v.SetEnvPrefix("schedsim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("schedsim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		logrus.Debugf("using config file %s", v.ConfigFileUsed())
	}

	for name, key := range configKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || flag.Changed || !v.IsSet(key) {
			continue
		}
		value := v.GetString(key)
		if name == "mlfq-quantums" {
			value = joinInts(v.GetIntSlice(key))
		}
		if err := cmd.Flags().Set(name, value); err != nil {
			return fmt.Errorf("config key %s: %w", key, err)
		}
		logrus.Debugf("%s = %s (from config)", name, value)
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
