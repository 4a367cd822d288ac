// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wangtaoking1/cli-base/cmdline"
	"github.com/wangtaoking1/cli-base/errors"
	"github.com/wangtaoking1/cli-base/log"
)

const configFlagName = "config"

// addConfigFlag adds the config file flag to the specified FlagSet object.
func addConfigFlag(cfgFile *string, fs *pflag.FlagSet) {
	fs.StringVarP(cfgFile, configFlagName, "c", "", "Read configuration from specified `FILE`, "+
		"support JSON, TOML, YAML, HCL, or Java properties formats.")
}

// loadConfig reads the configuration of appName. Without an explicit file,
// ./<appName>.* is used if it exists. Keys may also come from APPNAME_*
// environment variables.
func loadConfig(appName, cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix(strings.Replace(strings.ToUpper(appName), "-", "_", -1))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(appName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "failed to read configuration file(%s)", cfgFile)
		}
	}

	return v, nil
}

// applyConfig fills the options which were not given on the command line from
// cfg. Configured values are validated like command-line ones.
func applyConfig(cfg *viper.Viper, opts []cmdline.Option, values *cmdline.Values) error {
	var errs []error
	for _, opt := range opts {
		name := opt.LongName()
		if values.Changed(name) || !cfg.IsSet(name) {
			continue
		}

		raw := cfg.GetString(name)
		log.Debugw("Option set from configuration", "option", name, "value", raw)
		errs = append(errs, values.Set(name, raw))
	}

	return errors.NewAggregate(errs)
}
