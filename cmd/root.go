package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lhecker/ta-office/config"
	"github.com/lhecker/ta-office/database"
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	configFile string
	silent     bool

	rootCmd = &cobra.Command{
		Use:   "ta-office",
		Short: "A TA office hours simulation",
	}
)

func init() {
	// By setting these members here we break an initialization loop between rootCmd (C) and rootPersistentPreRunE (R):
	// Otherwise C refers to R which in turn refers back to C, in the implementation of the silent flag.
	rootCmd.PersistentPreRunE = rootPersistentPreRunE
	rootCmd.PersistentPostRun = rootPersistentPostRun

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", `config file`)
	rootCmd.PersistentFlags().BoolVarP(&silent, "silent", "s", false, `Silent or quiet mode`)
}

func rootPersistentPreRunE(cmd *cobra.Command, args []string) error {
	if silent {
		rootCmd.SilenceErrors = true
		rootCmd.SilenceUsage = true
	}

	for _, f := range []func() error{
		initConfig,
		initDatabase,
	} {
		err := f()
		if err != nil {
			return err
		}
	}

	return nil
}

func rootPersistentPostRun(cmd *cobra.Command, args []string) {
	for _, f := range []func(){
		deinitDatabase,
	} {
		f()
	}
}

func initConfig() (err error) {
	if len(configFile) != 0 {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("ta-office")
		viper.AddConfigPath(".")
	}

	// Defaults mirror the classic simulation parameters: five chairs,
	// ten students, up to 2s arrival jitter, 1-3s consultations.
	viper.SetDefault("chairs", 5)
	viper.SetDefault("students", 10)
	viper.SetDefault("arrival_delay_min", "0s")
	viper.SetDefault("arrival_delay_max", "2s")
	viper.SetDefault("help_delay_min", "1s")
	viper.SetDefault("help_delay_max", "3s")
	viper.SetDefault("database_file", "ta-office.db")

	err = viper.ReadInConfig()
	if err != nil {
		// A missing config file is fine unless one was named explicitly.
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound || len(configFile) != 0 {
			return fmt.Errorf("failed to read config file: %v", err)
		}
	}

	singletons.Config = &config.Config{}
	defer func() {
		if err != nil {
			singletons.Config = nil
		}
	}()

	err = viper.Unmarshal(
		singletons.Config,
		func(config *mapstructure.DecoderConfig) {
			config.TagName = "toml"
			config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeHookFunc(time.RFC3339),
				mapstructure.StringToTimeDurationHookFunc(),
			)
		},
	)
	if err != nil {
		return fmt.Errorf("failed to parse config file: %v", err)
	}

	return singletons.Config.Validate()
}

func initDatabase() (err error) {
	singletons.Database, err = database.NewDatabase(singletons.Config.DatabaseFile)
	return
}

func deinitDatabase() {
	if singletons.Database == nil {
		return
	}

	err := singletons.Database.Close()
	if err != nil {
		log.Printf("failed to close database: %v", err)
	}
}
