package cmd

import (
	"os"
	"strings"

	"github.com/kasuboski/dvrdispatch/pkg/dispatch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dvrdispatch",
	Short: "dvrdispatch cli",
	Long:  `dvrdispatch sends approved tv requests to Sonarr or SickRage`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("DVRDISPATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("sonarr.enabled", false)
	viper.SetDefault("sonarr.scheme", "https")
	viper.SetDefault("sonarr.host", "")
	viper.SetDefault("sonarr.apiKey", "")
	viper.SetDefault("sonarr.qualityProfile", "")
	viper.SetDefault("sonarr.rootPath", "")
	viper.SetDefault("sonarr.languageProfile", 1)
	viper.SetDefault("sonarr.seasonFolders", true)

	viper.SetDefault("sickrage.enabled", false)
	viper.SetDefault("sickrage.scheme", "http")
	viper.SetDefault("sickrage.host", "")
	viper.SetDefault("sickrage.apiKey", "")

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.filePath", "dvrdispatch.sqlite")

	viper.SetDefault("dispatch.seasonAttempts", dispatch.DefaultSeasonAttempts)
	viper.SetDefault("dispatch.seasonDelay", dispatch.DefaultSeasonDelay)
	viper.SetDefault("dispatch.legacyAttempts", dispatch.DefaultLegacyAttempts)
	viper.SetDefault("dispatch.legacyDelay", dispatch.DefaultLegacyDelay)
	viper.SetDefault("dispatch.episodePollInterval", dispatch.DefaultEpisodePollInterval)
	viper.SetDefault("dispatch.episodePollTimeout", dispatch.DefaultEpisodePollTimeout)

	viper.SetDefault("notify.webhookURL", "")

	viper.SetDefault("manager.jobs.faultRetry", defaultFaultRetry)
}
