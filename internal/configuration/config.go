package configuration

import (
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/jetforge/fadecd/internal/ui"
)

type Configuration struct {
	DbPath string `json:"dbPath"`

	Fadec      FadecConfig      `json:"fadec"`
	Controller ControllerConfig `json:"controller"`
	Recorder   RecorderConfig   `json:"recorder"`
	Api        ApiConfig        `json:"api"`
	Statistics StatisticsConfig `json:"statistics"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("fadecd")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/fadecd/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("dbpath", "/etc/fadecd/fadecd.db")

	viper.SetDefault("fadec.enabled", true)
	viper.SetDefault("fadec.pidstrategy", PidStrategyIntegralZeroing)
	viper.SetDefault("fadec.pid.gainproportion", 0.012/1000)
	viper.SetDefault("fadec.pid.gainintegral", 0.000001)
	viper.SetDefault("fadec.pid.gainderivative", 0.018/1000)
	viper.SetDefault("fadec.pid.outputlimit", 0.02)
	viper.SetDefault("fadec.pid.derivativelimit", 0.20)
	viper.SetDefault("fadec.pid.integrallimit", 100.0)
	viper.SetDefault("fadec.pid.tolerance", 0.0)

	viper.SetDefault("controller.updaterate", 50*time.Millisecond)
	viper.SetDefault("controller.thrustsmoothingsamples", 10)

	viper.SetDefault("recorder.enabled", false)
	viper.SetDefault("recorder.maxsessions", 10)
	viper.SetDefault("recorder.snapshotrate", 1*time.Second)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9612)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9613)
}

func ReadConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			// the daemon runs fine on defaults
			ui.Warning("No configuration file found, using defaults")
		} else {
			ui.Fatal("Error reading config file, %s", err)
		}
	} else {
		// this is only populated _after_ ReadInConfig()
		ui.Info("Using configuration file at: %s", viper.ConfigFileUsed())
	}

	LoadConfig()
}

func LoadConfig() {
	// load default configuration values
	err := viper.Unmarshal(
		&CurrentConfig,
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			PidStrategyHookFunc(),
		)),
	)
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}
